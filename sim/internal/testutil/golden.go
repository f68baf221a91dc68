// Package testutil provides shared test infrastructure for the disk-sim packages.
// It holds the golden schedule types and the loader used by sim/ and cmd/ tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_schedules.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-traced scheduling scenario.
type GoldenTestCase struct {
	Name        string                  `json:"name"`
	Requests    []int                   `json:"requests"`
	Position    int                     `json:"position"`
	Direction   string                  `json:"direction"`
	StartPolicy string                  `json:"start_policy"`
	StartIndex  int                     `json:"start_index"`
	Results     map[string]GoldenResult `json:"results"` // algorithm name -> expected result
}

// GoldenResult is the expected outcome of one algorithm.
type GoldenResult struct {
	Order         []int `json:"order"`
	TotalMovement int   `json:"total_movement"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_schedules.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertOrderEqual reports an error when two service orders differ.
func AssertOrderEqual(t *testing.T, name string, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: got %v (len %d), want %v (len %d)", name, got, len(got), want, len(want))
		return
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("%s: got %v, want %v (first difference at step %d)", name, got, want, i)
			return
		}
	}
}
