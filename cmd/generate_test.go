package cmd

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/disk-sim/sim/workload"
)

func TestGenerateRequests_WritesLoadableBatch(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data", "request.bin")
	require.NoError(t, generateRequests(out, 12, 42, "big"))

	got, err := workload.LoadBinaryRequests(out, binary.BigEndian)
	require.NoError(t, err)
	assert.Len(t, got, 12)

	want, err := workload.GenerateRequests(42, 12)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerateRequests_InvalidInput(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, generateRequests(filepath.Join(dir, "a.bin"), 0, 1, "little"))
	assert.Error(t, generateRequests(filepath.Join(dir, "b.bin"), 5, 1, "middle"))
}
