package sim

import (
	"errors"
	"testing"
)

func TestNewRequestSet_Empty_Fails(t *testing.T) {
	if _, err := NewRequestSet(nil); !errors.Is(err, ErrEmptyRequests) {
		t.Errorf("expected ErrEmptyRequests, got %v", err)
	}
}

func TestNewRequestSet_OutOfRange_Fails(t *testing.T) {
	for _, bad := range []int{-1, 300, 1 << 20} {
		if _, err := NewRequestSet([]int{10, bad}); !errors.Is(err, ErrCylinderOutOfRange) {
			t.Errorf("cylinder %d: expected ErrCylinderOutOfRange, got %v", bad, err)
		}
	}
}

func TestRequestSet_IsImmutable(t *testing.T) {
	// GIVEN a request set built from a caller-owned slice
	input := []int{30, 10, 20}
	rs, err := NewRequestSet(input)
	if err != nil {
		t.Fatal(err)
	}

	// WHEN the caller and a reader modify their slices
	input[0] = 299
	got := rs.Cylinders()
	got[1] = 299
	_ = rs.Sorted()

	// THEN the set still holds the original arrival order
	want := []int{30, 10, 20}
	after := rs.Cylinders()
	for i := range want {
		if after[i] != want[i] {
			t.Fatalf("request set mutated: got %v, want %v", after, want)
		}
	}
}

func TestRequestSet_Sorted_IsAscendingPermutation(t *testing.T) {
	rs, err := NewRequestSet([]int{98, 183, 37, 122, 14, 124, 65, 67, 37})
	if err != nil {
		t.Fatal(err)
	}
	sorted := rs.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] > sorted[i] {
			t.Fatalf("not ascending: %v", sorted)
		}
	}
	if !sameMultiset(sorted, rs.Cylinders()) {
		t.Errorf("sorted %v is not a permutation of %v", sorted, rs.Cylinders())
	}
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
