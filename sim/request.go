// Defines the RequestSet that holds the batch of cylinder requests for one run.

package sim

import (
	"errors"
	"fmt"
	"sort"
)

// Cylinder range served by the simulated disk.
const (
	MinCylinder = 0
	MaxCylinder = 299
)

var (
	// ErrEmptyRequests is returned when a run has no cylinder requests.
	ErrEmptyRequests = errors.New("no cylinder requests")
	// ErrCylinderOutOfRange is returned for a request outside [MinCylinder, MaxCylinder].
	ErrCylinderOutOfRange = errors.New("cylinder out of range")
)

// RequestSet is an ordered batch of cylinder requests in arrival order.
// It is immutable once constructed; accessors hand out copies.
type RequestSet struct {
	cylinders []int
}

// NewRequestSet validates and copies the given cylinders.
// Duplicates are legal and preserved.
func NewRequestSet(cylinders []int) (*RequestSet, error) {
	if len(cylinders) == 0 {
		return nil, ErrEmptyRequests
	}
	for i, c := range cylinders {
		if c < MinCylinder || c > MaxCylinder {
			return nil, fmt.Errorf("request %d (%d): %w", i, c, ErrCylinderOutOfRange)
		}
	}
	return &RequestSet{cylinders: append([]int(nil), cylinders...)}, nil
}

// Len returns the number of requests.
func (rs *RequestSet) Len() int {
	return len(rs.cylinders)
}

// Cylinders returns a copy of the requests in arrival order.
func (rs *RequestSet) Cylinders() []int {
	return append([]int(nil), rs.cylinders...)
}

// Sorted returns an ascending copy of the requests.
func (rs *RequestSet) Sorted() []int {
	sorted := rs.Cylinders()
	sort.Ints(sorted)
	return sorted
}
