package workload

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/disk-sim/sim"
)

// GenerateRequests draws n cylinders uniformly from the disk range.
// The same seed always yields the same batch.
func GenerateRequests(seed int64, n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("request count must be positive, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	span := sim.MaxCylinder - sim.MinCylinder + 1
	cylinders := make([]int, n)
	for i := range cylinders {
		cylinders[i] = sim.MinCylinder + rng.Intn(span)
	}
	return cylinders, nil
}
