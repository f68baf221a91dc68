package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/disk-sim/sim"
)

func TestGenerateRequests_InRangeAndDeterministic(t *testing.T) {
	first, err := GenerateRequests(42, 500)
	require.NoError(t, err)
	second, err := GenerateRequests(42, 500)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed must yield the same batch")
	assert.Len(t, first, 500)
	for _, c := range first {
		assert.GreaterOrEqual(t, c, sim.MinCylinder)
		assert.LessOrEqual(t, c, sim.MaxCylinder)
	}
	_, err = sim.NewRequestSet(first)
	assert.NoError(t, err)
}

func TestGenerateRequests_NonPositiveCount_Fails(t *testing.T) {
	_, err := GenerateRequests(1, 0)
	assert.Error(t, err)
}
