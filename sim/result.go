package sim

import (
	"strconv"
	"strings"
)

// ServiceResult is the outcome of one scheduling run.
type ServiceResult struct {
	Algorithm     string // registry name, e.g. "scan"
	Order         []int  // cylinders in the order they were serviced
	TotalMovement int    // sum of seek distances, starting from the initial head position

	// Step indices in Order whose seek follows a direction reversal (SCAN)
	// or an end-to-end jump (C-SCAN).
	Reversals []int
	Wraps     []int
}

// TotalMovement sums |prev - order[i]| with prev starting at initial.
func TotalMovement(order []int, initial int) int {
	total := 0
	prev := initial
	for _, c := range order {
		total += abs(prev - c)
		prev = c
	}
	return total
}

// FormatOrder renders a service order as "a, b, c".
func FormatOrder(order []int) string {
	parts := make([]string, len(order))
	for i, c := range order {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ", ")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
