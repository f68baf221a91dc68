package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrNoBracketingInterval is returned under StartPolicyStrict when the head lies
// outside the request range and is travelling away from it.
var ErrNoBracketingInterval = errors.New("no bracketing interval for head position")

// StartPolicy selects what FindStartIndex does when no adjacent pair of
// requests brackets the head position.
type StartPolicy string

const (
	// StartPolicyClamp starts from the nearest end of the sorted requests.
	StartPolicyClamp StartPolicy = "clamp"
	// StartPolicyStrict fails with ErrNoBracketingInterval.
	StartPolicyStrict StartPolicy = "strict"
)

// ValidStartPolicies is the set of recognized start policy names.
// Empty string defaults to clamp.
var ValidStartPolicies = map[string]bool{"": true, "clamp": true, "strict": true}

// FindStartIndex returns the index in sorted from which a directional sweep begins.
//
// A head below every request while moving LEFT starts at 0, and a head above
// every request while moving RIGHT starts at N-1. Otherwise the first pair
// sorted[i] <= position <= sorted[i+1] decides: i+1 when the position equals
// sorted[i+1], else i.
func FindStartIndex(sorted []int, position int, dir Direction, policy StartPolicy) (int, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptyRequests
	}
	if position < sorted[0] && dir == Left {
		return 0, nil
	}
	if position > sorted[n-1] && dir == Right {
		return n - 1, nil
	}
	for i := 0; i+1 < n; i++ {
		if sorted[i] <= position && position <= sorted[i+1] {
			if position == sorted[i+1] {
				return i + 1, nil
			}
			return i, nil
		}
	}

	// A single request has no pairs to bracket with.
	if sorted[0] <= position && position <= sorted[n-1] {
		return 0, nil
	}
	if policy == StartPolicyStrict {
		return 0, fmt.Errorf("position %d moving %s over [%d, %d]: %w",
			position, dir, sorted[0], sorted[n-1], ErrNoBracketingInterval)
	}
	idx := 0
	if position > sorted[n-1] {
		idx = n - 1
	}
	logrus.Debugf("start index: position %d moving %s outside [%d, %d], clamped to index %d",
		position, dir, sorted[0], sorted[n-1], idx)
	return idx, nil
}
