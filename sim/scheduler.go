package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/disk-sim/sim/trace"
)

// Scheduler computes the service order for a batch of cylinder requests.
// Implementations are pure: they never modify the RequestSet and keep their
// head state local to one call.
type Scheduler interface {
	Name() string
	Schedule(rs *RequestSet, head HeadState) (ServiceResult, error)
}

// FCFSScheduler services requests in arrival order.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string { return "fcfs" }

func (f *FCFSScheduler) Schedule(rs *RequestSet, head HeadState) (ServiceResult, error) {
	order := rs.Cylinders()
	return ServiceResult{
		Algorithm:     f.Name(),
		Order:         order,
		TotalMovement: TotalMovement(order, head.Position),
	}, nil
}

// SCANScheduler sweeps the sorted requests in the initial direction and
// reverses once at the end of the sorted sequence. After reversing, the sweep
// resumes next to the start index rather than next to the last serviced one.
type SCANScheduler struct {
	StartPolicy StartPolicy
}

func (s *SCANScheduler) Name() string { return "scan" }

func (s *SCANScheduler) Schedule(rs *RequestSet, head HeadState) (ServiceResult, error) {
	sorted := rs.Sorted()
	n := len(sorted)
	start, err := FindStartIndex(sorted, head.Position, head.Direction, s.StartPolicy)
	if err != nil {
		return ServiceResult{}, err
	}
	logrus.Debugf("%s: start index %d (cylinder %d) moving %s", s.Name(), start, sorted[start], head.Direction)

	result := ServiceResult{Algorithm: s.Name(), Order: make([]int, 0, n)}
	idx, dir := start, head.Direction
	for i := 0; i < n; i++ {
		result.Order = append(result.Order, sorted[idx])
		switch {
		case dir == Left && idx == 0:
			dir, idx = dir.Reverse(), start+1
			result.Reversals = appendTurn(result.Reversals, i+1, n)
		case dir == Right && idx == n-1:
			dir, idx = dir.Reverse(), start-1
			result.Reversals = appendTurn(result.Reversals, i+1, n)
		case dir == Left:
			idx--
		default:
			idx++
		}
	}
	result.TotalMovement = TotalMovement(result.Order, head.Position)
	return result, nil
}

// CSCANScheduler sweeps the sorted requests in one direction only. On
// reaching an end it jumps to the opposite end and keeps the direction. The
// jump is charged as the distance between the two serviced extremes.
type CSCANScheduler struct {
	StartPolicy StartPolicy
}

func (c *CSCANScheduler) Name() string { return "c-scan" }

func (c *CSCANScheduler) Schedule(rs *RequestSet, head HeadState) (ServiceResult, error) {
	sorted := rs.Sorted()
	n := len(sorted)
	start, err := FindStartIndex(sorted, head.Position, head.Direction, c.StartPolicy)
	if err != nil {
		return ServiceResult{}, err
	}
	logrus.Debugf("%s: start index %d (cylinder %d) moving %s", c.Name(), start, sorted[start], head.Direction)

	result := ServiceResult{Algorithm: c.Name(), Order: make([]int, 0, n)}
	idx := start
	for i := 0; i < n; i++ {
		result.Order = append(result.Order, sorted[idx])
		switch {
		case head.Direction == Left && idx == 0:
			idx = n - 1
			result.Wraps = appendTurn(result.Wraps, i+1, n)
		case head.Direction == Right && idx == n-1:
			idx = 0
			result.Wraps = appendTurn(result.Wraps, i+1, n)
		case head.Direction == Left:
			idx--
		default:
			idx++
		}
	}
	result.TotalMovement = TotalMovement(result.Order, head.Position)
	return result, nil
}

// appendTurn records that the seek into step is the first after a turn,
// provided that step is still part of the run.
func appendTurn(turns []int, step, n int) []int {
	if step >= n {
		return turns
	}
	return append(turns, step)
}

// ValidAlgorithms is the set of recognized algorithm names.
var ValidAlgorithms = map[string]bool{"fcfs": true, "scan": true, "c-scan": true}

// DefaultAlgorithms lists every algorithm in report order.
var DefaultAlgorithms = []string{"fcfs", "scan", "c-scan"}

// IsValidAlgorithm returns true if name is a recognized algorithm.
func IsValidAlgorithm(name string) bool {
	return ValidAlgorithms[name]
}

// NewScheduler creates a Scheduler by name.
// Valid names: "fcfs", "scan", "c-scan".
// Panics on unrecognized names.
func NewScheduler(name string, policy StartPolicy) Scheduler {
	if !IsValidAlgorithm(name) {
		panic(fmt.Sprintf("unknown algorithm %q", name))
	}
	if policy == "" {
		policy = StartPolicyClamp
	}
	switch name {
	case "fcfs":
		return &FCFSScheduler{}
	case "scan":
		return &SCANScheduler{StartPolicy: policy}
	case "c-scan":
		return &CSCANScheduler{StartPolicy: policy}
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", name))
	}
}

// RunAll runs each named algorithm from the same initial head state, in the
// given order. When st is enabled, every seek is recorded into it.
func RunAll(rs *RequestSet, head HeadState, names []string, policy StartPolicy, st *trace.SimulationTrace) ([]ServiceResult, error) {
	if rs == nil || rs.Len() == 0 {
		return nil, ErrEmptyRequests
	}
	if err := head.Validate(); err != nil {
		return nil, err
	}
	results := make([]ServiceResult, 0, len(names))
	for _, name := range names {
		if !IsValidAlgorithm(name) {
			return nil, fmt.Errorf("unknown algorithm %q", name)
		}
		result, err := NewScheduler(name, policy).Schedule(rs, head)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if st.Enabled() {
			recordSeeks(st, result, head.Position)
		}
		results = append(results, result)
	}
	return results, nil
}

func recordSeeks(st *trace.SimulationTrace, result ServiceResult, initial int) {
	events := make(map[int]trace.SeekEvent, len(result.Reversals)+len(result.Wraps))
	for _, step := range result.Reversals {
		events[step] = trace.SeekEventReversal
	}
	for _, step := range result.Wraps {
		events[step] = trace.SeekEventWrap
	}
	prev := initial
	for i, c := range result.Order {
		st.RecordSeek(trace.SeekRecord{
			Algorithm: result.Algorithm,
			Step:      i,
			From:      prev,
			To:        c,
			Distance:  abs(prev - c),
			Event:     events[i],
		})
		prev = c
	}
}
