// Package trace provides per-seek trace recording for scheduling runs.
// This package has no dependencies on sim/ and stores pure data types.
package trace

// TraceLevel controls the verbosity of seek tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSeeks captures every head movement of every algorithm.
	TraceLevelSeeks TraceLevel = "seeks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSeeks: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects seek records across all algorithms of a run.
type SimulationTrace struct {
	Config TraceConfig
	Seeks  []SeekRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Seeks:  make([]SeekRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on nil.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelSeeks
}

// RecordSeek appends a seek record.
func (st *SimulationTrace) RecordSeek(record SeekRecord) {
	st.Seeks = append(st.Seeks, record)
}
