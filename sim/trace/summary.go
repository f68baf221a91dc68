package trace

// TraceSummary aggregates the seeks of one algorithm.
type TraceSummary struct {
	Seeks         int
	TotalDistance int
	MaxSeek       int
	Reversals     int
	Wraps         int
}

// Summarize computes per-algorithm statistics from a SimulationTrace.
// Safe for nil or empty traces (returns an empty map).
func Summarize(st *SimulationTrace) map[string]*TraceSummary {
	summaries := make(map[string]*TraceSummary)
	if st == nil {
		return summaries
	}

	for _, s := range st.Seeks {
		summary, ok := summaries[s.Algorithm]
		if !ok {
			summary = &TraceSummary{}
			summaries[s.Algorithm] = summary
		}
		summary.Seeks++
		summary.TotalDistance += s.Distance
		if s.Distance > summary.MaxSeek {
			summary.MaxSeek = s.Distance
		}
		switch s.Event {
		case SeekEventReversal:
			summary.Reversals++
		case SeekEventWrap:
			summary.Wraps++
		}
	}

	return summaries
}
