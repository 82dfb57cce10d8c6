package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalAssignments int
	ReasonCounts     map[string]int // reason label → decision count
	CoreDistribution map[int]int    // core ID → tasks assigned to it
	UniqueCores      int
	MeanQueueDepth   float64 // mean ready-queue depth at decision time
	MaxQueueDepth    int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ReasonCounts:     make(map[string]int),
		CoreDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAssignments = len(st.Assignments)

	if len(st.Assignments) > 0 {
		totalDepth := 0
		for _, a := range st.Assignments {
			summary.ReasonCounts[a.Reason]++
			summary.CoreDistribution[a.CoreID]++
			totalDepth += a.QueueDepth
			if a.QueueDepth > summary.MaxQueueDepth {
				summary.MaxQueueDepth = a.QueueDepth
			}
		}
		summary.MeanQueueDepth = float64(totalDepth) / float64(len(st.Assignments))
	}

	summary.UniqueCores = len(summary.CoreDistribution)

	return summary
}
