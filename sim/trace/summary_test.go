package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero but the maps are usable
	if summary.TotalAssignments != 0 {
		t.Errorf("TotalAssignments = %d, want 0", summary.TotalAssignments)
	}
	if summary.UniqueCores != 0 {
		t.Errorf("UniqueCores = %d, want 0", summary.UniqueCores)
	}
	if summary.MeanQueueDepth != 0 || summary.MaxQueueDepth != 0 {
		t.Errorf("queue depth stats = %v/%d, want zero", summary.MeanQueueDepth, summary.MaxQueueDepth)
	}
	if summary.ReasonCounts == nil || summary.CoreDistribution == nil {
		t.Error("summary maps are nil, want empty maps")
	}
}

func TestSummarize_NilTrace_Safe(t *testing.T) {
	summary := Summarize(nil)

	if summary == nil {
		t.Fatal("Summarize(nil) = nil, want zero-value summary")
	}
	if summary.TotalAssignments != 0 {
		t.Errorf("TotalAssignments = %d, want 0", summary.TotalAssignments)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with decisions across three cores and two reasons
	st := NewSimulationTrace(TraceLevelDecisions)
	st.RecordAssignment(AssignmentRecord{Tick: 0, CoreID: 0, TaskID: 0, Reason: "affinity", QueueDepth: 4})
	st.RecordAssignment(AssignmentRecord{Tick: 0, CoreID: 1, TaskID: 1, Reason: "affinity", QueueDepth: 3})
	st.RecordAssignment(AssignmentRecord{Tick: 5, CoreID: 2, TaskID: 2, Reason: "fallback", QueueDepth: 1})
	st.RecordAssignment(AssignmentRecord{Tick: 9, CoreID: 0, TaskID: 3, Reason: "affinity", QueueDepth: 2})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts, distribution, and depth statistics all agree
	if summary.TotalAssignments != 4 {
		t.Errorf("TotalAssignments = %d, want 4", summary.TotalAssignments)
	}
	if summary.ReasonCounts["affinity"] != 3 || summary.ReasonCounts["fallback"] != 1 {
		t.Errorf("ReasonCounts = %v, want affinity:3 fallback:1", summary.ReasonCounts)
	}
	if summary.CoreDistribution[0] != 2 || summary.CoreDistribution[1] != 1 || summary.CoreDistribution[2] != 1 {
		t.Errorf("CoreDistribution = %v, want 0:2 1:1 2:1", summary.CoreDistribution)
	}
	if summary.UniqueCores != 3 {
		t.Errorf("UniqueCores = %d, want 3", summary.UniqueCores)
	}
	if summary.MeanQueueDepth != 2.5 {
		t.Errorf("MeanQueueDepth = %v, want 2.5", summary.MeanQueueDepth)
	}
	if summary.MaxQueueDepth != 4 {
		t.Errorf("MaxQueueDepth = %d, want 4", summary.MaxQueueDepth)
	}
}
