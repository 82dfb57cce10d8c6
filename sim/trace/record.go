// Package trace provides decision-trace recording for scheduling analysis.
// It stores pure data types and has no dependencies on sim/, so the engine
// can import it without a cycle.
package trace

// AssignmentRecord captures a single assignment policy decision.
type AssignmentRecord struct {
	Tick       int64
	CoreID     int
	CoreType   string // "performance" or "efficiency"
	TaskID     int
	Profile    string // "cpu-bound" or "io-bound"
	Reason     string // policy-reported reason, e.g. "affinity" or "fallback"
	QueueDepth int    // ready-queue depth the decision saw
}
