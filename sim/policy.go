package sim

import "fmt"

// Assignment reason labels recorded in decision traces and debug logs.
const (
	// ReasonAffinity marks a pick where the task profile matched the
	// core type's preferred profile.
	ReasonAffinity = "affinity"
	// ReasonFallback marks an affinity pick that fell through to the
	// queue front because no preferred-profile task was waiting.
	ReasonFallback = "fallback"
	// ReasonFIFO marks a strict front-of-queue pick.
	ReasonFIFO = "fifo"
	// ReasonShortest marks a shortest-remaining-cycles pick.
	ReasonShortest = "shortest"
)

// AssignmentDecision encapsulates one policy decision for an idle core.
type AssignmentDecision struct {
	QueueIndex int    // Index into the ready queue, -1 to leave the core idle
	Reason     string // Human-readable explanation
}

// AssignmentPolicy decides which waiting task an idle core should take.
// Called once per idle core per tick, in core order. Implementations must be
// deterministic: identical (core, queue) inputs yield identical decisions.
type AssignmentPolicy interface {
	SelectTask(core *Core, queue []*Task) AssignmentDecision
}

// AffinityPolicy implements the rule-based matching of core types to task
// profiles: performance cores scan the queue front-to-back for the first
// cpu-bound task, efficiency cores for the first io-bound task. When no
// preferred task is waiting, the core falls back to the queue front rather
// than sit idle. This is the default policy.
type AffinityPolicy struct{}

// SelectTask implements AssignmentPolicy for AffinityPolicy.
func (a *AffinityPolicy) SelectTask(core *Core, queue []*Task) AssignmentDecision {
	if len(queue) == 0 {
		return AssignmentDecision{QueueIndex: -1}
	}

	preferred := core.Type.PreferredProfile()
	for i, t := range queue {
		if t.Profile == preferred {
			return AssignmentDecision{QueueIndex: i, Reason: ReasonAffinity}
		}
	}
	// Work conservation: an idle core takes the oldest task of the
	// wrong profile instead of waiting for a matching one.
	return AssignmentDecision{QueueIndex: 0, Reason: ReasonFallback}
}

// FCFSPolicy assigns the queue front to every idle core, ignoring profiles.
type FCFSPolicy struct{}

// SelectTask implements AssignmentPolicy for FCFSPolicy.
func (f *FCFSPolicy) SelectTask(_ *Core, queue []*Task) AssignmentDecision {
	if len(queue) == 0 {
		return AssignmentDecision{QueueIndex: -1}
	}
	return AssignmentDecision{QueueIndex: 0, Reason: ReasonFIFO}
}

// SJFPolicy assigns the task with the fewest remaining cycles, ignoring
// profiles. Ties go to the earlier queue position for determinism.
// Warning: SJF can starve large cpu-bound tasks under sustained load.
type SJFPolicy struct{}

// SelectTask implements AssignmentPolicy for SJFPolicy.
func (s *SJFPolicy) SelectTask(_ *Core, queue []*Task) AssignmentDecision {
	if len(queue) == 0 {
		return AssignmentDecision{QueueIndex: -1}
	}

	best := 0
	bestRemaining := float64(queue[0].TotalCycles) - queue[0].CyclesDone
	for i := 1; i < len(queue); i++ {
		remaining := float64(queue[i].TotalCycles) - queue[i].CyclesDone
		if remaining < bestRemaining {
			best = i
			bestRemaining = remaining
		}
	}
	return AssignmentDecision{QueueIndex: best, Reason: ReasonShortest}
}

// ValidPolicies is the set of recognized assignment policy names.
// Shared by config validation and NewPolicy() to avoid duplication.
var ValidPolicies = map[string]bool{"": true, "affinity": true, "fcfs": true, "sjf": true}

// IsValidPolicy returns true if name is a recognized assignment policy.
func IsValidPolicy(name string) bool { return ValidPolicies[name] }

// PolicyNames returns the recognized non-empty policy names in stable order.
func PolicyNames() []string {
	return []string{"affinity", "fcfs", "sjf"}
}

// NewPolicy creates an AssignmentPolicy by name.
// Valid names: "affinity" (default), "fcfs", "sjf".
// Empty string defaults to AffinityPolicy (for CLI flag default compatibility).
// Panics on unrecognized names.
func NewPolicy(name string) AssignmentPolicy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown assignment policy %q", name))
	}
	switch name {
	case "", "affinity":
		return &AffinityPolicy{}
	case "fcfs":
		return &FCFSPolicy{}
	case "sjf":
		return &SJFPolicy{}
	default:
		panic(fmt.Sprintf("unhandled assignment policy %q", name))
	}
}
