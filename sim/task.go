// Defines the Task struct that models an individual unit of work in the simulation.
// Tracks arrival time, compute progress, and the IO-wait state machine.

package sim

import (
	"fmt"
	"math/rand"
)

// Profile classifies the workload behavior of a task.
type Profile string

const (
	// ProfileCPUBound tasks carry large cycle counts and never pause for IO.
	ProfileCPUBound Profile = "cpu-bound"
	// ProfileIOBound tasks carry small cycle counts and pause for IO
	// with per-tick probability IOFrequency percent.
	ProfileIOBound Profile = "io-bound"
)

// IO pauses last a uniform number of ticks in [ioWaitTicksMin, ioWaitTicksMax].
const (
	ioWaitTicksMin = 5
	ioWaitTicksMax = 10
)

// Task models a single task's lifecycle in the simulation.
// Each task has:
// - a workload profile (cpu-bound or io-bound)
// - a total cycle demand and fractional progress toward it
// - an IO-wait timer that suspends compute while positive
// - a private RNG stream driving its IO events
type Task struct {
	ID          int     // Unique identifier, assigned in arrival order
	Profile     Profile // cpu-bound or io-bound
	ArrivalTick int64   // Tick at which the task enters the ready queue
	TotalCycles int     // Total compute demand in cycles
	IOFrequency int     // Percent chance per worked tick of triggering an IO pause

	CyclesDone  float64 // Progress so far; never exceeds TotalCycles
	IOWaitTimer int     // Remaining IO-wait ticks; compute is suspended while > 0

	CompletionTick int64 // Tick at which the task was recorded completed; -1 until then

	rng *rand.Rand // private IO-event stream; may be nil for tasks with IOFrequency 0
}

// NewTask creates a task with zero progress. The rng drives the task's IO
// events and may be nil when ioFrequency is zero.
func NewTask(id int, arrival int64, profile Profile, totalCycles, ioFrequency int, rng *rand.Rand) *Task {
	return &Task{
		ID:             id,
		Profile:        profile,
		ArrivalTick:    arrival,
		TotalCycles:    totalCycles,
		IOFrequency:    ioFrequency,
		CompletionTick: -1,
		rng:            rng,
	}
}

// Work advances the task by one tick of core attention. Waiting and computing
// are mutually exclusive within a tick: a task waiting for IO only decrements
// its wait timer. Otherwise the given cycles are credited (clamped so progress
// never exceeds TotalCycles) and the IO die is rolled afterwards, so an IO
// pause can begin on the same tick the compute was applied.
func (t *Task) Work(cycles float64) {
	if t.WaitingForIO() {
		t.IOWaitTimer--
		return
	}

	t.CyclesDone += cycles
	if t.CyclesDone > float64(t.TotalCycles) {
		t.CyclesDone = float64(t.TotalCycles)
	}

	if t.IOFrequency > 0 && t.rng != nil {
		// Roll 1..100; an IO event fires when the roll is under IOFrequency.
		if t.rng.Intn(100)+1 < t.IOFrequency {
			t.IOWaitTimer = ioWaitTicksMin + t.rng.Intn(ioWaitTicksMax-ioWaitTicksMin+1)
		}
	}
}

// IsFinished reports whether the task has met its total cycle demand.
func (t *Task) IsFinished() bool {
	return t.CyclesDone >= float64(t.TotalCycles)
}

// WaitingForIO reports whether the task is suspended on an IO pause.
func (t *Task) WaitingForIO() bool {
	return t.IOWaitTimer > 0
}

// Turnaround returns completion tick minus arrival tick. Only meaningful
// once CompletionTick has been set by the scheduler.
func (t *Task) Turnaround() int64 {
	return t.CompletionTick - t.ArrivalTick
}

// This method returns a human-readable string representation of a Task.
func (t *Task) String() string {
	return fmt.Sprintf("Task-%d (%s, %.1f/%d)", t.ID, t.Profile, t.CyclesDone, t.TotalCycles)
}
