// Defines the Core struct that models a single heterogeneous CPU core.
// Tracks the bound task, temperature, thermal throttling, and power draw.

package sim

import (
	"fmt"
)

// CoreType distinguishes the two classes of cores on the chip.
type CoreType string

const (
	// CorePerformance cores are fast, power-hungry, and run hot.
	CorePerformance CoreType = "performance"
	// CoreEfficiency cores are slow, frugal, and run cool.
	CoreEfficiency CoreType = "efficiency"
)

// Short returns the one-letter tag used in per-tick status lines.
func (ct CoreType) Short() string {
	if ct == CorePerformance {
		return "P"
	}
	return "E"
}

// PreferredProfile returns the task profile this core type is matched with
// under affinity scheduling: performance cores take cpu-bound tasks,
// efficiency cores take io-bound tasks.
func (ct CoreType) PreferredProfile() Profile {
	if ct == CorePerformance {
		return ProfileCPUBound
	}
	return ProfileIOBound
}

// Thermal and power constants shared by every core.
const (
	// AmbientTemperature is the starting temperature and the floor cooling
	// can never pass below.
	AmbientTemperature = 25.0
	// ThrottleTemperature is the threshold at or above which a core halves
	// its speed.
	ThrottleTemperature = 90.0
	// ThrottleFactor scales BaseSpeed while the core is throttled.
	ThrottleFactor = 0.5
	// CoolingRate is the temperature drop per idle or IO-waiting tick.
	CoolingRate = 0.4
	// IdlePowerDraw is the power drawn on any tick without active compute.
	IdlePowerDraw = 0.1
)

// Core models one CPU core. A core holds at most one task at a time and
// advances it one tick of work per call to Tick. Heat accumulates while
// computing and dissipates while idle or IO-waiting; crossing
// ThrottleTemperature halves the effective speed until the core cools.
type Core struct {
	ID   int
	Type CoreType

	BaseSpeed   float64 // Cycles delivered per un-throttled tick
	ActivePower float64 // Power drawn per actively-computing tick
	HeatRate    float64 // Temperature gain per actively-computing tick

	Temperature float64 // Current temperature; floored at AmbientTemperature

	task *Task // Currently bound task, nil when idle
}

// NewCore creates a core of the given type at ambient temperature.
// Unrecognized types get the efficiency parameters.
func NewCore(id int, coreType CoreType) *Core {
	c := &Core{
		ID:          id,
		Type:        coreType,
		Temperature: AmbientTemperature,
	}
	switch coreType {
	case CorePerformance:
		c.BaseSpeed = 2.0
		c.ActivePower = 4.0
		c.HeatRate = 0.8
	default:
		c.BaseSpeed = 1.0
		c.ActivePower = 1.0
		c.HeatRate = 0.2
	}
	return c
}

// IsIdle reports whether no task is bound to this core.
func (c *Core) IsIdle() bool {
	return c.task == nil
}

// Task returns the currently bound task, or nil when the core is idle.
func (c *Core) Task() *Task {
	return c.task
}

// AssignTask binds a task to this core. The caller ensures the core is idle.
func (c *Core) AssignTask(t *Task) {
	c.task = t
}

// Release unbinds and returns the current task, or nil if the core was idle.
func (c *Core) Release() *Task {
	t := c.task
	c.task = nil
	return t
}

// Throttled reports whether the core is at or above ThrottleTemperature.
func (c *Core) Throttled() bool {
	return c.Temperature >= ThrottleTemperature
}

// CurrentSpeed returns the effective cycles-per-tick, halved while throttled.
func (c *Core) CurrentSpeed() float64 {
	if c.Throttled() {
		return c.BaseSpeed * ThrottleFactor
	}
	return c.BaseSpeed
}

// ActivelyComputing reports whether a bound task will make compute progress,
// as opposed to sitting in an IO pause.
func (c *Core) ActivelyComputing() bool {
	return c.task != nil && !c.task.WaitingForIO()
}

// CurrentPowerDraw returns this tick's instantaneous power draw: active power
// while computing, idle power otherwise (including during a task's IO pause).
func (c *Core) CurrentPowerDraw() float64 {
	if c.ActivelyComputing() {
		return c.ActivePower
	}
	return IdlePowerDraw
}

// UpdateTemperature ages the thermal state by one tick: heat while actively
// computing, cool toward (never below) ambient otherwise.
func (c *Core) UpdateTemperature() {
	if c.ActivelyComputing() {
		c.Temperature += c.HeatRate
		return
	}
	c.Temperature -= CoolingRate
	if c.Temperature < AmbientTemperature {
		c.Temperature = AmbientTemperature
	}
}

// Tick advances the core by one simulation tick. Temperature is updated
// first, from the state the core was in when the tick began. A task found
// already finished is released with no work done; otherwise the task absorbs
// one tick of attention at the current effective speed (which, inside
// Task.Work, is either compute progress or an IO-timer decrement).
func (c *Core) Tick() {
	c.UpdateTemperature()

	if c.task == nil {
		return
	}
	if c.task.IsFinished() {
		c.task = nil
		return
	}
	c.task.Work(c.CurrentSpeed())
}

// CoreSnapshot is a copyable view of a core's state for status reporting.
type CoreSnapshot struct {
	ID          int
	Type        CoreType
	Temperature float64
	Speed       float64
	PowerDraw   float64
	Throttled   bool
	TaskID      int // -1 when idle
	TaskProfile Profile
	CyclesDone  float64
	TotalCycles int
	IOWaiting   bool
}

// Snapshot captures the core's current state.
func (c *Core) Snapshot() CoreSnapshot {
	snap := CoreSnapshot{
		ID:          c.ID,
		Type:        c.Type,
		Temperature: c.Temperature,
		Speed:       c.CurrentSpeed(),
		PowerDraw:   c.CurrentPowerDraw(),
		Throttled:   c.Throttled(),
		TaskID:      -1,
	}
	if c.task != nil {
		snap.TaskID = c.task.ID
		snap.TaskProfile = c.task.Profile
		snap.CyclesDone = c.task.CyclesDone
		snap.TotalCycles = c.task.TotalCycles
		snap.IOWaiting = c.task.WaitingForIO()
	}
	return snap
}

// This method returns a human-readable string representation of a Core.
func (c *Core) String() string {
	status := "Idle"
	if c.task != nil {
		status = c.task.String()
	}
	return fmt.Sprintf("Core-%d(%s) %.1f°C | %s", c.ID, c.Type.Short(), c.Temperature, status)
}
