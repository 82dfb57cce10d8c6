// Tracks simulation-wide and per-core performance metrics such as:
// completed tasks, energy use, turnaround times, occupancy, and thermals.

package sim

import (
	"math"
	"sort"
)

// Distribution captures statistical summary of a metric.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	P99   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return Distribution{
		Mean:  sum / float64(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		P99:   percentile(sorted, 99),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

// percentile computes the p-th percentile using linear interpolation.
// Input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// CoreMetrics aggregates per-core occupancy, thermal, and energy counters.
// Tick counters are sampled once per simulation tick after the core advances,
// so BusyTicks + IOWaitTicks + IdleTicks equals the tick count observed.
type CoreMetrics struct {
	ID   int
	Type CoreType

	BusyTicks      int64   // Ticks spent actively computing
	IOWaitTicks    int64   // Ticks spent hosting a task paused on IO
	IdleTicks      int64   // Ticks with no task bound
	ThrottledTicks int64   // Ticks at or above the throttle threshold
	PeakTemp       float64 // Highest temperature reached
	PowerConsumed  float64 // Accumulated power draw
	TasksCompleted int     // Tasks that finished on this core
}

// Metrics aggregates statistics about the simulation
// for final reporting. Useful for evaluating scheduling policies
// and debugging behavior over time.
type Metrics struct {
	CompletedTasks     int     // Number of tasks completed
	TotalPowerConsumed float64 // Sum of per-tick power draw across all cores

	ArrivalTickSum int64 // Sum of arrival ticks over completed tasks

	Turnarounds       []float64 // Per-task completion - arrival, in completion order
	QueueDepthSamples []float64 // Ready-queue depth, one sample per tick

	PerCore []*CoreMetrics // Indexed by fleet position
}

// NewMetrics creates a Metrics with one CoreMetrics entry per core.
func NewMetrics(cores []*Core) *Metrics {
	m := &Metrics{
		PerCore: make([]*CoreMetrics, len(cores)),
	}
	for i, c := range cores {
		m.PerCore[i] = &CoreMetrics{
			ID:       c.ID,
			Type:     c.Type,
			PeakTemp: c.Temperature,
		}
	}
	return m
}

// ObserveCore accumulates one tick of a core's state into its counters.
// Called after the core has advanced, so the sample reflects the tick's
// outcome (the same point at which power is charged).
func (m *Metrics) ObserveCore(i int, c *Core) {
	cm := m.PerCore[i]

	draw := c.CurrentPowerDraw()
	cm.PowerConsumed += draw
	m.TotalPowerConsumed += draw

	switch {
	case c.ActivelyComputing():
		cm.BusyTicks++
	case c.Task() != nil:
		cm.IOWaitTicks++
	default:
		cm.IdleTicks++
	}

	if c.Throttled() {
		cm.ThrottledTicks++
	}
	if c.Temperature > cm.PeakTemp {
		cm.PeakTemp = c.Temperature
	}
}

// ObserveQueueDepth records the ready-queue depth for this tick.
func (m *Metrics) ObserveQueueDepth(depth int) {
	m.QueueDepthSamples = append(m.QueueDepthSamples, float64(depth))
}

// RecordCompletion records a task completion on the given fleet position.
func (m *Metrics) RecordCompletion(t *Task, corePos int) {
	m.CompletedTasks++
	m.ArrivalTickSum += t.ArrivalTick
	m.Turnarounds = append(m.Turnarounds, float64(t.Turnaround()))
	if corePos >= 0 && corePos < len(m.PerCore) {
		m.PerCore[corePos].TasksCompleted++
	}
}

// AvgTurnaround returns the headline turnaround figure: the final tick minus
// the mean arrival tick over completed tasks. Returns 0 when nothing
// completed.
func (m *Metrics) AvgTurnaround(finalTick int64) float64 {
	if m.CompletedTasks == 0 {
		return 0
	}
	meanArrival := float64(m.ArrivalTickSum) / float64(m.CompletedTasks)
	return float64(finalTick) - meanArrival
}

// FinalStats is the end-of-run report assembled from Metrics.
type FinalStats struct {
	TotalTicks         int64
	CompletedTasks     int
	TotalTasks         int
	TotalPowerConsumed float64
	AvgTurnaround      float64 // final tick - mean arrival over completed tasks

	Turnaround Distribution // per-task completion - arrival
	QueueDepth Distribution // ready-queue depth per tick

	PerCore []CoreMetrics
}

// Collect assembles FinalStats for a run that ended at finalTick with the
// given total task count.
func (m *Metrics) Collect(finalTick int64, totalTasks int) FinalStats {
	stats := FinalStats{
		TotalTicks:         finalTick,
		CompletedTasks:     m.CompletedTasks,
		TotalTasks:         totalTasks,
		TotalPowerConsumed: m.TotalPowerConsumed,
		AvgTurnaround:      m.AvgTurnaround(finalTick),
		Turnaround:         NewDistribution(m.Turnarounds),
		QueueDepth:         NewDistribution(m.QueueDepthSamples),
		PerCore:            make([]CoreMetrics, len(m.PerCore)),
	}
	for i, cm := range m.PerCore {
		stats.PerCore[i] = *cm
	}
	return stats
}
