package sim

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// === Distribution Tests ===

func TestNewDistribution_EmptyInput_ReturnsZeroValue(t *testing.T) {
	d := NewDistribution(nil)

	if d.Count != 0 || d.Mean != 0 || d.Min != 0 || d.Max != 0 {
		t.Errorf("empty distribution = %+v, want zero value", d)
	}
}

func TestNewDistribution_SingleValue(t *testing.T) {
	d := NewDistribution([]float64{42.0})

	if d.Count != 1 {
		t.Errorf("Count = %d, want 1", d.Count)
	}
	for name, got := range map[string]float64{
		"Mean": d.Mean, "P50": d.P50, "P95": d.P95, "P99": d.P99, "Min": d.Min, "Max": d.Max,
	} {
		if got != 42.0 {
			t.Errorf("%s = %v, want 42.0", name, got)
		}
	}
}

func TestNewDistribution_KnownValues(t *testing.T) {
	// GIVEN five evenly spaced samples, deliberately unsorted
	values := []float64{30, 10, 50, 20, 40}

	// WHEN summarized
	d := NewDistribution(values)

	// THEN the summary matches hand-computed statistics
	// (percentiles interpolate linearly over rank p/100 * (n-1))
	if d.Count != 5 {
		t.Errorf("Count = %d, want 5", d.Count)
	}
	if !almostEqual(d.Mean, 30.0) {
		t.Errorf("Mean = %v, want 30.0", d.Mean)
	}
	if !almostEqual(d.P50, 30.0) {
		t.Errorf("P50 = %v, want 30.0", d.P50)
	}
	if !almostEqual(d.P95, 48.0) {
		t.Errorf("P95 = %v, want 48.0", d.P95)
	}
	if !almostEqual(d.P99, 49.6) {
		t.Errorf("P99 = %v, want 49.6", d.P99)
	}
	if d.Min != 10.0 || d.Max != 50.0 {
		t.Errorf("Min/Max = %v/%v, want 10.0/50.0", d.Min, d.Max)
	}

	// Input order is preserved (summarization sorts a copy)
	if values[0] != 30 || values[4] != 40 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestPercentile_ExactRank_NoInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	// P0, P50 and P100 land on exact ranks for n=5
	if got := percentile(sorted, 0); got != 1.0 {
		t.Errorf("P0 = %v, want 1.0", got)
	}
	if got := percentile(sorted, 50); got != 3.0 {
		t.Errorf("P50 = %v, want 3.0", got)
	}
	if got := percentile(sorted, 100); got != 5.0 {
		t.Errorf("P100 = %v, want 5.0", got)
	}
}

// === CoreMetrics Tests ===

func TestNewMetrics_OneEntryPerCore(t *testing.T) {
	cores := []*Core{
		NewCore(0, CorePerformance),
		NewCore(1, CoreEfficiency),
		NewCore(2, CoreEfficiency),
	}

	m := NewMetrics(cores)

	if len(m.PerCore) != 3 {
		t.Fatalf("PerCore entries = %d, want 3", len(m.PerCore))
	}
	for i, c := range cores {
		cm := m.PerCore[i]
		if cm.ID != c.ID || cm.Type != c.Type {
			t.Errorf("PerCore[%d] identity = (%d, %q), want (%d, %q)", i, cm.ID, cm.Type, c.ID, c.Type)
		}
		if cm.PeakTemp != AmbientTemperature {
			t.Errorf("PerCore[%d].PeakTemp = %v, want ambient", i, cm.PeakTemp)
		}
	}
}

func TestMetrics_ObserveCore_ClassifiesTicks(t *testing.T) {
	// GIVEN one busy, one IO-waiting, and one idle core
	busy := NewCore(0, CorePerformance)
	busy.AssignTask(NewTask(1, 0, ProfileCPUBound, 100, 0, nil))

	waiting := NewCore(1, CoreEfficiency)
	pausedTask := NewTask(2, 0, ProfileIOBound, 50, 0, nil)
	pausedTask.IOWaitTimer = 3
	waiting.AssignTask(pausedTask)

	idle := NewCore(2, CoreEfficiency)

	cores := []*Core{busy, waiting, idle}
	m := NewMetrics(cores)

	// WHEN one tick is observed
	for i, c := range cores {
		m.ObserveCore(i, c)
	}

	// THEN each tick lands in exactly one occupancy bucket
	if m.PerCore[0].BusyTicks != 1 || m.PerCore[0].IOWaitTicks != 0 || m.PerCore[0].IdleTicks != 0 {
		t.Errorf("busy core buckets = %+v", *m.PerCore[0])
	}
	if m.PerCore[1].BusyTicks != 0 || m.PerCore[1].IOWaitTicks != 1 || m.PerCore[1].IdleTicks != 0 {
		t.Errorf("waiting core buckets = %+v", *m.PerCore[1])
	}
	if m.PerCore[2].BusyTicks != 0 || m.PerCore[2].IOWaitTicks != 0 || m.PerCore[2].IdleTicks != 1 {
		t.Errorf("idle core buckets = %+v", *m.PerCore[2])
	}

	// Power: 4.0 active + 0.1 waiting + 0.1 idle
	if !almostEqual(m.TotalPowerConsumed, 4.2) {
		t.Errorf("TotalPowerConsumed = %v, want 4.2", m.TotalPowerConsumed)
	}
	if !almostEqual(m.PerCore[0].PowerConsumed, 4.0) {
		t.Errorf("busy core power = %v, want 4.0", m.PerCore[0].PowerConsumed)
	}
}

func TestMetrics_ObserveCore_TracksThrottleAndPeak(t *testing.T) {
	c := NewCore(0, CorePerformance)
	m := NewMetrics([]*Core{c})

	c.Temperature = 91.5
	m.ObserveCore(0, c)

	c.Temperature = 88.0
	m.ObserveCore(0, c)

	if m.PerCore[0].ThrottledTicks != 1 {
		t.Errorf("ThrottledTicks = %d, want 1", m.PerCore[0].ThrottledTicks)
	}
	if m.PerCore[0].PeakTemp != 91.5 {
		t.Errorf("PeakTemp = %v, want 91.5", m.PerCore[0].PeakTemp)
	}
}

// === Completion and Turnaround Tests ===

func TestMetrics_RecordCompletion_Accumulates(t *testing.T) {
	m := NewMetrics([]*Core{NewCore(0, CorePerformance), NewCore(1, CoreEfficiency)})

	first := NewTask(0, 10, ProfileCPUBound, 100, 0, nil)
	first.CompletionTick = 60
	second := NewTask(1, 30, ProfileIOBound, 50, 0, nil)
	second.CompletionTick = 90

	m.RecordCompletion(first, 0)
	m.RecordCompletion(second, 1)

	if m.CompletedTasks != 2 {
		t.Errorf("CompletedTasks = %d, want 2", m.CompletedTasks)
	}
	if m.ArrivalTickSum != 40 {
		t.Errorf("ArrivalTickSum = %d, want 40", m.ArrivalTickSum)
	}
	if len(m.Turnarounds) != 2 || m.Turnarounds[0] != 50.0 || m.Turnarounds[1] != 60.0 {
		t.Errorf("Turnarounds = %v, want [50 60]", m.Turnarounds)
	}
	if m.PerCore[0].TasksCompleted != 1 || m.PerCore[1].TasksCompleted != 1 {
		t.Errorf("per-core completions = %d/%d, want 1/1",
			m.PerCore[0].TasksCompleted, m.PerCore[1].TasksCompleted)
	}
}

func TestMetrics_RecordCompletion_OutOfRangePosition_Safe(t *testing.T) {
	m := NewMetrics([]*Core{NewCore(0, CorePerformance)})
	task := NewTask(0, 0, ProfileCPUBound, 10, 0, nil)
	task.CompletionTick = 5

	m.RecordCompletion(task, -1)

	if m.CompletedTasks != 1 {
		t.Errorf("CompletedTasks = %d, want 1", m.CompletedTasks)
	}
	if m.PerCore[0].TasksCompleted != 0 {
		t.Errorf("TasksCompleted = %d, want 0 for unattributed completion", m.PerCore[0].TasksCompleted)
	}
}

func TestMetrics_AvgTurnaround(t *testing.T) {
	t.Run("no completions returns zero", func(t *testing.T) {
		m := NewMetrics(nil)
		if got := m.AvgTurnaround(500); got != 0 {
			t.Errorf("AvgTurnaround = %v, want 0", got)
		}
	})

	t.Run("final tick minus mean arrival", func(t *testing.T) {
		m := NewMetrics(nil)
		a := NewTask(0, 10, ProfileCPUBound, 10, 0, nil)
		a.CompletionTick = 40
		b := NewTask(1, 30, ProfileCPUBound, 10, 0, nil)
		b.CompletionTick = 80
		m.RecordCompletion(a, -1)
		m.RecordCompletion(b, -1)

		// mean arrival = 20, so 100 - 20 = 80
		if got := m.AvgTurnaround(100); !almostEqual(got, 80.0) {
			t.Errorf("AvgTurnaround(100) = %v, want 80.0", got)
		}
	})
}

// === Collect Tests ===

func TestMetrics_Collect_AssemblesFinalStats(t *testing.T) {
	core := NewCore(0, CorePerformance)
	m := NewMetrics([]*Core{core})

	core.AssignTask(NewTask(0, 0, ProfileCPUBound, 100, 0, nil))
	m.ObserveCore(0, core)
	m.ObserveQueueDepth(3)
	m.ObserveQueueDepth(1)

	done := NewTask(1, 5, ProfileCPUBound, 10, 0, nil)
	done.CompletionTick = 25
	m.RecordCompletion(done, 0)

	stats := m.Collect(200, 7)

	if stats.TotalTicks != 200 {
		t.Errorf("TotalTicks = %d, want 200", stats.TotalTicks)
	}
	if stats.CompletedTasks != 1 || stats.TotalTasks != 7 {
		t.Errorf("completions = %d/%d, want 1/7", stats.CompletedTasks, stats.TotalTasks)
	}
	if !almostEqual(stats.AvgTurnaround, 195.0) {
		t.Errorf("AvgTurnaround = %v, want 195.0", stats.AvgTurnaround)
	}
	if stats.Turnaround.Count != 1 || stats.Turnaround.Mean != 20.0 {
		t.Errorf("Turnaround = %+v, want single sample of 20", stats.Turnaround)
	}
	if stats.QueueDepth.Count != 2 || !almostEqual(stats.QueueDepth.Mean, 2.0) {
		t.Errorf("QueueDepth = %+v, want mean 2.0 over 2 samples", stats.QueueDepth)
	}
	if len(stats.PerCore) != 1 || stats.PerCore[0].BusyTicks != 1 {
		t.Errorf("PerCore = %+v, want one entry with 1 busy tick", stats.PerCore)
	}

	// PerCore entries are copies, detached from the live counters
	m.PerCore[0].BusyTicks = 99
	if stats.PerCore[0].BusyTicks != 1 {
		t.Error("Collect() returned live per-core references, want copies")
	}
}
