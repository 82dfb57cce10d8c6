package workload

import (
	"testing"

	"github.com/Krish16012003/Janus-Scheduler/sim"
)

func TestGenerate_DefaultMix_ProducesValidTasks(t *testing.T) {
	spec := &ScenarioSpec{Seed: 42, PerfCores: 2, EffCores: 4, Tasks: 20}

	tasks, err := Generate(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 20 {
		t.Fatalf("task count = %d, want 20", len(tasks))
	}

	arrivalMax := int64(20 * DefaultArrivalSpread)
	for i, task := range tasks {
		if task.ArrivalTick < 0 || task.ArrivalTick > arrivalMax {
			t.Errorf("task %d: ArrivalTick = %d, want in [0, %d]", i, task.ArrivalTick, arrivalMax)
		}
		switch task.Profile {
		case sim.ProfileCPUBound:
			if task.TotalCycles < DefaultCPUCycles.Min || task.TotalCycles > DefaultCPUCycles.Max {
				t.Errorf("task %d: cpu cycles = %d, want in [%d, %d]",
					i, task.TotalCycles, DefaultCPUCycles.Min, DefaultCPUCycles.Max)
			}
			if task.IOFrequency != 0 {
				t.Errorf("task %d: cpu-bound IOFrequency = %d, want 0", i, task.IOFrequency)
			}
		case sim.ProfileIOBound:
			if task.TotalCycles < DefaultIOCycles.Min || task.TotalCycles > DefaultIOCycles.Max {
				t.Errorf("task %d: io cycles = %d, want in [%d, %d]",
					i, task.TotalCycles, DefaultIOCycles.Min, DefaultIOCycles.Max)
			}
			if task.IOFrequency < DefaultIOFrequency.Min || task.IOFrequency > DefaultIOFrequency.Max {
				t.Errorf("task %d: IOFrequency = %d, want in [%d, %d]",
					i, task.IOFrequency, DefaultIOFrequency.Min, DefaultIOFrequency.Max)
			}
		default:
			t.Errorf("task %d: unknown profile %q", i, task.Profile)
		}
	}

	// Verify sorted by arrival tick
	for i := 1; i < len(tasks); i++ {
		if tasks[i].ArrivalTick < tasks[i-1].ArrivalTick {
			t.Errorf("tasks not sorted: [%d].ArrivalTick=%d < [%d].ArrivalTick=%d",
				i, tasks[i].ArrivalTick, i-1, tasks[i-1].ArrivalTick)
			break
		}
	}
	// Verify sequential IDs in arrival order
	for i, task := range tasks {
		if task.ID != i {
			t.Errorf("task %d: ID = %d, want %d", i, task.ID, i)
			break
		}
	}
}

func TestGenerate_Deterministic_SameSeedSameOutput(t *testing.T) {
	spec := &ScenarioSpec{Seed: 42, PerfCores: 2, EffCores: 4, Tasks: 30}

	first, err := Generate(spec)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(spec)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("different counts: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.ArrivalTick != b.ArrivalTick || a.Profile != b.Profile ||
			a.TotalCycles != b.TotalCycles || a.IOFrequency != b.IOFrequency {
			t.Errorf("task %d differs: %+v vs %+v", i, a, b)
			break
		}
	}
}

func TestGenerate_DifferentSeeds_DifferentWorkloads(t *testing.T) {
	specA := &ScenarioSpec{Seed: 1, Tasks: 20}
	specB := &ScenarioSpec{Seed: 2, Tasks: 20}

	tasksA, _ := Generate(specA)
	tasksB, _ := Generate(specB)

	same := true
	for i := range tasksA {
		if tasksA[i].ArrivalTick != tasksB[i].ArrivalTick || tasksA[i].TotalCycles != tasksB[i].TotalCycles {
			same = false
			break
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical workloads")
	}
}

func TestGenerate_RatioExtremes_ForceProfile(t *testing.T) {
	t.Run("ratio 1 is all cpu-bound", func(t *testing.T) {
		ratio := 1.0
		spec := &ScenarioSpec{Seed: 5, Tasks: 25, Mix: &MixSpec{CPUBoundRatio: &ratio}}

		tasks, err := Generate(spec)
		if err != nil {
			t.Fatal(err)
		}
		for i, task := range tasks {
			if task.Profile != sim.ProfileCPUBound {
				t.Errorf("task %d: profile = %q, want cpu-bound", i, task.Profile)
				break
			}
		}
	})

	t.Run("ratio 0 is all io-bound", func(t *testing.T) {
		ratio := 0.0
		spec := &ScenarioSpec{Seed: 5, Tasks: 25, Mix: &MixSpec{CPUBoundRatio: &ratio}}

		tasks, err := Generate(spec)
		if err != nil {
			t.Fatal(err)
		}
		for i, task := range tasks {
			if task.Profile != sim.ProfileIOBound {
				t.Errorf("task %d: profile = %q, want io-bound", i, task.Profile)
				break
			}
		}
	})
}

func TestGenerate_ZeroSpread_AllArriveAtOnce(t *testing.T) {
	spread := 0
	spec := &ScenarioSpec{Seed: 9, Tasks: 15, ArrivalSpread: &spread}

	tasks, err := Generate(spec)
	if err != nil {
		t.Fatal(err)
	}
	for i, task := range tasks {
		if task.ArrivalTick != 0 {
			t.Errorf("task %d: ArrivalTick = %d, want 0", i, task.ArrivalTick)
			break
		}
	}
}

func TestGenerate_MixOverride_RespectsCustomRange(t *testing.T) {
	ratio := 1.0
	spec := &ScenarioSpec{
		Seed: 3, Tasks: 40,
		Mix: &MixSpec{
			CPUBoundRatio: &ratio,
			CPUCycles:     &RangeSpec{Min: 10, Max: 12},
		},
	}

	tasks, err := Generate(spec)
	if err != nil {
		t.Fatal(err)
	}
	for i, task := range tasks {
		if task.TotalCycles < 10 || task.TotalCycles > 12 {
			t.Errorf("task %d: TotalCycles = %d, want in [10, 12]", i, task.TotalCycles)
			break
		}
	}
}

func TestGenerate_ZeroTasks_EmptyWorkload(t *testing.T) {
	tasks, err := Generate(&ScenarioSpec{Seed: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("task count = %d, want 0", len(tasks))
	}
}

func TestGenerate_InvalidSpec_ReturnsError(t *testing.T) {
	_, err := Generate(&ScenarioSpec{Tasks: -1})
	if err == nil {
		t.Fatal("expected error for invalid spec, got nil")
	}
}

// === BuildSoC Tests ===

func TestBuildSoC_InjectsGeneratedWorkload(t *testing.T) {
	spec := ScenarioDefault(42)

	soc, err := BuildSoC(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if soc.TotalTasks != 20 {
		t.Errorf("TotalTasks = %d, want 20", soc.TotalTasks)
	}
	if len(soc.Cores) != 6 {
		t.Errorf("fleet size = %d, want 6", len(soc.Cores))
	}
	if census := soc.Census(); census.Pending != 20 || census.Total() != 20 {
		t.Errorf("census = %+v, want 20 pending", census)
	}
}

func TestBuildSoC_InvalidSpec_ReturnsError(t *testing.T) {
	_, err := BuildSoC(&ScenarioSpec{PerfCores: -1})
	if err == nil {
		t.Fatal("expected error for invalid spec, got nil")
	}
}

func TestBuildSoC_Run_DeterministicEndToEnd(t *testing.T) {
	// Same spec, same seed: two independent runs agree tick for tick
	build := func() *sim.SoC {
		soc, err := BuildSoC(ScenarioDefault(42))
		if err != nil {
			t.Fatal(err)
		}
		return soc
	}

	first := build()
	second := build()
	horizon := ScenarioDefault(42).Horizon()
	first.Run(horizon)
	second.Run(horizon)

	statsA, statsB := first.FinalStats(), second.FinalStats()
	if statsA.TotalTicks != statsB.TotalTicks {
		t.Errorf("TotalTicks diverged: %d vs %d", statsA.TotalTicks, statsB.TotalTicks)
	}
	if statsA.CompletedTasks != statsB.CompletedTasks {
		t.Errorf("CompletedTasks diverged: %d vs %d", statsA.CompletedTasks, statsB.CompletedTasks)
	}
	if statsA.TotalPowerConsumed != statsB.TotalPowerConsumed {
		t.Errorf("TotalPowerConsumed diverged: %v vs %v",
			statsA.TotalPowerConsumed, statsB.TotalPowerConsumed)
	}
	if statsA.AvgTurnaround != statsB.AvgTurnaround {
		t.Errorf("AvgTurnaround diverged: %v vs %v", statsA.AvgTurnaround, statsB.AvgTurnaround)
	}

	// The run makes real progress and never loses a task
	if statsA.CompletedTasks == 0 {
		t.Error("no tasks completed within the default horizon")
	}
	if census := first.Census(); census.Total() != 20 {
		t.Errorf("census total = %d, want 20", census.Total())
	}
}

// === Benchmark ===

func BenchmarkGenerate_DefaultScenario(b *testing.B) {
	spec := ScenarioDefault(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(spec); err != nil {
			b.Fatal(err)
		}
	}
}
