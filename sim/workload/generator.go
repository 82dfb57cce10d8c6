package workload

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Krish16012003/Janus-Scheduler/sim"
)

// taskDraft holds the drawn parameters of one task before IDs are assigned.
type taskDraft struct {
	arrival int64
	profile sim.Profile
	cycles  int
	ioFreq  int
}

// Generate creates a task workload from a ScenarioSpec.
// Deterministic given the same spec and seed.
// Returns tasks sorted by arrival tick with sequential IDs, each carrying a
// private RNG stream for its IO events.
func Generate(spec *ScenarioSpec) ([]*sim.Task, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario spec: %w", err)
	}

	mix := spec.resolvedMix()

	// Partitioned RNG keeps the draw streams independent: reordering IO
	// rolls at run time can never perturb the generated workload.
	prng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	workloadRNG := prng.ForSubsystem(sim.SubsystemWorkload)
	ioRNG := prng.ForSubsystem(sim.SubsystemTaskIO)

	arrivalMax := spec.Tasks * spec.arrivalSpread()

	drafts := make([]taskDraft, 0, spec.Tasks)
	for i := 0; i < spec.Tasks; i++ {
		d := taskDraft{
			arrival: int64(workloadRNG.Intn(arrivalMax + 1)),
		}
		if workloadRNG.Float64() < mix.cpuRatio {
			d.profile = sim.ProfileCPUBound
			d.cycles = randIn(workloadRNG, mix.cpuCycles)
			d.ioFreq = 0
		} else {
			d.profile = sim.ProfileIOBound
			d.cycles = randIn(workloadRNG, mix.ioCycles)
			d.ioFreq = randIn(workloadRNG, mix.ioFreq)
		}
		drafts = append(drafts, d)
	}

	// Sort by arrival, then assign IDs in arrival order so "lower ID"
	// and "arrived earlier" agree everywhere downstream.
	sort.SliceStable(drafts, func(i, j int) bool {
		return drafts[i].arrival < drafts[j].arrival
	})

	tasks := make([]*sim.Task, 0, len(drafts))
	for i, d := range drafts {
		// Per-task RNG (derived from the taskio stream for isolation).
		taskRNG := newRandFromSeed(ioRNG.Int63())
		tasks = append(tasks, sim.NewTask(i, d.arrival, d.profile, d.cycles, d.ioFreq, taskRNG))
	}
	return tasks, nil
}

// BuildSoC constructs a chip from the spec and injects its generated
// workload, ready for ticking.
func BuildSoC(spec *ScenarioSpec) (*sim.SoC, error) {
	tasks, err := Generate(spec)
	if err != nil {
		return nil, err
	}
	soc, err := sim.New(spec.SimConfig())
	if err != nil {
		return nil, err
	}
	soc.Inject(tasks)
	return soc, nil
}

// randIn draws uniformly from the inclusive range r.
func randIn(rng *rand.Rand, r RangeSpec) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// newRandFromSeed creates a new *rand.Rand from a seed (avoids importing math/rand in callers).
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
