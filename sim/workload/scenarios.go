package workload

import (
	"fmt"
	"sort"
)

// Built-in scenario presets for common chip and workload shapes.
// Each returns a valid ScenarioSpec ready for use with Generate.

// ScenarioDefault recreates the classic run: two performance cores, four
// efficiency cores, twenty mixed tasks, a thousand-tick budget.
func ScenarioDefault(seed int64) *ScenarioSpec {
	return &ScenarioSpec{
		Name: "default", Seed: seed,
		PerfCores: 2, EffCores: 4,
		Tasks: 20, MaxTicks: 1000,
	}
}

// ScenarioCPUHeavy skews the mix toward cpu-bound tasks so performance cores
// saturate while efficiency cores mostly idle or take fallback work.
func ScenarioCPUHeavy(seed int64) *ScenarioSpec {
	ratio := 0.9
	return &ScenarioSpec{
		Name: "cpu-heavy", Seed: seed,
		PerfCores: 2, EffCores: 2,
		Tasks: 24, MaxTicks: 4000,
		Mix: &MixSpec{CPUBoundRatio: &ratio},
	}
}

// ScenarioIOHeavy skews the mix toward io-bound tasks so cores spend much of
// the run cooling through IO pauses.
func ScenarioIOHeavy(seed int64) *ScenarioSpec {
	ratio := 0.1
	return &ScenarioSpec{
		Name: "io-heavy", Seed: seed,
		PerfCores: 2, EffCores: 6,
		Tasks: 30, MaxTicks: 2000,
		Mix: &MixSpec{CPUBoundRatio: &ratio},
	}
}

// ScenarioThrottleStress drives a tiny fleet with long cpu-bound tasks all
// arriving at tick 0, guaranteeing sustained heat and thermal throttling.
func ScenarioThrottleStress(seed int64) *ScenarioSpec {
	ratio := 1.0
	spread := 0
	return &ScenarioSpec{
		Name: "throttle-stress", Seed: seed,
		PerfCores: 1, EffCores: 1,
		Tasks: 12, MaxTicks: 6000,
		ArrivalSpread: &spread,
		Mix: &MixSpec{
			CPUBoundRatio: &ratio,
			CPUCycles:     &RangeSpec{Min: 400, Max: 500},
		},
	}
}

// ScenarioInfo pairs a preset name with a one-line description for listings.
type ScenarioInfo struct {
	Name        string
	Description string
	Build       func(seed int64) *ScenarioSpec
}

// scenarioRegistry maps preset names to their builders and descriptions.
var scenarioRegistry = map[string]ScenarioInfo{
	"default": {
		Name:        "default",
		Description: "2P/4E, 20 mixed tasks, 1000-tick budget",
		Build:       ScenarioDefault,
	},
	"cpu-heavy": {
		Name:        "cpu-heavy",
		Description: "2P/2E, 90% cpu-bound tasks, saturated performance cores",
		Build:       ScenarioCPUHeavy,
	},
	"io-heavy": {
		Name:        "io-heavy",
		Description: "2P/6E, 90% io-bound tasks, cores cool through IO pauses",
		Build:       ScenarioIOHeavy,
	},
	"throttle-stress": {
		Name:        "throttle-stress",
		Description: "1P/1E, long cpu-bound tasks arriving at once, sustained throttling",
		Build:       ScenarioThrottleStress,
	},
}

// Scenarios returns the built-in presets sorted by name.
func Scenarios() []ScenarioInfo {
	infos := make([]ScenarioInfo, 0, len(scenarioRegistry))
	for _, info := range scenarioRegistry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// NewScenario builds a preset by name with the given seed.
// Returns an error for unrecognized names (user-facing lookup).
func NewScenario(name string, seed int64) (*ScenarioSpec, error) {
	info, ok := scenarioRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario preset %q; run 'janus-sim scenarios' to list presets", name)
	}
	return info.Build(seed), nil
}
