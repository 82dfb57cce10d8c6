package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Krish16012003/Janus-Scheduler/sim"
)

// Default workload parameters, matching the classic 2P/4E/20-task chip run.
const (
	DefaultMaxTicks      int64   = 1000
	DefaultArrivalSpread int     = 5
	DefaultCPUBoundRatio float64 = 0.5
)

// Default draw ranges for the task mix.
var (
	DefaultCPUCycles   = RangeSpec{Min: 200, Max: 500}
	DefaultIOCycles    = RangeSpec{Min: 50, Max: 100}
	DefaultIOFrequency = RangeSpec{Min: 3, Max: 8}
)

// ScenarioSpec is the top-level scenario configuration: the chip shape, the
// workload size, and optional task-mix overrides.
// Loaded from YAML via LoadScenarioSpec(path).
type ScenarioSpec struct {
	Name          string   `yaml:"name,omitempty"`
	Seed          int64    `yaml:"seed"`
	PerfCores     int      `yaml:"perf_cores"`
	EffCores      int      `yaml:"eff_cores"`
	Tasks         int      `yaml:"tasks"`
	MaxTicks      int64    `yaml:"max_ticks,omitempty"`      // 0 = DefaultMaxTicks
	Policy        string   `yaml:"policy,omitempty"`         // "" = affinity
	ArrivalSpread *int     `yaml:"arrival_spread,omitempty"` // nil = DefaultArrivalSpread; 0 = all tasks arrive at tick 0
	Mix           *MixSpec `yaml:"mix,omitempty"`
}

// MixSpec overrides the default task-mix parameters.
// Nil pointer fields mean "not set in YAML", so defaults apply.
type MixSpec struct {
	CPUBoundRatio *float64   `yaml:"cpu_bound_ratio,omitempty"` // fraction of cpu-bound tasks, default 0.5
	CPUCycles     *RangeSpec `yaml:"cpu_cycles,omitempty"`      // default [200, 500]
	IOCycles      *RangeSpec `yaml:"io_cycles,omitempty"`       // default [50, 100]
	IOFrequency   *RangeSpec `yaml:"io_frequency,omitempty"`    // percent, default [3, 8]
}

// RangeSpec is an inclusive integer range draws are taken from.
type RangeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// LoadScenarioSpec reads and parses a YAML scenario specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario spec: %w", err)
	}
	var spec ScenarioSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *ScenarioSpec) Validate() error {
	if s.PerfCores < 0 {
		return fmt.Errorf("perf_cores must be non-negative, got %d", s.PerfCores)
	}
	if s.EffCores < 0 {
		return fmt.Errorf("eff_cores must be non-negative, got %d", s.EffCores)
	}
	if s.Tasks < 0 {
		return fmt.Errorf("tasks must be non-negative, got %d", s.Tasks)
	}
	if s.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", s.MaxTicks)
	}
	if s.ArrivalSpread != nil && *s.ArrivalSpread < 0 {
		return fmt.Errorf("arrival_spread must be non-negative, got %d", *s.ArrivalSpread)
	}
	if !sim.IsValidPolicy(s.Policy) {
		return fmt.Errorf("unknown assignment policy %q; valid: affinity, fcfs, sjf", s.Policy)
	}
	if s.Mix != nil {
		if err := s.Mix.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MixSpec) validate() error {
	if m.CPUBoundRatio != nil {
		if r := *m.CPUBoundRatio; r < 0 || r > 1 {
			return fmt.Errorf("mix.cpu_bound_ratio must be in [0, 1], got %f", r)
		}
	}
	if err := validateRange("mix.cpu_cycles", m.CPUCycles, 1, 0); err != nil {
		return err
	}
	if err := validateRange("mix.io_cycles", m.IOCycles, 1, 0); err != nil {
		return err
	}
	if err := validateRange("mix.io_frequency", m.IOFrequency, 0, 100); err != nil {
		return err
	}
	return nil
}

// validateRange checks Min <= Max and the [floor, ceil] bounds.
// A ceil of 0 means unbounded above.
func validateRange(prefix string, r *RangeSpec, floor, ceil int) error {
	if r == nil {
		return nil
	}
	if r.Min < floor {
		return fmt.Errorf("%s.min must be at least %d, got %d", prefix, floor, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s.max must be at least min (%d), got %d", prefix, r.Min, r.Max)
	}
	if ceil > 0 && r.Max > ceil {
		return fmt.Errorf("%s.max must be at most %d, got %d", prefix, ceil, r.Max)
	}
	return nil
}

// SimConfig maps the chip-shape fields onto a sim.Config.
func (s *ScenarioSpec) SimConfig() sim.Config {
	return sim.Config{
		PerfCores: s.PerfCores,
		EffCores:  s.EffCores,
		Policy:    s.Policy,
	}
}

// Horizon returns the tick budget, applying DefaultMaxTicks when unset.
func (s *ScenarioSpec) Horizon() int64 {
	if s.MaxTicks == 0 {
		return DefaultMaxTicks
	}
	return s.MaxTicks
}

// arrivalSpread returns the arrival-spread factor, applying the default when
// unset. Arrival ticks are drawn uniformly from [0, Tasks*spread]; an
// explicit zero makes every task arrive at tick 0.
func (s *ScenarioSpec) arrivalSpread() int {
	if s.ArrivalSpread == nil {
		return DefaultArrivalSpread
	}
	return *s.ArrivalSpread
}

// mixParams is the fully-resolved task mix used by generation.
type mixParams struct {
	cpuRatio  float64
	cpuCycles RangeSpec
	ioCycles  RangeSpec
	ioFreq    RangeSpec
}

// resolvedMix applies defaults to the optional mix overrides.
func (s *ScenarioSpec) resolvedMix() mixParams {
	p := mixParams{
		cpuRatio:  DefaultCPUBoundRatio,
		cpuCycles: DefaultCPUCycles,
		ioCycles:  DefaultIOCycles,
		ioFreq:    DefaultIOFrequency,
	}
	if s.Mix == nil {
		return p
	}
	if s.Mix.CPUBoundRatio != nil {
		p.cpuRatio = *s.Mix.CPUBoundRatio
	}
	if s.Mix.CPUCycles != nil {
		p.cpuCycles = *s.Mix.CPUCycles
	}
	if s.Mix.IOCycles != nil {
		p.ioCycles = *s.Mix.IOCycles
	}
	if s.Mix.IOFrequency != nil {
		p.ioFreq = *s.Mix.IOFrequency
	}
	return p
}
