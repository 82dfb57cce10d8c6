package sim

import "fmt"

// Config groups chip-construction parameters for New.
type Config struct {
	PerfCores int    // performance core count; IDs 0..PerfCores-1
	EffCores  int    // efficiency core count; IDs follow the performance cores
	Policy    string // assignment policy name; "" selects affinity
}

// Validate checks core counts and the policy name.
// A chip with zero cores is valid: ticks proceed and the queue only grows.
func (c Config) Validate() error {
	if c.PerfCores < 0 {
		return fmt.Errorf("performance core count must be non-negative, got %d", c.PerfCores)
	}
	if c.EffCores < 0 {
		return fmt.Errorf("efficiency core count must be non-negative, got %d", c.EffCores)
	}
	if !IsValidPolicy(c.Policy) {
		return fmt.Errorf("unknown assignment policy %q", c.Policy)
	}
	return nil
}
