package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Krish16012003/Janus-Scheduler/sim"
	"github.com/Krish16012003/Janus-Scheduler/sim/workload"
)

var (
	comparePolicies []string // Policies to replay the workload under
	compareLogLevel string   // Compare runs concurrently, so default to quiet logs
)

// policyResult pairs a policy name with the final stats of its run.
type policyResult struct {
	Policy string
	Stats  sim.FinalStats
}

// runComparison replays the identical generated workload under each policy
// and returns the results sorted best-first by average turnaround.
// Runs execute concurrently; determinism holds because every run generates
// its own task set from the same spec and seed.
func runComparison(ctx context.Context, spec *workload.ScenarioSpec, policies []string) ([]policyResult, error) {
	results := make([]policyResult, len(policies))

	g, _ := errgroup.WithContext(ctx)
	for i, name := range policies {
		i, name := i, name // per-iteration copies; required under pre-1.22 loop semantics
		g.Go(func() error {
			runSpec := *spec
			runSpec.Policy = name
			soc, err := workload.BuildSoC(&runSpec)
			if err != nil {
				return fmt.Errorf("policy %q: %w", name, err)
			}
			soc.Run(runSpec.Horizon())
			results[i] = policyResult{Policy: name, Stats: soc.FinalStats()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Stats.AvgTurnaround < results[j].Stats.AvgTurnaround
	})
	return results, nil
}

// compareCmd replays one workload under every requested assignment policy
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Replay one workload under each assignment policy and rank the results",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(compareLogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", compareLogLevel)
		}
		logrus.SetLevel(level)

		if len(comparePolicies) == 0 {
			logrus.Fatalf("No policies given")
		}
		for _, name := range comparePolicies {
			if name == "" || !sim.IsValidPolicy(name) {
				logrus.Fatalf("Unknown assignment policy %q (valid: %v)", name, sim.PolicyNames())
			}
		}

		spec, err := resolveSpec()
		if err != nil {
			logrus.Fatalf("Unable to resolve scenario: %v", err)
		}

		logrus.Infof("Comparing policies %v: %dP/%dE cores, %d tasks, seed=%d",
			comparePolicies, spec.PerfCores, spec.EffCores, spec.Tasks, spec.Seed)

		results, err := runComparison(cmd.Context(), spec, comparePolicies)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}

		renderComparison(results)
	},
}

func init() {
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", sim.PolicyNames(),
		"Comma-separated assignment policies to compare")
	compareCmd.Flags().StringVar(&compareLogLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Same scenario knobs as `run`
	compareCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for workload generation")
	compareCmd.Flags().IntVar(&perfCores, "p-cores", 2, "Number of performance cores")
	compareCmd.Flags().IntVar(&effCores, "e-cores", 4, "Number of efficiency cores")
	compareCmd.Flags().IntVar(&tasks, "tasks", 20, "Number of tasks to generate")
	compareCmd.Flags().Int64Var(&maxTicks, "max-ticks", workload.DefaultMaxTicks, "Tick budget before each run stops")
	compareCmd.Flags().IntVar(&arrivalSpread, "arrival-spread", workload.DefaultArrivalSpread,
		"Arrival ticks are drawn from [0, tasks*spread]; 0 = everything arrives at tick 0")
	compareCmd.Flags().Float64Var(&cpuRatio, "cpu-ratio", workload.DefaultCPUBoundRatio,
		"Fraction of generated tasks that are cpu-bound")
	compareCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file")
	compareCmd.Flags().StringVar(&presetName, "preset", "", "Built-in scenario preset (see 'janus-sim scenarios')")

	rootCmd.AddCommand(compareCmd)
}
