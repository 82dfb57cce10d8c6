package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Krish16012003/Janus-Scheduler/sim/trace"
	"github.com/Krish16012003/Janus-Scheduler/sim/workload"
)

var (
	// CLI flags for the chip shape and workload
	seed          int64   // Seed for workload generation
	perfCores     int     // Number of performance cores
	effCores      int     // Number of efficiency cores
	tasks         int     // Number of tasks to generate
	maxTicks      int64   // Tick budget for the run
	policy        string  // Assignment policy name
	arrivalSpread int     // Arrival ticks drawn from [0, tasks*spread]
	cpuRatio      float64 // Fraction of cpu-bound tasks

	// CLI flags for scenario selection
	scenarioPath string // YAML scenario file (overrides shape flags)
	presetName   string // Built-in scenario preset (overrides shape flags)

	// CLI flags for output and pacing
	logLevel    string  // Log verbosity level
	statusEvery int     // Print fleet status every N ticks (0 = off)
	tps         float64 // Tick pacing in ticks per second (0 = unpaced)
	traceLevel  string  // Decision tracing: none or decisions
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "janus-sim",
	Short: "Tick-driven simulator for heterogeneous multi-core scheduling",
}

// resolveSpec builds the scenario from --scenario, --preset, or the shape
// flags, in that order of precedence.
func resolveSpec() (*workload.ScenarioSpec, error) {
	if scenarioPath != "" && presetName != "" {
		return nil, fmt.Errorf("--scenario and --preset are mutually exclusive")
	}
	if scenarioPath != "" {
		return workload.LoadScenarioSpec(scenarioPath)
	}
	if presetName != "" {
		return workload.NewScenario(presetName, seed)
	}

	spread := arrivalSpread
	spec := &workload.ScenarioSpec{
		Name:          "flags",
		Seed:          seed,
		PerfCores:     perfCores,
		EffCores:      effCores,
		Tasks:         tasks,
		MaxTicks:      maxTicks,
		Policy:        policy,
		ArrivalSpread: &spread,
	}
	if cpuRatio != workload.DefaultCPUBoundRatio {
		r := cpuRatio
		spec.Mix = &workload.MixSpec{CPUBoundRatio: &r}
	}
	return spec, nil
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the chip simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q (valid: none, decisions)", traceLevel)
		}

		spec, err := resolveSpec()
		if err != nil {
			logrus.Fatalf("Unable to resolve scenario: %v", err)
		}

		soc, err := workload.BuildSoC(spec)
		if err != nil {
			logrus.Fatalf("Unable to build simulation: %v", err)
		}

		var tr *trace.SimulationTrace
		if trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions {
			tr = trace.NewSimulationTrace(trace.TraceLevelDecisions)
			soc.SetTrace(tr)
		}

		horizon := spec.Horizon()
		logrus.Infof("Starting simulation: %dP/%dE cores, %d tasks, policy=%q, seed=%d, budget=%d ticks",
			spec.PerfCores, spec.EffCores, spec.Tasks, spec.Policy, spec.Seed, horizon)

		startTime := time.Now()

		var limiter *rate.Limiter
		if tps > 0 {
			limiter = rate.NewLimiter(rate.Limit(tps), 1)
		}

		// The bar would fight with per-tick tables and info logs, so it
		// only appears when both are off.
		var bar *progressbar.ProgressBar
		if statusEvery == 0 && level <= logrus.WarnLevel {
			bar = progressbar.NewOptions(soc.TotalTasks,
				progressbar.OptionSetDescription("Simulating"),
				progressbar.OptionSetWidth(50),
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "█",
					SaucerHead:    "█",
					SaucerPadding: "░",
					BarStart:      "│",
					BarEnd:        "│",
				}),
				progressbar.OptionEnableColorCodes(true),
			)
		}

		ctx := cmd.Context()
		for soc.Metrics.CompletedTasks < soc.TotalTasks && soc.Clock < horizon {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					logrus.Warnf("Pacing interrupted: %v", err)
					break
				}
			}
			soc.Tick()
			if bar != nil {
				_ = bar.Set(soc.Metrics.CompletedTasks)
			}
			if statusEvery > 0 && soc.Clock%int64(statusEvery) == 0 {
				renderFleet(soc)
			}
		}
		if bar != nil {
			_ = bar.Finish()
		}

		renderFinalStats(soc.FinalStats(), time.Since(startTime))
		if tr != nil {
			renderTraceSummary(trace.Summarize(tr))
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for workload generation")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Chip shape and workload
	runCmd.Flags().IntVar(&perfCores, "p-cores", 2, "Number of performance cores")
	runCmd.Flags().IntVar(&effCores, "e-cores", 4, "Number of efficiency cores")
	runCmd.Flags().IntVar(&tasks, "tasks", 20, "Number of tasks to generate")
	runCmd.Flags().Int64Var(&maxTicks, "max-ticks", workload.DefaultMaxTicks, "Tick budget before the run stops")
	runCmd.Flags().StringVar(&policy, "policy", "affinity", "Assignment policy (affinity, fcfs, sjf)")
	runCmd.Flags().IntVar(&arrivalSpread, "arrival-spread", workload.DefaultArrivalSpread,
		"Arrival ticks are drawn from [0, tasks*spread]; 0 = everything arrives at tick 0")
	runCmd.Flags().Float64Var(&cpuRatio, "cpu-ratio", workload.DefaultCPUBoundRatio,
		"Fraction of generated tasks that are cpu-bound")

	// Scenario selection (overrides the shape flags)
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file")
	runCmd.Flags().StringVar(&presetName, "preset", "", "Built-in scenario preset (see 'janus-sim scenarios')")

	// Output and pacing
	runCmd.Flags().IntVar(&statusEvery, "status-every", 10, "Print fleet status every N ticks (0 = off)")
	runCmd.Flags().Float64Var(&tps, "tps", 0, "Pace the run at N ticks per second (0 = unpaced)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision tracing (none, decisions)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
