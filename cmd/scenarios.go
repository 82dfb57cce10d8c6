package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Krish16012003/Janus-Scheduler/sim/workload"
)

// scenariosCmd lists the built-in scenario presets
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in scenario presets",
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Shape", "Tasks", "Budget", "Description")

		for _, info := range workload.Scenarios() {
			spec := info.Build(0)
			_ = table.Append(
				info.Name,
				fmt.Sprintf("%dP/%dE", spec.PerfCores, spec.EffCores),
				fmt.Sprintf("%d", spec.Tasks),
				fmt.Sprintf("%d ticks", spec.Horizon()),
				info.Description,
			)
		}

		if err := table.Render(); err != nil {
			colorPrintLn(Red, "Error rendering scenarios table")
		}
		fmt.Println()
		fmt.Println("Run a preset with: janus-sim run --preset <name> [--seed N]")
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
