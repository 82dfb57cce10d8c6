// Console rendering for per-tick fleet status, final reports, policy
// comparisons, and trace summaries.

package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/Krish16012003/Janus-Scheduler/sim"
	"github.com/Krish16012003/Janus-Scheduler/sim/trace"
)

// Shared color styles for console output.
var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
)

func colorPrintLn(c *color.Color, a ...any) {
	_, _ = c.Println(a...)
}

func colorPrintf(c *color.Color, format string, a ...any) {
	_, _ = c.Printf(format, a...)
}

func printSectionHeader(title string, descriptions ...string) {
	fmt.Println()
	colorPrintLn(Bold, "═══════════════════════════════════════════════════════════")
	colorPrintLn(Bold, title)
	colorPrintLn(Bold, "═══════════════════════════════════════════════════════════")
	for _, desc := range descriptions {
		fmt.Println(desc)
	}
	fmt.Println()
}

// renderFleet prints the per-tick status block: one row per core plus the
// ready queue and the task census.
func renderFleet(soc *sim.SoC) {
	fmt.Println()
	colorPrintf(Bold, "── Status at tick %d ──\n", soc.Clock)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Core", "Type", "Temp", "Speed", "Power", "Task")

	for _, snap := range soc.Snapshot() {
		temp := fmt.Sprintf("%.1f°C", snap.Temperature)
		if snap.Throttled {
			temp += " [THROTTLED]"
		}
		status := "Idle"
		if snap.TaskID >= 0 {
			status = fmt.Sprintf("Task-%d (%s) %.1f/%d",
				snap.TaskID, snap.TaskProfile, snap.CyclesDone, snap.TotalCycles)
			if snap.IOWaiting {
				status += " [IO]"
			}
		}
		_ = table.Append(
			fmt.Sprintf("Core-%d", snap.ID),
			snap.Type.Short(),
			temp,
			fmt.Sprintf("%.1f", snap.Speed),
			fmt.Sprintf("%.1f", snap.PowerDraw),
			status,
		)
	}

	if err := table.Render(); err != nil {
		colorPrintLn(Red, "Error rendering fleet table")
	}

	census := soc.Census()
	fmt.Printf("Queue: %v\n", soc.ReadyQ.IDs())
	fmt.Printf("Tasks: %d pending / %d ready / %d bound / %d completed\n",
		census.Pending, census.Ready, census.Bound, census.Completed)
}

func distRow(name string, d sim.Distribution) []any {
	return []any{
		name,
		fmt.Sprintf("%.2f", d.Mean),
		fmt.Sprintf("%.2f", d.P50),
		fmt.Sprintf("%.2f", d.P95),
		fmt.Sprintf("%.2f", d.P99),
		fmt.Sprintf("%.2f", d.Min),
		fmt.Sprintf("%.2f", d.Max),
	}
}

// renderFinalStats prints the end-of-run report: the headline figures, the
// turnaround and queue-depth distributions, and the per-core breakdown.
func renderFinalStats(stats sim.FinalStats, elapsed time.Duration) {
	printSectionHeader("SIMULATION COMPLETE",
		fmt.Sprintf("Simulated %d ticks in %s", stats.TotalTicks, elapsed.Round(time.Millisecond)))

	if stats.CompletedTasks == stats.TotalTasks {
		colorPrintf(Green, "Completed tasks      : %d/%d\n", stats.CompletedTasks, stats.TotalTasks)
	} else {
		colorPrintf(Yellow, "Completed tasks      : %d/%d (tick budget exhausted)\n",
			stats.CompletedTasks, stats.TotalTasks)
	}
	fmt.Printf("Total ticks          : %d\n", stats.TotalTicks)
	fmt.Printf("Total power consumed : %.1f units\n", stats.TotalPowerConsumed)
	fmt.Printf("Avg turnaround time  : %.2f ticks\n", stats.AvgTurnaround)
	fmt.Println()

	distTable := tablewriter.NewWriter(os.Stdout)
	distTable.Header("Metric", "Mean", "P50", "P95", "P99", "Min", "Max")
	_ = distTable.Append(distRow("Turnaround (ticks)", stats.Turnaround)...)
	_ = distTable.Append(distRow("Queue depth", stats.QueueDepth)...)
	if err := distTable.Render(); err != nil {
		colorPrintLn(Red, "Error rendering distribution table")
	}
	fmt.Println()

	coreTable := tablewriter.NewWriter(os.Stdout)
	coreTable.Header("Core", "Type", "Busy", "IO-Wait", "Idle", "Throttled", "Peak Temp", "Power", "Tasks")
	for _, cm := range stats.PerCore {
		_ = coreTable.Append(
			fmt.Sprintf("Core-%d", cm.ID),
			cm.Type.Short(),
			fmt.Sprintf("%d", cm.BusyTicks),
			fmt.Sprintf("%d", cm.IOWaitTicks),
			fmt.Sprintf("%d", cm.IdleTicks),
			fmt.Sprintf("%d", cm.ThrottledTicks),
			fmt.Sprintf("%.1f°C", cm.PeakTemp),
			fmt.Sprintf("%.1f", cm.PowerConsumed),
			fmt.Sprintf("%d", cm.TasksCompleted),
		)
	}
	if err := coreTable.Render(); err != nil {
		colorPrintLn(Red, "Error rendering per-core table")
	}
}

// renderComparison prints one ranked row per policy run.
// Results must already be sorted best-first.
func renderComparison(results []policyResult) {
	printSectionHeader("POLICY COMPARISON",
		"Identical workload replayed under each assignment policy",
		"Ranked by average turnaround (lower is better)")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Rank", "Policy", "Ticks", "Completed", "Power", "Avg Turnaround", "P95 Turnaround")

	for i, r := range results {
		_ = table.Append(
			fmt.Sprintf("%d", i+1),
			r.Policy,
			fmt.Sprintf("%d", r.Stats.TotalTicks),
			fmt.Sprintf("%d/%d", r.Stats.CompletedTasks, r.Stats.TotalTasks),
			fmt.Sprintf("%.1f", r.Stats.TotalPowerConsumed),
			fmt.Sprintf("%.2f", r.Stats.AvgTurnaround),
			fmt.Sprintf("%.2f", r.Stats.Turnaround.P95),
		)
	}

	if err := table.Render(); err != nil {
		colorPrintLn(Red, "Error rendering comparison table")
	}

	if len(results) > 0 {
		best := results[0]
		colorPrintf(Green, "Best average turnaround: %s (%.2f ticks)\n", best.Policy, best.Stats.AvgTurnaround)
	}
}

// renderTraceSummary prints aggregate statistics of the assignment trace.
func renderTraceSummary(sum *trace.TraceSummary) {
	printSectionHeader("ASSIGNMENT TRACE SUMMARY")

	fmt.Printf("Total assignments : %d\n", sum.TotalAssignments)
	fmt.Printf("Mean queue depth  : %.2f (max %d)\n", sum.MeanQueueDepth, sum.MaxQueueDepth)
	fmt.Println()

	reasons := make([]string, 0, len(sum.ReasonCounts))
	for r := range sum.ReasonCounts {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)

	reasonTable := tablewriter.NewWriter(os.Stdout)
	reasonTable.Header("Reason", "Count")
	for _, r := range reasons {
		_ = reasonTable.Append(r, fmt.Sprintf("%d", sum.ReasonCounts[r]))
	}
	if err := reasonTable.Render(); err != nil {
		colorPrintLn(Red, "Error rendering reason table")
	}
	fmt.Println()

	cores := make([]int, 0, len(sum.CoreDistribution))
	for id := range sum.CoreDistribution {
		cores = append(cores, id)
	}
	sort.Ints(cores)

	coreTable := tablewriter.NewWriter(os.Stdout)
	coreTable.Header("Core", "Assignments")
	for _, id := range cores {
		_ = coreTable.Append(fmt.Sprintf("Core-%d", id), fmt.Sprintf("%d", sum.CoreDistribution[id]))
	}
	if err := coreTable.Render(); err != nil {
		colorPrintLn(Red, "Error rendering core distribution table")
	}
}
