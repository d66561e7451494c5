// Console rendering of snapshots and the execution trace. Values come from
// the engine; this file only formats them.

package cmd

import (
	"fmt"

	"github.com/eadvfs-sim/eadvfs-sim/sim"
	"github.com/eadvfs-sim/eadvfs-sim/sim/trace"
)

func printSnapshot(snap *sim.Snapshot) {
	fmt.Printf("\n--- Analysis at t=%.0f ms ---\n", snap.Time)

	fmt.Println("Top CPU consumers:")
	for _, tc := range snap.TopTasks {
		fmt.Printf(" P%d cpu_ms=%.0f\n", tc.PID, tc.CPUMs)
	}

	fmt.Printf("Avg CPU util (recent window) = %.2f%%\n", snap.AvgUtil)
	fmt.Printf("Memory slope = %.4f kb/ms. Forecast = %.0f kb (raw %.0f)\n",
		snap.Slope, snap.ForecastKB, snap.ForecastRaw)

	for _, h := range snap.Hotspots {
		fmt.Printf("Hotspot detected: P%d (cpu_ms=%.0f, rem=%.0fms)\n", h.PID, h.CPUMs, h.RemainingMs)
	}
	for _, c := range snap.Classes {
		fmt.Printf("P%d classified: %s\n", c.PID, c.Class)
	}
}

func printTrace(et *trace.ExecutionTrace) {
	fmt.Println("\nExecution trace (pid:duration_ms@level):")
	for _, r := range et.Records {
		fmt.Printf("[P%d:%.0fms@%s] ", r.TaskID, r.Duration, r.SpeedLabel)
	}
	fmt.Println()

	summary := trace.Summarize(et)
	if summary.BusiestTaskID >= 0 {
		fmt.Printf("Busiest task: P%d (%.0fms over %d slices)\n",
			summary.BusiestTaskID, summary.RunTimeByTask[summary.BusiestTaskID],
			summary.SliceCounts[summary.BusiestTaskID])
	}
}
