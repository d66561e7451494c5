package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eadvfs-sim/eadvfs-sim/sim"
	"github.com/eadvfs-sim/eadvfs-sim/sim/workload"
)

var (
	logLevel       string  // Log verbosity level
	horizon        float64 // Safety cutoff for simulated time (ms)
	quantum        float64 // Max uninterrupted execution slice (ms)
	lookahead      float64 // Speed controller lookahead window (ms)
	reportInterval float64 // Snapshot boundary spacing (ms)
	topN           int     // Ranked CPU consumers per snapshot
	schedulerName  string  // Scheduling policy name
	speedConfig    string  // Optional YAML speed table path
	workloadSpec   string  // Optional YAML synthetic workload spec path
	csvPath        string  // Optional CSV export path
	showTrace      bool    // Print the merged execution trace
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "eadvfs-sim",
	Short: "Discrete-event simulator for energy-aware DVFS scheduling",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run [trace-file]",
	Short: "Run the scheduling simulation",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !sim.IsValidScheduler(schedulerName) {
			logrus.Fatalf("Unknown scheduler %q (valid: srtf, fcfs)", schedulerName)
		}

		table := sim.DefaultSpeedTable()
		if speedConfig != "" {
			table, err = sim.LoadSpeedTable(speedConfig)
			if err != nil {
				logrus.Fatalf("Invalid speed config: %v", err)
			}
		}

		tasks := loadTasks(args)

		cfg := sim.DefaultEngineConfig()
		cfg.Horizon = horizon
		cfg.Quantum = quantum
		cfg.Lookahead = lookahead
		cfg.ReportInterval = reportInterval
		cfg.TopN = topN

		logrus.Infof("Starting simulation: %d tasks, %d speed levels, horizon=%.0fms, scheduler=%s",
			len(tasks), len(table.Levels), cfg.Horizon, schedulerName)

		s := sim.NewSimulator(cfg, table, sim.NewScheduler(schedulerName), tasks)
		s.Run()

		for i := range s.Reporter.Snapshots {
			printSnapshot(&s.Reporter.Snapshots[i])
		}
		if showTrace {
			printTrace(s.Trace)
		}
		s.Summary().Print()

		if csvPath != "" {
			if err := sim.WriteCSV(csvPath, s.Reporter.Snapshots); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Snapshot table written to %s", csvPath)
		}
	},
}

// loadTasks resolves the workload from the positional trace file, the
// synthetic spec flag, or the built-in sample, in that precedence.
func loadTasks(args []string) []*sim.Task {
	if len(args) > 0 && workloadSpec != "" {
		logrus.Fatalf("A trace file and --workload-spec are mutually exclusive")
	}
	if len(args) > 0 {
		tasks, err := workload.LoadTraceFile(args[0])
		if err != nil {
			logrus.Fatalf("Cannot load trace file: %v", err)
		}
		return tasks
	}
	if workloadSpec != "" {
		spec, err := workload.LoadSpec(workloadSpec)
		if err != nil {
			logrus.Fatalf("Cannot load workload spec: %v", err)
		}
		return spec.Generate()
	}
	logrus.Info("No trace file given, using built-in sample jobset")
	return workload.Sample()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Float64Var(&horizon, "horizon", 100000, "Safety cutoff for simulated time (ms)")
	runCmd.Flags().Float64Var(&quantum, "quantum", 50, "Max uninterrupted execution slice (ms)")
	runCmd.Flags().Float64Var(&lookahead, "lookahead", 200, "Speed controller lookahead window (ms)")
	runCmd.Flags().Float64Var(&reportInterval, "report-interval", 100, "Snapshot boundary spacing (ms)")
	runCmd.Flags().IntVar(&topN, "top-n", 3, "Ranked CPU consumers per snapshot")
	runCmd.Flags().StringVar(&schedulerName, "scheduler", "srtf", "Scheduling policy (srtf, fcfs)")
	runCmd.Flags().StringVar(&speedConfig, "speed-config", "", "YAML speed table file (default: built-in 3-level table)")
	runCmd.Flags().StringVar(&workloadSpec, "workload-spec", "", "YAML synthetic workload spec file")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write per-snapshot CSV to this path")
	runCmd.Flags().BoolVar(&showTrace, "show-trace", false, "Print the merged execution trace")

	rootCmd.AddCommand(runCmd)
}
