// Package sim provides the core discrete-event simulation engine for EADVFS.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - task.go: Task lifecycle (arrival → running → finished) and the ready predicate
//   - simulator.go: The event-resolution loop, progress/energy model, and idle jumps
//   - reporter.go: Interval snapshot assembly on top of the telemetry series
//
// # Architecture
//
// The sim package holds the engine and its policies; supporting concerns live
// in sub-packages:
//   - sim/trace/: Pure-data execution trace records (merged run slices)
//   - sim/workload/: Trace-file loading, the built-in sample jobset, and
//     seeded synthetic workload generation
//
// # Key Interfaces
//
// The extension points are small interfaces and stateless policies:
//   - TaskScheduler: select the next task to dispatch from the ready set
//   - SpeedController: select a speed level for the upcoming slice
//   - Analyzer functions: moving average, offset OLS regression, clamped
//     forecasting, hotspot and classification rules
package sim
