// Package sim provides the tick-driven simulation engine for the Janus
// heterogeneous-core scheduler.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - task.go: Task lifecycle (pending → ready → bound → completed) and the IO-wait state machine
//   - core.go: Core thermals, throttling, power draw, and the per-tick work step
//   - soc.go: The four-phase tick loop tying admission, assignment, and execution together
//
// # Architecture
//
// The sim package holds the chip model and the assignment policies;
// supporting concerns live in sub-packages:
//   - sim/workload/: Scenario specs (YAML), task generation, and named presets
//   - sim/trace/: Decision trace recording and summaries
//
// # Key Interfaces
//
// The extension point is a single-method interface:
//   - AssignmentPolicy: pick which queued task an idle core should take.
//     Implementations must be deterministic; NewPolicy constructs them by name.
//
// Determinism is the load-bearing property throughout: a SimulationKey seeds
// a PartitionedRNG (rng.go), workload generation consumes named subsystem
// streams from it, and every task carries a private RNG for its IO events.
// Identical configuration and seed reproduce a run bit for bit.
package sim
