// Package sim provides the disk-head scheduling core for the disk-sim simulator.
//
// # Reading Guide
//
// Start with these files to understand the scheduling kernel:
//   - request.go: RequestSet, the immutable batch of cylinder requests
//   - head.go: HeadState and the LEFT/RIGHT Direction enum
//   - start_index.go: the shared start-index search used by SCAN and C-SCAN
//   - scheduler.go: the FCFS, SCAN and C-SCAN schedulers and the algorithm registry
//
// # Architecture
//
// Every scheduler is a pure function of a RequestSet and an initial HeadState.
// Each run works on a private copy of the requests and its own head state, so
// algorithms may run in any order. Sub-packages hold the collaborators:
//   - sim/workload/: request sources (binary batch files, YAML lists, generators)
//   - sim/trace/: per-seek trace recording
package sim
