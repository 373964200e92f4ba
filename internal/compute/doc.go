// Package compute implements the CPU-bound demonstration workload.
//
// This package is internal to CrunchBoard and contains the two kernels
// the server runs on demand, plus the fork-join machinery that spreads
// them across goroutines:
//
//   - [PrimesUpTo]: Trial-division prime finding over a bounded range
//   - [Matrix1], [Matrix2], [Multiply], [Sum]: Deterministic matrix
//     construction and the standard O(S³) product
//   - [Workload]: One-shot timed execution of both kernels producing a [Result]
//
// All work is pure and side-effect free: candidates and matrix rows are
// partitioned into contiguous chunks, each chunk is evaluated by its own
// goroutine into a private slot, and the chunks are joined in order. No
// shared mutable state exists, so no locking is needed beyond the join.
//
// Users of the crunchboard library should not need to interact with this
// package directly. Workload parameters are configured through the main
// crunchboard package.
package compute
