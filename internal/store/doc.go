// Package store provides in-memory run history for completed workload runs.
//
// This package is internal to CrunchBoard and keeps a bounded record of the
// most recent workload executions alongside an HDR histogram of run
// durations. It backs the read-only /api/runs endpoint.
//
// The main components are:
//
//   - [Store]: Interface defining record and query operations
//   - [MemoryStore]: Bounded in-memory implementation of Store
//   - [RunRecord]: Storage representation of one completed run
//   - [Stats]: Aggregate duration statistics across all recorded runs
//
// The store is append-only from the handler's perspective and never feeds
// back into the page rendered at "/"; requests stay fully independent.
//
// Users of the crunchboard library should not need to interact with this
// package directly. Storage is managed internally by CrunchBoard.
package store
