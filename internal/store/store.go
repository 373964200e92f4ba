package store

import "time"

// RunRecord is the storage representation of one completed workload run.
type RunRecord struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// PrimeCount is the number of primes the run found.
	PrimeCount int `json:"prime_count"`

	// LastPrimes holds up to the five largest primes found, ascending.
	LastPrimes []int `json:"last_primes"`

	// MatrixSum is the sum of all matrix product entries.
	MatrixSum int64 `json:"matrix_sum"`

	// ElapsedMs is the wall-clock duration of the run in milliseconds.
	ElapsedMs int64 `json:"elapsed_ms"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`
}

// Stats summarizes run durations across every run recorded so far,
// including runs that have aged out of the recent list.
type Stats struct {
	// TotalRuns is the number of runs recorded since startup.
	TotalRuns int64 `json:"total_runs"`

	// P50Ms and P99Ms are duration percentiles in milliseconds.
	P50Ms int64 `json:"p50_ms"`
	P99Ms int64 `json:"p99_ms"`

	// MaxMs is the slowest recorded run in milliseconds.
	MaxMs int64 `json:"max_ms"`

	// MeanMs is the mean run duration in milliseconds.
	MeanMs float64 `json:"mean_ms"`
}

// Store defines the operations for recording and querying run history.
type Store interface {
	// Record stores a completed run.
	Record(rec RunRecord)

	// Recent returns the most recent runs, newest first.
	Recent() []RunRecord

	// Stats returns aggregate duration statistics over all recorded runs.
	Stats() Stats
}
