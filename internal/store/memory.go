package store

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// MemoryStore is a bounded in-memory implementation of [Store].
//
// The most recent runs are kept in insertion order up to a fixed capacity;
// older runs are dropped. Durations of every run ever recorded are folded
// into an HDR histogram (1ms to 10min, 3 significant figures), so the
// aggregate stats outlive the recent list.
//
// All methods are safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	runs     []RunRecord
	capacity int
	hist     *hdrhistogram.Histogram
}

// NewMemoryStore creates a [MemoryStore] retaining at most capacity recent
// runs. Capacities below 1 are treated as 1.
//
// The store is immediately ready for use. No cleanup is required when done.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryStore{
		runs:     make([]RunRecord, 0, capacity),
		capacity: capacity,
		hist:     hdrhistogram.New(1, int64(10*time.Minute/time.Millisecond), 3),
	}
}

// Record stores a completed run, evicting the oldest run if the store is at
// capacity, and folds its duration into the histogram.
func (m *MemoryStore) Record(rec RunRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs = append(m.runs, rec)
	if len(m.runs) > m.capacity {
		m.runs = m.runs[len(m.runs)-m.capacity:]
	}

	v := rec.ElapsedMs
	if v < 1 {
		// sub-millisecond runs still count as one bucket
		v = 1
	}
	// RecordValue only fails for values outside the histogram range,
	// which the clamp above and the 10min ceiling make unreachable for
	// any run the handler will realistically produce; saturate at max.
	if err := m.hist.RecordValue(v); err != nil {
		_ = m.hist.RecordValue(m.hist.HighestTrackableValue())
	}
}

// Recent returns a snapshot of the retained runs, newest first.
//
// The returned slice is a copy; modifications do not affect the store.
func (m *MemoryStore) Recent() []RunRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]RunRecord, len(m.runs))
	for i, rec := range m.runs {
		out[len(m.runs)-1-i] = rec
	}
	return out
}

// Stats returns aggregate duration statistics over all recorded runs.
// An empty store yields the zero Stats value.
func (m *MemoryStore) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.hist.TotalCount() == 0 {
		return Stats{}
	}
	return Stats{
		TotalRuns: m.hist.TotalCount(),
		P50Ms:     m.hist.ValueAtQuantile(50),
		P99Ms:     m.hist.ValueAtQuantile(99),
		MaxMs:     m.hist.Max(),
		MeanMs:    m.hist.Mean(),
	}
}
