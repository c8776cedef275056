package prof

import (
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start with the given name.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// AggregateUS folds entries into per-label microsecond totals and call
// counts.
func AggregateUS(entries []Entry) (map[string]int64, map[string]int) {
	tims := make(map[string]int64, len(entries))
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		tims[e.Label] += e.Dur.Microseconds()
		counts[e.Label]++
	}
	return tims, counts
}
