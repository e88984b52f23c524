package writer

import "sync/atomic"

// Stats tracks writer statistics
type Stats struct {
	// EntriesTotal counts successfully recorded entries
	EntriesTotal uint64
	// BytesTotal counts encoded bytes appended to the file
	BytesTotal uint64
}

// incrementRecorded atomically accounts one recorded entry of n bytes
func (s *Stats) incrementRecorded(n int) {
	atomic.AddUint64(&s.EntriesTotal, 1)
	atomic.AddUint64(&s.BytesTotal, uint64(n))
}

// Snapshot is a point-in-time copy of the writer's counters.
type Snapshot struct {
	Entries uint64
	Bytes   uint64
}

// GetSnapshot returns a consistent-enough copy of the counters.
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Entries: atomic.LoadUint64(&s.EntriesTotal),
		Bytes:   atomic.LoadUint64(&s.BytesTotal),
	}
}
