package handler

import (
	"sync/atomic"
)

// Stats tracks output statistics
type Stats struct {
	// WrittenTotal counts lines written successfully
	WrittenTotal uint64
	// FailedTotal counts lines whose write returned an error
	FailedTotal uint64
	// BytesTotal counts bytes written, terminators and escape sequences included
	BytesTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically records one successful line of n bytes
func (s *Stats) IncrementWritten(n int) {
	atomic.AddUint64(&s.WrittenTotal, 1)
	atomic.AddUint64(&s.BytesTotal, uint64(n))
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetWritten returns the written count
func (s *Stats) GetWritten() uint64 {
	return atomic.LoadUint64(&s.WrittenTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// GetBytes returns the byte count
func (s *Stats) GetBytes() uint64 {
	return atomic.LoadUint64(&s.BytesTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WrittenTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
	atomic.StoreUint64(&s.BytesTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	WrittenTotal uint64
	FailedTotal  uint64
	BytesTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		WrittenTotal: s.GetWritten(),
		FailedTotal:  s.GetFailed(),
		BytesTotal:   s.GetBytes(),
	}
}
