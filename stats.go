package console

import "sync/atomic"

// Stats tracks dispatch statistics. Counters only observe; they never
// change how a message is delivered.
type Stats struct {
	// ProcessedTotal counts messages the drain goroutine dispatched
	ProcessedTotal uint64
	// StalledTotal counts pushes that found the buffer full at least once
	StalledTotal uint64
	// RenderErrorsTotal counts failed terminal writes
	RenderErrorsTotal uint64
	// AppendErrorsTotal counts failed log appends
	AppendErrorsTotal uint64
	// AppendSkippedTotal counts log dispatches with no open log stream
	AppendSkippedTotal uint64
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementStalled atomically increments the stalled counter
func (s *Stats) IncrementStalled() {
	atomic.AddUint64(&s.StalledTotal, 1)
}

// IncrementRenderErrors atomically increments the render error counter
func (s *Stats) IncrementRenderErrors() {
	atomic.AddUint64(&s.RenderErrorsTotal, 1)
}

// IncrementAppendErrors atomically increments the append error counter
func (s *Stats) IncrementAppendErrors() {
	atomic.AddUint64(&s.AppendErrorsTotal, 1)
}

// IncrementAppendSkipped atomically increments the append skipped counter
func (s *Stats) IncrementAppendSkipped() {
	atomic.AddUint64(&s.AppendSkippedTotal, 1)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Processed     uint64
	Stalled       uint64
	RenderErrors  uint64
	AppendErrors  uint64
	AppendSkipped uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed:     atomic.LoadUint64(&s.ProcessedTotal),
		Stalled:       atomic.LoadUint64(&s.StalledTotal),
		RenderErrors:  atomic.LoadUint64(&s.RenderErrorsTotal),
		AppendErrors:  atomic.LoadUint64(&s.AppendErrorsTotal),
		AppendSkipped: atomic.LoadUint64(&s.AppendSkippedTotal),
	}
}
