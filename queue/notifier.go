package queue

import "sync"

// Notifier lets one waiter sleep until new work arrives without missing a
// wake that races with its decision to sleep. It is a monotonically
// increasing counter plus a condition variable: the waiter snapshots the
// counter, and Wait blocks only if the counter still holds that snapshot.
type Notifier struct {
	mu   sync.Mutex
	cond *sync.Cond
	seq  uint64 // guarded by mu
}

// NewNotifier creates a notifier with the counter at zero.
func NewNotifier() *Notifier {
	n := &Notifier{}
	n.cond = sync.NewCond(&n.mu)
	return n
}

// Wake increments the counter and wakes the waiter if one is sleeping.
// When nobody is sleeping the signal is a harmless no-op; the increment
// alone guarantees the next Wait returns immediately.
func (n *Notifier) Wake() {
	n.mu.Lock()
	n.seq++
	n.mu.Unlock()
	n.cond.Signal()
}

// Observe returns the current counter value, to be passed to a later Wait.
func (n *Notifier) Observe() uint64 {
	n.mu.Lock()
	v := n.seq
	n.mu.Unlock()
	return v
}

// Wait blocks until the counter moves past observed, then returns the
// fresh value as the next baseline. If the counter already moved, Wait
// returns without blocking. A return does not guarantee work is queued;
// the caller re-checks the buffer regardless.
func (n *Notifier) Wait(observed uint64) uint64 {
	n.mu.Lock()
	if n.seq == observed {
		n.cond.Wait()
	}
	v := n.seq
	n.mu.Unlock()
	return v
}
