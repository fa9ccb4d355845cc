// Package queue provides the concurrency core of the console subsystem: a
// bounded lock-free multi-producer/single-consumer ring buffer of messages,
// and the notifier the drain goroutine sleeps on when the buffer is empty.
//
// The Buffer follows the bounded MPMC queue design with per-slot sequence
// counters, restricted here to a single consumer. Producers coordinate
// through a compare-and-swap on the head position only; a slot's sequence
// counter then publishes the written message to the consumer. Push never
// blocks: a full buffer is reported to the caller, which decides how to
// apply backpressure.
//
// The Notifier pairs a monotonically increasing counter with a condition
// variable. A waiter snapshots the counter, drains, and then blocks only if
// the counter is still at its snapshot, so a wake that races with the
// decision to sleep is never lost.
package queue
