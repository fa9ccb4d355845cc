// Package console is an asynchronous, non-blocking sink for terminal and
// log-file output. Producers on latency-sensitive paths enqueue formatted
// or styled messages and return immediately; a single background goroutine
// drains the queue and performs the actual writes.
//
// The queue is a bounded lock-free multi-producer/single-consumer ring
// buffer (package queue). When it fills, producers yield and retry until
// the drain goroutine catches up; nothing is dropped and nothing blocks
// inside the queue itself. Delivery is fire-and-forget: producers never
// learn whether a write succeeded, only the backpressure of a full buffer.
//
// Usage:
//
//	c := console.New(console.Config{})
//	if err := c.Initialize("server.log"); err != nil {
//		// the console still runs; log dispatch is skipped
//	}
//	defer c.Shutdown()
//
//	c.Print("ready")
//	c.StyledPrint("listening on :7171", core.Style{text.FgGreen})
//	c.LogAndPrint("map loaded")
//
// Shutdown drains every queued message before returning, so output is
// complete once it has been called. Initialize and Shutdown are both
// idempotent.
package console
