// Package core defines the shared types used across the console subsystem.
//
// It provides the Message type that represents a single unit of output,
// the Kind type that selects which sinks a message is delivered to, and
// the Priority type carried as inert metadata on every message.
//
// A Message is a plain value: producers build one completely, then hand it
// to the queue by value. Nothing in a Message is shared or mutated after
// construction, which is what lets the ring buffer publish it across
// goroutines with a single release store.
//
// Style is go-pretty's Colors type, so a style combines a foreground or
// background color with attributes like bold or underline. A message may
// carry a primary style plus an optional secondary style that highlights
// the text inside the primary framing.
package core
