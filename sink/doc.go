// Package sink holds the two external collaborators the drain goroutine
// dispatches to: a terminal renderer and a log-file appender.
//
// Both are narrow contracts. Renderer turns one message into a
// newline-terminated write on an output stream, applying the message's
// styles when styled output is enabled. Appender appends one line of text
// to a log sink and owns its buffering and flushing.
//
// The default implementations are Terminal, which writes through go-pretty
// color sequences and auto-detects whether its writer is a terminal, and
// File, which appends to a buffered append-mode file. Discard is a no-op
// Appender for examples and benchmarks.
package sink
