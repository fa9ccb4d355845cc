package sink

import "github.com/blacktek/console/core"

// Renderer writes one message to a terminal-like stream as a single
// newline-terminated line, styled or plain according to the message.
type Renderer interface {
	Render(msg core.Message) error
}

// Appender appends one line of text to a log sink. Implementations own
// their buffering; Close flushes whatever is pending.
type Appender interface {
	Append(line string) error
	Close() error
}

// Discard is an Appender that drops every line. It exists for examples
// and benchmarks that want the print path without a log file.
var Discard Appender = discard{}

type discard struct{}

func (discard) Append(string) error { return nil }
func (discard) Close() error        { return nil }
