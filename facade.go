package console

import (
	"fmt"
	"runtime"

	"github.com/blacktek/console/core"
)

// push enqueues msg and wakes the drain goroutine. A full buffer is not an
// error: the producer yields and retries until the consumer frees a slot,
// so no message is ever dropped here.
func (c *Console) push(msg core.Message) {
	if !c.buf.Push(msg) {
		c.stats.IncrementStalled()
		for !c.buf.Push(msg) {
			runtime.Gosched()
		}
	}
	c.notifier.Wake()
}

// Print enqueues plain terminal output.
func (c *Console) Print(text string) {
	c.push(core.Message{Text: text, Kind: core.Print})
}

// Printf enqueues formatted plain terminal output.
func (c *Console) Printf(format string, args ...any) {
	c.push(core.Message{Text: fmt.Sprintf(format, args...), Kind: core.Print})
}

// Log enqueues a line for the log file only.
func (c *Console) Log(text string) {
	c.push(core.Message{Text: text, Kind: core.Log})
}

// Logf enqueues a formatted line for the log file only.
func (c *Console) Logf(format string, args ...any) {
	c.push(core.Message{Text: fmt.Sprintf(format, args...), Kind: core.Log})
}

// LogAndPrint enqueues text for both the terminal and the log file.
func (c *Console) LogAndPrint(text string) {
	c.push(core.Message{Text: text, Kind: core.LogAndPrint})
}

// LogAndPrintf enqueues formatted text for both the terminal and the log
// file.
func (c *Console) LogAndPrintf(format string, args ...any) {
	c.push(core.Message{Text: fmt.Sprintf(format, args...), Kind: core.LogAndPrint})
}

// StyledPrint enqueues terminal output rendered wholly in primary.
func (c *Console) StyledPrint(text string, primary core.Style) {
	c.push(core.Message{
		Text:    text,
		Kind:    core.StyledPrint,
		Styled:  true,
		Primary: primary,
	})
}

// StyledPrintf enqueues formatted terminal output rendered wholly in
// primary.
func (c *Console) StyledPrintf(primary core.Style, format string, args ...any) {
	c.push(core.Message{
		Text:    fmt.Sprintf(format, args...),
		Kind:    core.StyledPrint,
		Styled:  true,
		Primary: primary,
	})
}

// HighlightPrint enqueues terminal output with secondary applied to the
// text inside the primary framing.
func (c *Console) HighlightPrint(text string, primary, secondary core.Style) {
	c.push(core.Message{
		Text:      text,
		Kind:      core.StyledPrint,
		Styled:    true,
		Primary:   primary,
		Secondary: secondary,
	})
}

// HighlightPrintf is the formatted variant of HighlightPrint.
func (c *Console) HighlightPrintf(primary, secondary core.Style, format string, args ...any) {
	c.push(core.Message{
		Text:      fmt.Sprintf(format, args...),
		Kind:      core.StyledPrint,
		Styled:    true,
		Primary:   primary,
		Secondary: secondary,
	})
}

// LogAndStyledPrint enqueues styled terminal output plus a log line.
func (c *Console) LogAndStyledPrint(text string, primary core.Style) {
	c.push(core.Message{
		Text:    text,
		Kind:    core.LogAndStyledPrint,
		Styled:  true,
		Primary: primary,
	})
}

// DebugPrint enqueues terminal output in the fixed debug style.
//
// TODO: route the Debug* calls through the priority field once dispatch
// consults it.
func (c *Console) DebugPrint(text string) {
	c.StyledPrint(text, core.DebugStyle)
}

// DebugLog enqueues a line for the log file only.
func (c *Console) DebugLog(text string) {
	c.push(core.Message{Text: text, Kind: core.DebugLog})
}

// DebugLogAndPrint enqueues terminal output in the fixed debug style plus
// a log line.
func (c *Console) DebugLogAndPrint(text string) {
	c.LogAndStyledPrint(text, core.DebugStyle)
}
