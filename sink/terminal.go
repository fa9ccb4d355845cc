package sink

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"github.com/blacktek/console/core"
)

// TerminalConfig holds configuration for the terminal renderer
type TerminalConfig struct {
	// Writer to render to (default: os.Stdout)
	Writer io.Writer
	// ForceStyles emits style sequences even when Writer is not a
	// terminal. Used by tests and by callers piping into something that
	// understands ANSI.
	ForceStyles bool
	// DisableStyles renders every message plain regardless of Writer.
	DisableStyles bool
}

// Terminal renders messages to an output stream, one line per message.
// Styled messages are wrapped in go-pretty color sequences when style
// output is enabled; otherwise they degrade to plain text.
//
// Terminal does no locking: at runtime it is written to only by the
// single drain goroutine.
type Terminal struct {
	w      io.Writer
	styled bool
}

// NewTerminal creates a terminal renderer. Style output is enabled when
// the writer is a terminal, or unconditionally with ForceStyles.
func NewTerminal(cfg TerminalConfig) *Terminal {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	t := &Terminal{w: cfg.Writer}

	switch {
	case cfg.DisableStyles:
	case cfg.ForceStyles:
		t.styled = true
		// go-pretty gates all color emission on a package-level flag
		// that is off for non-terminal processes.
		text.EnableColors()
	default:
		t.styled = isTerminal(cfg.Writer)
	}
	return t
}

// StylesEnabled reports whether styled messages will render with style
// sequences rather than degrading to plain text.
func (t *Terminal) StylesEnabled() bool {
	return t.styled
}

// Render writes msg as one newline-terminated line. A styled message with
// only a primary style renders wholly in that style; with a secondary
// style present, the secondary is applied to the text inside the primary
// framing.
func (t *Terminal) Render(msg core.Message) error {
	line := msg.Text
	if msg.Styled && t.styled {
		if msg.Secondary != nil {
			line = msg.Primary.Sprint(msg.Secondary.Sprint(msg.Text))
		} else {
			line = msg.Primary.Sprint(msg.Text)
		}
	}

	_, err := io.WriteString(t.w, line)
	if err != nil {
		return err
	}
	_, err = io.WriteString(t.w, "\n")
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
