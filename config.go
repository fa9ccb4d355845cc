package console

import (
	"io"

	"github.com/blacktek/console/queue"
	"github.com/blacktek/console/sink"
)

// DefaultLogFile is the log file path used when Initialize is called with
// an empty name and Config.LogFile is unset.
const DefaultLogFile = "console.log"

// Config holds configuration for a Console
type Config struct {
	// Capacity is the message buffer size, rounded up to a power of two
	// (default: 4096)
	Capacity int

	// Writer receives terminal output (default: os.Stdout)
	Writer io.Writer
	// ForceStyles emits style sequences even when Writer is not a terminal
	ForceStyles bool
	// DisableStyles renders every message plain
	DisableStyles bool

	// Renderer replaces the default terminal renderer. When set, Writer
	// and the style flags are ignored.
	Renderer sink.Renderer
	// Appender replaces the log file. When set, Initialize does not open
	// a file and Shutdown closes this appender instead.
	Appender sink.Appender

	// LogFile is the default log path for Initialize("") (default:
	// DefaultLogFile)
	LogFile string
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = queue.DefaultCapacity
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	if cfg.Renderer == nil {
		cfg.Renderer = sink.NewTerminal(sink.TerminalConfig{
			Writer:        cfg.Writer,
			ForceStyles:   cfg.ForceStyles,
			DisableStyles: cfg.DisableStyles,
		})
	}
}
