package core

// Kind selects which sinks a message is delivered to.
type Kind uint8

const (
	// Print renders to the terminal only, styled when the message says so
	Print Kind = iota
	// Log appends to the log file only
	Log
	// LogAndPrint renders to the terminal and appends to the log file
	LogAndPrint
	// StyledPrint renders to the terminal, always through the styled path
	StyledPrint
	// LogAndStyledPrint renders styled and appends to the log file
	LogAndStyledPrint
	// DebugPrint renders to the terminal only
	DebugPrint
	// DebugLog appends to the log file only
	DebugLog
	// DebugLogAndPrint renders to the terminal and appends to the log file
	DebugLogAndPrint
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Print:
		return "Print"
	case Log:
		return "Log"
	case LogAndPrint:
		return "LogAndPrint"
	case StyledPrint:
		return "StyledPrint"
	case LogAndStyledPrint:
		return "LogAndStyledPrint"
	case DebugPrint:
		return "DebugPrint"
	case DebugLog:
		return "DebugLog"
	case DebugLogAndPrint:
		return "DebugLogAndPrint"
	default:
		return "Unknown"
	}
}

// WantsTerminal reports whether messages of this kind render to the terminal.
func (k Kind) WantsTerminal() bool {
	switch k {
	case Print, LogAndPrint, StyledPrint, LogAndStyledPrint, DebugPrint, DebugLogAndPrint:
		return true
	default:
		return false
	}
}

// WantsLog reports whether messages of this kind append to the log file.
func (k Kind) WantsLog() bool {
	switch k {
	case Log, LogAndPrint, LogAndStyledPrint, DebugLog, DebugLogAndPrint:
		return true
	default:
		return false
	}
}

// AlwaysStyled reports whether this kind renders through the styled path
// regardless of the message's Styled flag.
func (k Kind) AlwaysStyled() bool {
	return k == StyledPrint || k == LogAndStyledPrint
}

// Priority tags a message with a severity hint. It is carried on every
// message but not consulted during dispatch.
type Priority uint8

const (
	// PriorityNone for untagged messages (default)
	PriorityNone Priority = iota
	// PriorityInfo for informational messages
	PriorityInfo
	// PriorityWarning for warning messages
	PriorityWarning
	// PriorityError for error messages
	PriorityError
)

// String returns the string representation of the priority
func (p Priority) String() string {
	switch p {
	case PriorityNone:
		return "None"
	case PriorityInfo:
		return "Info"
	case PriorityWarning:
		return "Warning"
	case PriorityError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Message is one unit of output. It is built completely by a producer
// before being handed to the queue; the queue's publish protocol makes it
// visible to the drain goroutine only as a whole.
type Message struct {
	Text     string
	Kind     Kind
	Priority Priority

	// Styled selects the styled terminal path for kinds that have a
	// plain alternative. Kinds reporting AlwaysStyled ignore it.
	Styled bool
	// Primary is the framing style for styled rendering.
	Primary Style
	// Secondary, when non-nil, is applied to the text inside the Primary
	// framing. Nil means the whole text renders in Primary.
	Secondary Style
}
