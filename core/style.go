package core

import "github.com/jedib0t/go-pretty/v6/text"

// Style describes terminal text decoration: a combination of color and
// attribute codes. It is go-pretty's Colors type, so callers compose styles
// from text.Fg*, text.Bg* and attribute constants directly.
type Style = text.Colors

// DebugStyle is the fixed style used by the Debug* convenience calls.
var DebugStyle = Style{text.FgCyan, text.Bold}
