package display

import (
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the wrap column for terminal-style streams. ASCII
// artwork is rendered at most 60 columns wide, so wrapping at 80 never
// splits it.
const DefaultWidth = 80

// Wrap word-wraps game text to DefaultWidth, preserving ANSI escape
// sequences and existing line breaks.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}
