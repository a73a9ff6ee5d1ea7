package commands

import (
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.Bold)
	nameColor   = color.New(color.FgGreen)
	dimColor    = color.New(color.FgHiBlack)
)

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// firstLine returns s up to its first line break.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
