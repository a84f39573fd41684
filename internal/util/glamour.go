package util

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWrap = 100

// Render styles markdown for the terminal, wrapping at width columns
// (100 when width is not positive). The text is returned unchanged if
// rendering fails.
func Render(text string, width int) string {
	if width <= 0 {
		width = defaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return text
	}
	styled, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(styled, "\n") + "\n"
}
