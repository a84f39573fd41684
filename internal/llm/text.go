package llm

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextStats summarizes text for log lines.
func TextStats(text string) string {
	lines := strings.Count(text, "\n") + 1
	words := len(strings.Fields(text))
	chars := utf8.RuneCountInString(text)
	return fmt.Sprintf("lines: %d words: %d chars: %d", lines, words, chars)
}
