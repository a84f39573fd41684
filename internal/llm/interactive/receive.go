package interactive

import (
	"errors"
	"strings"
	"unicode"

	"github.com/qiangli/polyglot/internal/cb"
)

var errEmptyClipboard = errors.New("clipboard is empty")

func (r *Provider) receive() string {
	var attempts []attempt[string]
	for _, c := range []cb.ClipboardProvider{r.clipboard, r.utility} {
		if c == nil {
			continue
		}
		attempts = append(attempts, attempt[string]{
			name: channelName(c),
			run: func() (string, error) {
				s, err := c.Read()
				if err != nil {
					return "", err
				}
				if strings.TrimSpace(s) == "" {
					return "", errEmptyClipboard
				}
				return s, nil
			},
		})
	}

	return fallback(r.log, "Receive", attempts, r.readTerminal)
}

// readTerminal collects lines until two consecutive empty lines or end of input.
// A single empty line between paragraphs is kept.
func (r *Provider) readTerminal() string {
	r.log.Prompt("Please enter your response. Type two empty lines to finish:\n")

	var sb strings.Builder
	blank := 0
	for {
		line, err := r.in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err != nil {
				break
			}
			blank++
			if blank >= 2 {
				break
			}
			continue
		}
		if blank == 1 && sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		blank = 0
		sb.WriteString(line)
		sb.WriteByte('\n')
		if err != nil {
			break
		}
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace)
}
