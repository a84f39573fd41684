package interactive

import (
	"fmt"

	"github.com/qiangli/polyglot/internal/cb"
)

const promptFence = "''' ''' '''"

func (r *Provider) transfer(prompt string) {
	var attempts []attempt[struct{}]
	for _, c := range []cb.ClipboardProvider{r.clipboard, r.utility} {
		if c == nil {
			continue
		}
		attempts = append(attempts, attempt[struct{}]{
			name: channelName(c),
			run: func() (struct{}, error) {
				if err := c.Write(prompt); err != nil {
					return struct{}{}, err
				}
				fmt.Fprintln(r.out, "Prompt text is in your clipboard.")
				return struct{}{}, nil
			},
		})
	}

	fallback(r.log, "Transfer", attempts, func() struct{} {
		r.printPrompt(prompt)
		return struct{}{}
	})
}

func (r *Provider) printPrompt(prompt string) {
	fmt.Fprintf(r.out, "\n\n\nPrompt:\n\n%s\n\n%s\n\n%s\n\n\n", promptFence, prompt, promptFence)
}

func channelName(c cb.ClipboardProvider) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}
