package cb

import (
	"github.com/atotto/clipboard"
)

// ClipboardProvider is one way of moving text to and from the operator.
type ClipboardProvider interface {
	Read() (string, error)
	Write(text string) error
}

// Clipboard is the OS clipboard.
type Clipboard struct{}

func NewClipboard() ClipboardProvider {
	return &Clipboard{}
}

func (c *Clipboard) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

func (c *Clipboard) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

func (c *Clipboard) String() string {
	return "system clipboard"
}
