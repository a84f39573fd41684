package interactive

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/qiangli/polyglot/internal/cb"
	"github.com/qiangli/polyglot/internal/llm"
	"github.com/qiangli/polyglot/internal/log"
)

// Config wires the provider to the operator's terminal and clipboards.
// A nil clipboard channel is skipped.
type Config struct {
	Logger log.Logger

	In  io.Reader
	Out io.Writer

	// OS clipboard
	Clipboard cb.ClipboardProvider
	// external clipboard utility
	Utility cb.ClipboardProvider
}

// Provider lets a human stand in for a remote model. The prompt is handed
// over through the first working transfer channel and the answer collected
// through the first receive channel that yields text.
//
// Only one interactive query may be in flight at a time; the terminal and
// clipboard are shared.
type Provider struct {
	log log.Logger

	in  *bufio.Reader
	out io.Writer

	clipboard cb.ClipboardProvider
	utility   cb.ClipboardProvider
}

func New(cfg Config) *Provider {
	p := &Provider{
		log:       cfg.Logger,
		out:       cfg.Out,
		clipboard: cfg.Clipboard,
		utility:   cfg.Utility,
	}
	if p.log == nil {
		p.log = log.Discard()
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	if br, ok := in.(*bufio.Reader); ok {
		p.in = br
	} else {
		p.in = bufio.NewReader(in)
	}
	return p
}

// PrepareRequest transfers the prompt to the operator and returns the
// interactive sentinel request. It never fails.
func (r *Provider) PrepareRequest(_ context.Context, prompt, _ string) (*llm.Request, error) {
	r.transfer(prompt)
	return llm.NewInteractiveRequest(), nil
}

// ParseResponse waits for the operator and collects the answer. The payload is ignored.
func (r *Provider) ParseResponse(_ context.Context, _ []byte) (string, error) {
	r.log.Prompt("\nPress Enter when you're ready to paste your response.\n")
	r.readLine()

	text := r.receive()
	r.log.Info("Received response with %s\n", llm.TextStats(text))
	return text, nil
}

func (r *Provider) readLine() {
	if _, err := r.in.ReadString('\n'); err != nil && err != io.EOF {
		r.log.Debug("read terminal: %v\n", err)
	}
}
