package cb

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-shellwords"
)

var (
	ErrUnsupported = errors.New("clipboard not supported on this system")
	ErrNoCommand   = errors.New("no clipboard command configured")
)

// waitDelay bounds how long Wait keeps draining pipes after the utility exits.
// xclip forks a selection owner that inherits descriptors.
const waitDelay = 2 * time.Second

// DefaultCommands returns the clipboard utility command lines for the current OS.
func DefaultCommands() (copyCmd, pasteCmd string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", "pbpaste"
	case "windows":
		return "clip", "powershell -NoProfile -Command Get-Clipboard"
	default:
		return "xclip -selection clipboard", "xclip -selection clipboard -o"
	}
}

// Command is a clipboard backed by an external utility such as xclip.
// Each call spawns one process and waits for it.
type Command struct {
	Copy  []string
	Paste []string
}

// NewCommand parses shell style command lines for writing and reading.
func NewCommand(copyCmd, pasteCmd string) (*Command, error) {
	cp, err := shellwords.Parse(copyCmd)
	if err != nil {
		return nil, fmt.Errorf("copy command %q: %w", copyCmd, err)
	}
	ps, err := shellwords.Parse(pasteCmd)
	if err != nil {
		return nil, fmt.Errorf("paste command %q: %w", pasteCmd, err)
	}
	return &Command{
		Copy:  cp,
		Paste: ps,
	}, nil
}

// Write pipes text into the copy utility.
func (c *Command) Write(text string) error {
	if len(c.Copy) == 0 {
		return ErrNoCommand
	}
	cmd := exec.Command(c.Copy[0], c.Copy[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.WaitDelay = waitDelay
	// stdout and stderr stay unattached so a forked owner cannot hold Wait open
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", shellquote.Join(c.Copy...), err)
	}
	return nil
}

// Read captures the output of the paste utility.
func (c *Command) Read() (string, error) {
	if len(c.Paste) == 0 {
		return "", ErrNoCommand
	}
	cmd := exec.Command(c.Paste[0], c.Paste[1:]...)
	cmd.WaitDelay = waitDelay
	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return "", fmt.Errorf("%s: %w: %s", shellquote.Join(c.Paste...), err, strings.TrimSpace(string(ee.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", shellquote.Join(c.Paste...), err)
	}
	return string(out), nil
}

func (c *Command) String() string {
	if len(c.Copy) == 0 {
		return "clipboard utility"
	}
	return c.Copy[0]
}
