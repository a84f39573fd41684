package log

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Logger is handed to every component that reports progress.
// Print goes to stdout, everything else to stderr.
type Logger interface {
	Prompt(string, ...any)
	//
	Print(string, ...any)
	Error(string, ...any)
	Info(string, ...any)
	Debug(string, ...any)

	SetLogLevel(Level)
	SetTeeFile(string) error
	CloseTee() error

	IsQuiet() bool
	IsVerbose() bool
}

// New returns a logger writing print output to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer) Logger {
	l := &defaultLogger{
		printLogger:  NewPrinter(stdout, false, 0),
		debugLogger:  NewPrinter(stderr, false, 500),
		infoLogger:   NewPrinter(stderr, false, 0),
		errLogger:    NewPrinter(stderr, false, 0),
		promptLogger: NewPrinter(stderr, false, 0),
		piped:        stdinPiped(),
	}
	l.SetLogLevel(Normal)
	return l
}

// Default logs to the process streams.
func Default() Logger {
	return New(os.Stdout, os.Stderr)
}

// Discard drops everything.
func Discard() Logger {
	l := New(io.Discard, io.Discard)
	l.SetLogLevel(Quiet)
	return l
}

func stdinPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
