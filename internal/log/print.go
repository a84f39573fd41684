package log

import (
	"fmt"
	"io"
	"unicode/utf8"
)

type Level int

const (
	Quiet Level = iota
	Normal
	Verbose
)

type Printer interface {
	Printf(string, ...any)

	SetEnabled(bool)
	IsEnabled() bool

	SetLogger(io.Writer)
}

func NewPrinter(w io.Writer, enabled bool, max int) Printer {
	return &printer{
		out: w,
		on:  enabled,
		max: max,
	}
}

type printer struct {
	out io.Writer
	on  bool

	// truncate console output, 0 for no limit
	max int

	logger io.Writer
}

func (r *printer) SetEnabled(b bool) {
	r.on = b
}

func (r *printer) IsEnabled() bool {
	return r.on
}

func (r *printer) Printf(format string, a ...any) {
	s := fmt.Sprintf(format, a...)
	if r.on {
		out := s
		if r.max > 0 && len(out) > r.max {
			out = truncate(out, r.max) + "...\n"
		}
		fmt.Fprint(r.out, out)
	}
	if r.logger != nil {
		fmt.Fprint(r.logger, s)
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (r *printer) SetLogger(w io.Writer) {
	r.logger = w
}

type defaultLogger struct {
	logLevel Level

	printLogger  Printer
	debugLogger  Printer
	infoLogger   Printer
	errLogger    Printer
	promptLogger Printer

	// prompts are pointless when nobody is typing
	piped bool

	tee *FileWriter
}

func (r *defaultLogger) Prompt(format string, a ...any) {
	r.promptLogger.Printf(format, a...)
}

func (r *defaultLogger) Print(format string, a ...any) {
	r.printLogger.Printf(format, a...)
}

func (r *defaultLogger) Error(format string, a ...any) {
	r.errLogger.Printf(format, a...)
}

func (r *defaultLogger) Info(format string, a ...any) {
	r.infoLogger.Printf(format, a...)
}

func (r *defaultLogger) Debug(format string, a ...any) {
	if r.tee == nil && !r.debugLogger.IsEnabled() {
		return
	}
	r.debugLogger.Printf(format, a...)
}

func (r *defaultLogger) IsVerbose() bool {
	return r.logLevel == Verbose
}

func (r *defaultLogger) IsQuiet() bool {
	return r.logLevel == Quiet
}


func (r *defaultLogger) SetLogLevel(level Level) {
	r.logLevel = level

	// stdout
	r.printLogger.SetEnabled(true)

	// stderr
	switch level {
	case Quiet:
		r.debugLogger.SetEnabled(false)
		r.infoLogger.SetEnabled(false)
		r.errLogger.SetEnabled(false)
		r.promptLogger.SetEnabled(false)
	case Normal:
		r.debugLogger.SetEnabled(false)
		r.infoLogger.SetEnabled(true)
		r.errLogger.SetEnabled(true)
		r.promptLogger.SetEnabled(true)
	case Verbose:
		r.debugLogger.SetEnabled(true)
		r.infoLogger.SetEnabled(true)
		r.errLogger.SetEnabled(true)
		r.promptLogger.SetEnabled(true)
	}

	if r.piped {
		r.promptLogger.SetEnabled(false)
	}
}

// SetTeeFile copies every message, regardless of level, to the given file.
func (r *defaultLogger) SetTeeFile(pathname string) error {
	if err := r.CloseTee(); err != nil {
		return err
	}
	w, err := NewFileWriter(pathname)
	if err != nil {
		return err
	}
	r.tee = w
	for _, p := range []Printer{r.printLogger, r.debugLogger, r.infoLogger, r.errLogger, r.promptLogger} {
		p.SetLogger(w)
	}
	return nil
}

func (r *defaultLogger) CloseTee() error {
	if r.tee == nil {
		return nil
	}
	for _, p := range []Printer{r.printLogger, r.debugLogger, r.infoLogger, r.errLogger, r.promptLogger} {
		p.SetLogger(nil)
	}
	err := r.tee.Close()
	r.tee = nil
	return err
}
