package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/qiangli/polyglot/internal/llm"
	"github.com/qiangli/polyglot/internal/log"
)

// UserInputError represents user input error.
type UserInputError struct {
	text string
}

func (r *UserInputError) Error() string {
	return r.text
}

func NewUserInputError(text string) error {
	return &UserInputError{
		text: text,
	}
}

func NewUserInputErrorf(format string, a ...any) error {
	return &UserInputError{
		text: fmt.Sprintf(format, a...),
	}
}

// ExitCode maps an error to the process exit code:
// 0 -- no error
// 1 -- general failure
// 2 -- user error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var uie *UserInputError
	var upe *llm.UnsupportedProviderError
	if errors.As(err, &uie) || errors.As(err, &upe) {
		return 2
	}
	return 1
}

// Exit reports err and terminates the process.
func Exit(logger log.Logger, err error) {
	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
	}

	const max = 500
	msg := err.Error()
	if !logger.IsVerbose() && len(msg) > max {
		msg = msg[:max] + "..."
	}
	logger.Error("%s\n", msg)
	logger.CloseTee()

	os.Exit(code)
}
