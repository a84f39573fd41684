package interactive

import (
	"fmt"

	"github.com/qiangli/polyglot/internal/log"
)

// attempt is one channel in a fallback chain.
type attempt[T any] struct {
	name string
	run  func() (T, error)
}

// fallback tries each attempt in order and returns the first success.
// Failures are logged and never returned; final must always succeed.
func fallback[T any](logger log.Logger, op string, attempts []attempt[T], final func() T) T {
	for _, a := range attempts {
		logger.Info("%s via %s ...\n", op, a.name)
		v, err := try(a.run)
		if err == nil {
			logger.Info("%s via %s ... Done.\n", op, a.name)
			return v
		}
		logger.Error("%s via %s ... %v\n", op, a.name, err)
	}
	return final()
}

func try[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn()
}
