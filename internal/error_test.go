package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/qiangli/polyglot/internal/llm"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("boom"), 1},
		{NewUserInputError("no prompt"), 2},
		{fmt.Errorf("wrapped: %w", NewUserInputErrorf("bad %s", "flag")), 2},
		{&llm.UnsupportedProviderError{Endpoint: "https://example.com"}, 2},
		{&llm.APIError{StatusCode: 500, Status: "Internal Server Error"}, 1},
		{&llm.NetworkError{Err: errors.New("connection refused")}, 1},
		{&llm.MalformedResponseError{Path: "completion", Reason: "not found"}, 1},
	}
	for _, tc := range tests {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
