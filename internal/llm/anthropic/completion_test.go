package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/qiangli/polyglot/internal/llm"
)

func TestPrepareRequest(t *testing.T) {
	req, err := New().PrepareRequest(context.TODO(), "Test prompt", "ak-test")
	if err != nil {
		t.Fatalf("PrepareRequest: %v", err)
	}
	if req.URL != Endpoint {
		t.Errorf("url = %q", req.URL)
	}
	if got := req.Header["x-api-key"]; got != "ak-test" {
		t.Errorf("x-api-key = %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("body is not JSON: %v\n%s", err, req.Body)
	}
	if body["model"] != "claude-2" {
		t.Errorf("model = %v", body["model"])
	}
	if body["prompt"] != "Test prompt" {
		t.Errorf("prompt = %v", body["prompt"])
	}
	if body["max_tokens_to_sample"] != float64(2048) {
		t.Errorf("max_tokens_to_sample = %v", body["max_tokens_to_sample"])
	}
}

func TestParseResponse(t *testing.T) {
	p := New()

	got, err := p.ParseResponse(context.TODO(), []byte(`{"completion":" hi","stop_reason":"stop_sequence"}`))
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if got != " hi" {
		t.Errorf("got %q", got)
	}

	_, err = p.ParseResponse(context.TODO(), []byte(`{"content":[{"type":"text","text":"hi"}]}`))
	var mre *llm.MalformedResponseError
	if !errors.As(err, &mre) {
		t.Errorf("expected MalformedResponseError, got %v", err)
	}
}
