package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/qiangli/polyglot/internal/llm"
)

func TestPrepareRequest(t *testing.T) {
	req, err := New().PrepareRequest(context.TODO(), "Test prompt", "key 1")
	if err != nil {
		t.Fatalf("PrepareRequest: %v", err)
	}
	if req.URL != Endpoint+"?key=key+1" {
		t.Errorf("url = %q", req.URL)
	}
	if !strings.HasPrefix(req.URL, "https://generativelanguage.googleapis.com") {
		t.Errorf("unexpected host in %q", req.URL)
	}
	if _, ok := req.Header["Authorization"]; ok {
		t.Errorf("credential must not be sent as a header")
	}

	var body struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
		GenerationConfig map[string]any `json:"generationConfig"`
	}
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("body is not JSON: %v\n%s", err, req.Body)
	}
	if len(body.Contents) != 1 || len(body.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected contents %+v", body.Contents)
	}
	if body.Contents[0].Parts[0].Text != "Test prompt" {
		t.Errorf("text = %q", body.Contents[0].Parts[0].Text)
	}

	want := map[string]float64{
		"temperature":     0.7,
		"topK":            40,
		"topP":            0.95,
		"maxOutputTokens": 2048,
	}
	for k, v := range want {
		if got, ok := body.GenerationConfig[k].(float64); !ok || got != v {
			t.Errorf("generationConfig.%s = %v, want %v", k, body.GenerationConfig[k], v)
		}
	}
}

func TestParseResponse(t *testing.T) {
	p := New()

	payload := `{"candidates":[{"content":{"parts":[{"text":"hi"}],"role":"model"}}]}`
	got, err := p.ParseResponse(context.TODO(), []byte(payload))
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if got != "hi" {
		t.Errorf("got %q, want hi", got)
	}

	_, err = p.ParseResponse(context.TODO(), []byte(`{"candidates":[{"content":{"parts":[]}}]}`))
	var mre *llm.MalformedResponseError
	if !errors.As(err, &mre) {
		t.Errorf("expected MalformedResponseError, got %v", err)
	}
}
