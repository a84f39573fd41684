package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/qiangli/polyglot/internal"
)

func TestCredentialFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	tests := []struct {
		endpoint string
		want     string
	}{
		{"https://api.openai.com/v1/chat/completions", "sk-openai"},
		{"https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent", internal.DefaultAPIKey},
		{"https://api.anthropic.com/v1/messages", "sk-ant"},
		{"http://local+interactive", internal.DefaultAPIKey},
		{"https://example.com", internal.DefaultAPIKey},
	}
	for _, tc := range tests {
		if got := credentialFromEnv(tc.endpoint); got != tc.want {
			t.Errorf("credentialFromEnv(%q) = %q, want %q", tc.endpoint, got, tc.want)
		}
	}
}

func TestUserInput(t *testing.T) {
	const api = "https://api.openai.com/v1/chat/completions"
	tests := []struct {
		name  string
		cfg   internal.AppConfig
		stdin string
		want  string
	}{
		{"args", internal.AppConfig{APIURL: api, Args: []string{"fix", "this"}}, "", "fix this"},
		{"message wins", internal.AppConfig{APIURL: api, Message: " hello ", Args: []string{"ignored"}}, "", "hello"},
		{"stdin only", internal.AppConfig{APIURL: api, Stdin: true}, "  piped\n", "piped"},
		{"args and stdin", internal.AppConfig{APIURL: api, Args: []string{"explain"}, Stdin: true}, "code\n", "explain\n\ncode"},
		{"empty stdin", internal.AppConfig{APIURL: api, Args: []string{"explain"}, Stdin: true}, "", "explain"},
		{"nothing", internal.AppConfig{APIURL: api}, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := userInput(&tc.cfg, strings.NewReader(tc.stdin))
			if err != nil {
				t.Fatalf("userInput: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUserInputInteractiveStdin(t *testing.T) {
	cfg := &internal.AppConfig{APIURL: internal.DefaultAPIURL, Stdin: true}
	_, err := userInput(cfg, strings.NewReader("prompt"))

	var uie *internal.UserInputError
	if !errors.As(err, &uie) {
		t.Fatalf("expected UserInputError, got %v", err)
	}
}

func TestClipboardUtility(t *testing.T) {
	cfg := &internal.AppConfig{
		CopyCmd: `tee "/tmp/my clip"`,
	}
	got, err := clipboardUtility(cfg)
	if err != nil {
		t.Fatalf("clipboardUtility: %v", err)
	}
	if strings.Join(got.Copy, "|") != "tee|/tmp/my clip" {
		t.Errorf("copy = %q", got.Copy)
	}
	if len(got.Paste) == 0 {
		t.Errorf("paste command should default to the OS utility")
	}
}

func TestClipboardUtilityInvalid(t *testing.T) {
	cfg := &internal.AppConfig{
		CopyCmd: `xclip "unterminated`,
	}
	if _, err := clipboardUtility(cfg); err == nil {
		t.Fatal("expected error for an unterminated quote")
	}
}
