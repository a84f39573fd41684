package util

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"~", "/home/tester"},
		{"~/.polyglot/config.yaml", filepath.Join("/home/tester", ".polyglot", "config.yaml")},
		{"/tmp/answer.md", "/tmp/answer.md"},
		{"~other/x", "~other/x"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := ExpandHome(tc.in); got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
