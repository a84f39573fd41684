package prompt

import (
	"strings"

	"github.com/qiangli/polyglot/internal/scan"
)

var preamble = []string{
	"Assist me in improving programming code.",
	"Find below file paths and contents marked with '==='.",
	"Analyze and provide suggestions for improvement.",
	"",
}

var instructions = []string{
	"Start with the most critical / important improvements pick 1 to 3 items.",
	"Look for code issues, design issues, code formatting, simplifications.",
	"Apply best practices, make recommendations for using most common and widely recognized",
	"approaches.",
	"Assume code line length should not exceed 100 chars, break if needed with",
	"holding good indentations. Also in case too fast line break does not make sense,",
	"join lines.",
	"Provide the following:",
	"1. Explain issue / improvement you identify in the code.",
	"2. Suggest the change.",
	"",
	"After your explanation and suggestions, please provide an explicit diff patch snippet",
	"that applies your suggested improvements. Separate this patch with the marker:",
	"'" + DiffBegin + "' and '" + DiffEnd + "'",
	"Please ensure the diff patch is in a standard format i.e. similar to",
	"diff -ruN and can be applied via patch << your_snippet.txt.",
}

// Markers the model is asked to put around its patch.
const (
	DiffBegin = "=== DIFF PATCH SNIPPET BELOW ==="
	DiffEnd   = "=== DIFF PATCH SNIPPET ABOVE ==="
)

// ComposeCodeImprove builds a code review prompt listing every file path and content.
func ComposeCodeImprove(files []scan.FileContent) string {
	lines := append([]string{}, preamble...)
	for _, f := range files {
		lines = append(lines,
			"=== FILE PATH ===",
			f.Path,
			"",
			"=== FILE CONTENT ===",
			f.Content,
			"",
		)
	}
	lines = append(lines, instructions...)
	return strings.Join(lines, "\n")
}

// ExtractPatch returns the text between the diff markers, if the response has them.
func ExtractPatch(response string) (string, bool) {
	_, rest, ok := strings.Cut(response, DiffBegin)
	if !ok {
		return "", false
	}
	patch, _, ok := strings.Cut(rest, DiffEnd)
	if !ok {
		return "", false
	}
	return strings.Trim(patch, "\n"), true
}
