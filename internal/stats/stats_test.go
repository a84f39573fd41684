package stats

import (
	"strings"
	"testing"

	"github.com/qiangli/polyglot/internal/log"
	"github.com/qiangli/polyglot/internal/scan"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    FileStats
	}{
		{
			name: "cpp",
			path: "test_cpp.cpp",
			content: `\
#include <iostream>

/**
 * This is a
 * multiline comment
 */
int main() {
    // This is a single-line comment
    LOG(INFO) << "Hello, World!";
    return 0;
}

// Forward declaration
class ForwardDeclaredClass;
`,
			want: FileStats{
				TotalLines:   15,
				CodeLines:    3,
				CommentLines: 6,
				ImportLines:  1,
				LoggingLines: 1,
				TrivialLines: 1,
				EmptyLines:   2,
			},
		},
		{
			name: "python",
			path: "test_py.py",
			content: `\
from loguru import logger

# This is a single-line comment
def main():
    '''This is a
       multiline string in Python'''
    logger.info('Hello, World!')

if __name__ == '__main__':
    main()
`,
			want: FileStats{
				TotalLines:       11,
				CodeLines:        4,
				CommentLines:     1,
				ImportLines:      1,
				LoggingLines:     1,
				EmptyLines:       2,
				MultistringLines: 3,
			},
		},
		{
			name: "kotlin",
			path: "test_kt.kt",
			content: `\
package com.example

import org.slf4j.Logger

private val logger: Logger = LoggerFactory.getLogger("HelloWorld")

/**
 * This is a multiline comment in Kotlin
 */
fun main() {
    // This is a single-line comment
    println("Hello, World!")  // Print a message
}

data class Example(val name: String)
`,
			want: FileStats{
				TotalLines:   16,
				CodeLines:    5,
				CommentLines: 4,
				ImportLines:  1,
				Classes:      1,
				TrivialLines: 1,
				EmptyLines:   4,
			},
		},
		{
			name: "inline block comment, bracket log level, declarations",
			path: "x.go",
			content: "x := 1 /* note */\n" +
				"y := 2\n" +
				"fmt.Println(\"[ warn ] disk\")\n" +
				"struct Point {\n" +
				"enum Color\n",
			want: FileStats{
				TotalLines:   5,
				CommentLines: 1,
				CodeLines:    1,
				LoggingLines: 1,
				Classes:      2,
			},
		},
		{
			name:    "no trailing newline",
			path:    "x.py",
			content: "a = 1\n\nb = 2",
			want:    FileStats{TotalLines: 3, CodeLines: 2, EmptyLines: 1},
		},
		{
			name:    "empty",
			path:    "empty.py",
			content: "",
			want:    FileStats{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(tc.path, tc.content)
			tc.want.Path = tc.path
			if got != tc.want {
				t.Errorf("got  %+v\nwant %+v", got, tc.want)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/src/main.kt", "kt"},
		{"a/b.test.py", "py"},
		{"Makefile", "Makefile"},
	}
	for _, tc := range tests {
		if got := (FileStats{Path: tc.path}).Language(); got != tc.want {
			t.Errorf("Language(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestTables(t *testing.T) {
	files := AnalyzeFiles(log.Discard(), []scan.FileContent{
		{Path: "/src/a.py", Content: "import os\n\nclass A:\n    pass\n"},
		{Path: "/src/b.py", Content: "# hi\n"},
		{Path: "/src/Main.kt", Content: "fun main() {\n}\n"},
	})

	o := Summarize(files)
	if o != (Overall{Files: 3, Lines: 7, Classes: 1}) {
		t.Errorf("overall = %+v", o)
	}

	langs := ByLanguage(files)
	if len(langs) != 2 || langs[0].Path != "kt" || langs[1].Path != "py" {
		t.Fatalf("languages = %+v", langs)
	}
	if py := langs[1]; py.ImportLines != 1 || py.CommentLines != 1 || py.CodeLines != 1 || py.EmptyLines != 1 {
		t.Errorf("py = %+v", py)
	}

	overall := OverallTable(files)
	for _, want := range []string{"Metric", "Value", "total_files", "total_lines", "total_classes", "7"} {
		if !strings.Contains(overall, want) {
			t.Errorf("overall table lacks %q:\n%s", want, overall)
		}
	}

	detailed := DetailedTable(files)
	for _, want := range append(detailHeaders, "kt", "py") {
		if !strings.Contains(detailed, want) {
			t.Errorf("detailed table lacks %q:\n%s", want, detailed)
		}
	}
	// header plus rule plus one row per language
	if n := len(strings.Split(strings.TrimRight(detailed, "\n"), "\n")); n != 4 {
		t.Errorf("detailed table has %d lines:\n%s", n, detailed)
	}
}
