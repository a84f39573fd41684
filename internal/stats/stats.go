package stats

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/qiangli/polyglot/internal/log"
	"github.com/qiangli/polyglot/internal/scan"
)

var (
	trivialRe     = regexp.MustCompile(`^[}\])]$`)
	importRe      = regexp.MustCompile(`^(\s*(import|#include|using)\s+.*|from\s+\w+\s+import\s+.*)$`)
	commentRe     = regexp.MustCompile(`^(//|#).*$`)
	multistringRe = regexp.MustCompile(`^.*("""|''').*$`)
	loggingRe     = regexp.MustCompile(`(?i)^.*(\[\s*(debug|info|warn|error)\s*\]|log(ger)?\.(debug|info|warn|error)|log\s*\(\s*(debug|info|warn|error)\s*\)).*$`)
	classRe       = regexp.MustCompile(`^(public|protected|private|data\s+)?(class|interface|enum|struct)\s+\w+.*$`)
	forwardDeclRe = regexp.MustCompile(`^class\s+\w+\s*;$`)
)

// FileStats counts the kinds of lines in one source file.
// Every line lands in exactly one bucket except class declarations, which
// only add to Classes.
type FileStats struct {
	Path string

	EmptyLines       int
	TrivialLines     int
	ImportLines      int
	CommentLines     int
	MultistringLines int
	LoggingLines     int
	CodeLines        int

	TotalLines int
	Classes    int
}

// Language is the file extension without the dot, or the file name when
// there is none.
func (r FileStats) Language() string {
	if ext := filepath.Ext(r.Path); len(ext) > 1 {
		return ext[1:]
	}
	return filepath.Base(r.Path)
}

type analyzer struct {
	inComment bool
	inString  bool

	stats FileStats
}

// Analyze classifies every line of content. Block comments and triple quoted
// strings are tracked across lines.
func Analyze(path, content string) FileStats {
	a := &analyzer{stats: FileStats{Path: path}}
	for line := range strings.Lines(content) {
		a.stats.TotalLines++
		a.classifyLine(line)
	}
	return a.stats
}

// AnalyzeFiles analyzes the scanned files in order.
func AnalyzeFiles(logger log.Logger, files []scan.FileContent) []FileStats {
	result := make([]FileStats, 0, len(files))
	for _, f := range files {
		s := Analyze(f.Path, f.Content)
		logger.Debug("%s : %d\n", filepath.Base(f.Path), s.TotalLines)
		result = append(result, s)
	}
	return result
}

func (a *analyzer) classifyLine(line string) {
	s := &a.stats
	trimmed := strings.TrimSpace(line)

	if strings.Contains(trimmed, "/*") {
		a.inComment = true
	}

	comment := commentRe.MatchString(trimmed)
	switch {
	case trimmed == "":
		s.EmptyLines++
	case trivialRe.MatchString(trimmed):
		s.TrivialLines++
	case importRe.MatchString(trimmed):
		s.ImportLines++
	case comment || a.inComment:
		s.CommentLines++
	case multistringRe.MatchString(trimmed) || a.inString:
		s.MultistringLines++
	case loggingRe.MatchString(trimmed):
		s.LoggingLines++
	case classRe.MatchString(trimmed):
		if !forwardDeclRe.MatchString(trimmed) {
			s.Classes++
		}
	default:
		s.CodeLines++
	}

	if strings.Contains(trimmed, "*/") {
		a.inComment = false
	}

	// the opening line of a multiline string counts twice
	if !comment && (strings.Contains(trimmed, `"""`) || strings.Contains(trimmed, "'''")) {
		a.inString = !a.inString
		if a.inString {
			s.MultistringLines++
		}
	}
}
