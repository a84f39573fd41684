package stats

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Column names of the detailed table, in display order.
var detailHeaders = []string{
	"language",
	"code_lines",
	"comment_lines",
	"empty_lines",
	"import_lines",
	"logging_lines",
	"multistring_lines",
	"total_classes",
	"trivial_lines",
}

// Overall is the file, line and class count over all files.
type Overall struct {
	Files   int
	Lines   int
	Classes int
}

func Summarize(files []FileStats) Overall {
	o := Overall{Files: len(files)}
	for _, f := range files {
		o.Lines += f.TotalLines
		o.Classes += f.Classes
	}
	return o
}

// ByLanguage sums the stats per language, sorted by language.
func ByLanguage(files []FileStats) []FileStats {
	sums := map[string]*FileStats{}
	var langs []string
	for _, f := range files {
		lang := f.Language()
		sum, ok := sums[lang]
		if !ok {
			sum = &FileStats{Path: lang}
			sums[lang] = sum
			langs = append(langs, lang)
		}
		sum.EmptyLines += f.EmptyLines
		sum.TrivialLines += f.TrivialLines
		sum.ImportLines += f.ImportLines
		sum.CommentLines += f.CommentLines
		sum.MultistringLines += f.MultistringLines
		sum.LoggingLines += f.LoggingLines
		sum.CodeLines += f.CodeLines
		sum.TotalLines += f.TotalLines
		sum.Classes += f.Classes
	}
	slices.Sort(langs)

	result := make([]FileStats, 0, len(langs))
	for _, lang := range langs {
		result = append(result, *sums[lang])
	}
	return result
}

// OverallTable renders the Metric/Value summary.
func OverallTable(files []FileStats) string {
	o := Summarize(files)
	return newTable().
		Headers("Metric", "Value").
		Row("total_files", strconv.Itoa(o.Files)).
		Row("total_lines", strconv.Itoa(o.Lines)).
		Row("total_classes", strconv.Itoa(o.Classes)).
		String()
}

// DetailedTable renders one row of line counts per language.
func DetailedTable(files []FileStats) string {
	t := newTable().Headers(detailHeaders...)
	for _, s := range ByLanguage(files) {
		t.Row(
			s.Path,
			strconv.Itoa(s.CodeLines),
			strconv.Itoa(s.CommentLines),
			strconv.Itoa(s.EmptyLines),
			strconv.Itoa(s.ImportLines),
			strconv.Itoa(s.LoggingLines),
			strconv.Itoa(s.MultistringLines),
			strconv.Itoa(s.Classes),
			strconv.Itoa(s.TrivialLines),
		)
	}
	return t.String()
}

// newTable draws only the header rule and column separators.
func newTable() *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col > 0 && row != table.HeaderRow {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})
}
