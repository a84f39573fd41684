package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/qiangli/polyglot/internal"
	"github.com/qiangli/polyglot/internal/llm"
	"github.com/qiangli/polyglot/internal/util"
)

// formatResult renders the result in the requested format. Markdown is only
// styled for a terminal.
func formatResult(format string, result *llm.QueryResult, tty bool) (string, error) {
	switch format {
	case internal.FormatJSON:
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case internal.FormatYAML:
		b, err := yaml.Marshal(result)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case internal.FormatMarkdown:
		if tty {
			return util.Render(result.Response, 0), nil
		}
		return withNewline(result.Response), nil
	case internal.FormatRaw, "":
		return withNewline(result.Response), nil
	}
	return "", internal.NewUserInputErrorf("unsupported output format: %s", format)
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// writeResult prints the response, or saves it when --output is set.
func writeResult(cfg *internal.AppConfig, result *llm.QueryResult) error {
	if cfg.Output != "" {
		// files never get terminal styling
		content, err := formatResult(cfg.Format, result, false)
		if err != nil {
			return err
		}
		if dir := filepath.Dir(cfg.Output); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrapf(err, "create %s", dir)
			}
		}
		if err := os.WriteFile(cfg.Output, []byte(content), 0o644); err != nil {
			return errors.Wrapf(err, "save response to %s", cfg.Output)
		}
		logger.Info("response saved to %s\n", cfg.Output)
		return nil
	}

	content, err := formatResult(cfg.Format, result, isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, content)

	if result.ResponseTime > 0 {
		logger.Debug("response time: %dms\n", result.ResponseTime)
	}
	return nil
}
