package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qiangli/polyglot/internal"
	"github.com/qiangli/polyglot/internal/llm"
	"github.com/qiangli/polyglot/internal/prompt"
	"github.com/qiangli/polyglot/internal/scan"
	"github.com/qiangli/polyglot/internal/stats"
)

var reviewCmd = &cobra.Command{
	Use:   "review [OPTIONS] FOLDER_MASK...",
	Short: "Ask for code improvements on the source files under the matching folders",
	Example: `  polyglot review --ext .go,.mod "internal/*"
  polyglot review --api-url https://api.openai.com/v1/chat/completions --patch fix.diff .`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig(nil)
		cfg.Masks = args
		cfg.Extensions = viper.GetStringSlice("ext")

		files, err := reviewFiles(cfg)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return internal.NewUserInputErrorf("no %v files found in %v", cfg.Extensions, cfg.Masks)
		}

		logStats(files)

		msg := prompt.ComposeCodeImprove(files)
		logger.Info("Prompt %s\n", llm.TextStats(msg))

		result, err := execute(cmd.Context(), cfg, msg)
		if err != nil {
			return err
		}
		if err := writeResult(cfg, result); err != nil {
			return err
		}
		return savePatch(viper.GetString("patch"), result.Response)
	},
}

func init() {
	flags := reviewCmd.Flags()
	flags.StringSlice("ext", []string{".go"}, "File extensions to include")
	flags.String("patch", "", "Save the diff patch from the response to a file")
	viper.BindPFlag("ext", flags.Lookup("ext"))
	viper.BindPFlag("patch", flags.Lookup("patch"))
}

func reviewFiles(cfg *internal.AppConfig) ([]scan.FileContent, error) {
	folders, err := scan.ExpandMasks(logger, cfg.Masks)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, internal.NewUserInputErrorf("no folders match %v", cfg.Masks)
	}
	return scan.Folders(logger, folders, cfg.Extensions)
}

// logStats prints the overall and per language line counts.
func logStats(files []scan.FileContent) {
	fs := stats.AnalyzeFiles(logger, files)
	logger.Info("\nOverall Stats:\n%s\n", stats.OverallTable(fs))
	logger.Info("\nDetailed Stats:\n%s\n\n", stats.DetailedTable(fs))
}

func savePatch(path, response string) error {
	if path == "" {
		return nil
	}
	patch, ok := prompt.ExtractPatch(response)
	if !ok {
		logger.Info("no diff patch found in the response\n")
		return nil
	}
	if err := os.WriteFile(path, []byte(patch+"\n"), 0o644); err != nil {
		return errors.Wrapf(err, "save patch to %s", path)
	}
	logger.Info("patch saved to %s\n", path)
	return nil
}
