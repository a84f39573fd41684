package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qiangli/polyglot/internal/llm"
	"github.com/qiangli/polyglot/internal/prompt"
	"github.com/qiangli/polyglot/internal/stats"
)

var scanCmd = &cobra.Command{
	Use:   "scan [OPTIONS] FOLDER_MASK...",
	Short: "List the files review would send with their line statistics, without sending anything",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig(nil)
		cfg.Masks = args
		cfg.Extensions = viper.GetStringSlice("scan_ext")

		files, err := reviewFiles(cfg)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, f := range files {
			fmt.Fprintln(w, f.Path)
		}
		fs := stats.AnalyzeFiles(logger, files)
		fmt.Fprintf(w, "\nOverall Stats:\n%s\n", stats.OverallTable(fs))
		fmt.Fprintf(w, "\nDetailed Stats:\n%s\n", stats.DetailedTable(fs))
		logger.Info("Prompt %s\n", llm.TextStats(prompt.ComposeCodeImprove(files)))
		return nil
	},
}

func init() {
	flags := scanCmd.Flags()
	flags.StringSlice("ext", []string{".go"}, "File extensions to include")
	viper.BindPFlag("scan_ext", flags.Lookup("ext"))
}
