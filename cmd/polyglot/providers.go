package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qiangli/polyglot/internal/llm/interactive"
	"github.com/qiangli/polyglot/internal/query"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the supported API URL prefixes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		resolver := query.NewResolver(interactive.Config{Logger: logger})
		for _, v := range resolver.Prefixes() {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
	},
}
