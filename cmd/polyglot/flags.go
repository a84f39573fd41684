package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/qiangli/polyglot/internal"
)

var cfgFile string
var formatFlag string

// Output format type
type formatValue string

func newFormatValue(val string, p *string) *formatValue {
	*p = val
	return (*formatValue)(p)
}

func (s *formatValue) Set(val string) error {
	if !slices.Contains(internal.Formats, val) {
		return fmt.Errorf("invalid output format: %v. supported: %s", val, strings.Join(internal.Formats, ", "))
	}
	*s = formatValue(val)
	return nil
}

func (s *formatValue) Type() string {
	return "string"
}

func (s *formatValue) String() string { return string(*s) }

func addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", internal.DefaultConfigFile(), "config file")

	// LLM
	flags.String("api-url", internal.DefaultAPIURL, "LLM API URL, selects the provider")
	flags.String("api-key", "", "LLM API key")

	// interactive
	flags.String("copy-cmd", "", "Clipboard utility used to copy the prompt (default xclip/pbcopy)")
	flags.String("paste-cmd", "", "Clipboard utility used to paste the response (default xclip/pbpaste)")

	// output
	flags.Var(newFormatValue(internal.FormatMarkdown, &formatFlag), "format", "Output format: raw, markdown, json or yaml")
	flags.StringP("output", "o", "", "Save the response to a file")

	flags.Bool("verbose", false, "Show debugging information")
	flags.Bool("quiet", false, "Operate quietly")
	flags.String("log", "", "Log all debugging information to a file")

	bindFlags(flags)
}

// bindFlags binds flags to viper using underscores
func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		viper.BindPFlag(key, f)
	})
}

func initViper() {
	viper.SetEnvPrefix("polyglot")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
