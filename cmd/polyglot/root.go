package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/briandowns/spinner"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qiangli/polyglot/internal"
	"github.com/qiangli/polyglot/internal/cb"
	"github.com/qiangli/polyglot/internal/llm"
	"github.com/qiangli/polyglot/internal/llm/interactive"
	"github.com/qiangli/polyglot/internal/log"
	"github.com/qiangli/polyglot/internal/query"
	"github.com/qiangli/polyglot/internal/util"
)

var rootCmd = &cobra.Command{
	Use:   "polyglot [OPTIONS] PROMPT...",
	Short: "Send a prompt to an LLM API or to a human operator",
	Long: `Polyglot sends a prompt to the LLM API selected by --api-url.

The default endpoint http://local+interactive needs no API key: the prompt is
copied to the clipboard (or printed) and the answer is pasted back.`,
	Example:           usageExample,
	Args:              cobra.ArbitraryArgs,
	Version:           internal.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig(args)

		msg, err := userInput(cfg, os.Stdin)
		if err != nil {
			return err
		}
		if msg == "" {
			return cmd.Help()
		}

		result, err := execute(cmd.Context(), cfg, msg)
		if err != nil {
			return err
		}
		return writeResult(cfg, result)
	},
}

func init() {
	addFlags(rootCmd)
	rootCmd.Flags().String("message", "", "Specify the prompt. Overrides command line arguments")
	bindFlags(rootCmd.Flags())

	initViper()

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetUsageTemplate(rootUsageTemplate)

	rootCmd.AddCommand(reviewCmd, scanCmd, providersCmd)
}

// setup loads .env and the config file and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	// variables already set take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error(".env: %v\n", err)
	}
	if err := initConfig(); err != nil {
		return err
	}

	switch {
	case viper.GetBool("quiet"):
		logger.SetLogLevel(log.Quiet)
	case viper.GetBool("verbose"):
		logger.SetLogLevel(log.Verbose)
	default:
		logger.SetLogLevel(log.Normal)
	}

	if v := util.ExpandHome(viper.GetString("log")); v != "" {
		if err := logger.SetTeeFile(v); err != nil {
			return err
		}
	}
	return nil
}

func initConfig() error {
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(util.ExpandHome(cfgFile))
	if err := viper.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("config file %s not found\n", cfgFile)
			return nil
		}
		return internal.NewUserInputErrorf("config file %s: %v", cfgFile, err)
	}
	logger.Debug("using config file %s\n", viper.ConfigFileUsed())
	return nil
}

func getConfig(args []string) *internal.AppConfig {
	var cfg internal.AppConfig

	cfg.APIURL = viper.GetString("api_url")
	cfg.APIKey = viper.GetString("api_key")
	cfg.CopyCmd = viper.GetString("copy_cmd")
	cfg.PasteCmd = viper.GetString("paste_cmd")
	cfg.Message = viper.GetString("message")
	cfg.Format = viper.GetString("format")
	cfg.Output = util.ExpandHome(viper.GetString("output"))
	cfg.Extensions = viper.GetStringSlice("ext")

	if n := len(args); n > 0 && args[n-1] == internal.StdinRedirect {
		cfg.Stdin = true
		args = args[:n-1]
	}
	cfg.Args = args

	if cfg.APIKey == "" {
		cfg.APIKey = credentialFromEnv(cfg.APIURL)
	}
	return &cfg
}

// credentialFromEnv falls back to the provider's conventional variable.
func credentialFromEnv(endpoint string) string {
	var name string
	switch {
	case strings.HasPrefix(endpoint, query.OpenAIPrefix):
		name = "OPENAI_API_KEY"
	case strings.HasPrefix(endpoint, query.GeminiPrefix):
		name = "GEMINI_API_KEY"
	case strings.HasPrefix(endpoint, query.AnthropicPrefix):
		name = "ANTHROPIC_API_KEY"
	}
	if name != "" {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return internal.DefaultAPIKey
}

// userInput joins the prompt from --message, the arguments and stdin.
func userInput(cfg *internal.AppConfig, stdin io.Reader) (string, error) {
	msg := strings.TrimSpace(cfg.Message)
	if msg == "" {
		msg = strings.TrimSpace(strings.Join(cfg.Args, " "))
	}
	if !cfg.Stdin {
		return msg, nil
	}

	if query.IsInteractive(cfg.APIURL) {
		return "", internal.NewUserInputError("stdin is needed for the interactive response and cannot carry the prompt")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	d := strings.TrimSpace(string(data))
	switch {
	case msg == "":
		return d, nil
	case d == "":
		return msg, nil
	default:
		return msg + "\n\n" + d, nil
	}
}

type clipboardCommands struct {
	Copy  string
	Paste string
}

// clipboardUtility returns the subprocess clipboard, filling unset commands
// with the OS defaults.
func clipboardUtility(cfg *internal.AppConfig) (*cb.Command, error) {
	cmds := clipboardCommands{
		Copy:  cfg.CopyCmd,
		Paste: cfg.PasteCmd,
	}
	copyCmd, pasteCmd := cb.DefaultCommands()
	if err := mergo.Merge(&cmds, clipboardCommands{Copy: copyCmd, Paste: pasteCmd}); err != nil {
		return nil, err
	}
	utility, err := cb.NewCommand(cmds.Copy, cmds.Paste)
	if err != nil {
		return nil, internal.NewUserInputError(err.Error())
	}
	return utility, nil
}

func newExecutor(cfg *internal.AppConfig) (*query.Executor, error) {
	utility, err := clipboardUtility(cfg)
	if err != nil {
		return nil, err
	}
	resolver := query.NewResolver(interactive.Config{
		Logger:    logger,
		In:        os.Stdin,
		Out:       os.Stdout,
		Clipboard: cb.NewClipboard(),
		Utility:   utility,
	})
	return query.NewExecutor(resolver, logger), nil
}

func execute(ctx context.Context, cfg *internal.AppConfig, prompt string) (*llm.QueryResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	executor, err := newExecutor(cfg)
	if err != nil {
		return nil, err
	}

	// the operator needs a quiet terminal
	if !query.IsInteractive(cfg.APIURL) && !logger.IsQuiet() && isatty.IsTerminal(os.Stderr.Fd()) {
		sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		sp.Suffix = " querying " + cfg.APIURL
		sp.Start()
		defer sp.Stop()
	}

	return executor.ExecuteQuery(ctx, cfg.APIURL, cfg.APIKey, prompt)
}
