package internal

import (
	"os"
	"path/filepath"

	"github.com/qiangli/polyglot/internal/util"
)

var Version = "0.1.0"

const (
	// read the prompt from stdin
	StdinRedirect = "-"

	DefaultAPIURL = "http://local+interactive"
	DefaultAPIKey = "API_KEY"
)

// Output formats.
const (
	FormatRaw      = "raw"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

var Formats = []string{FormatRaw, FormatMarkdown, FormatJSON, FormatYAML}

type AppConfig struct {
	APIURL string
	APIKey string

	// clipboard utility command lines
	CopyCmd  string
	PasteCmd string

	// --message takes precedence over args
	Message string
	Args    []string
	Stdin   bool

	// review
	Masks      []string
	Extensions []string

	// Output format: raw, markdown, json or yaml
	Format string
	// Save output to file
	Output string
}

// DefaultConfigFile is ~/.polyglot/config.yaml unless POLYGLOT_CONFIG is set.
func DefaultConfigFile() string {
	if v := os.Getenv("POLYGLOT_CONFIG"); v != "" {
		return v
	}
	home := util.HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".polyglot", "config.yaml")
}
