package main

const rootUsageTemplate = `Polyglot LLM query tool

Usage:
  polyglot [OPTIONS] PROMPT...
  polyglot [OPTIONS] COMMAND{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Options:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

Endpoints:
  http://local+interactive                   copy/paste through the clipboard or terminal
  https://api.openai.com                     OpenAI chat completions     (OPENAI_API_KEY)
  https://generativelanguage.googleapis.com  Gemini generateContent      (GEMINI_API_KEY)
  https://api.anthropic.com                  Anthropic text completion   (ANTHROPIC_API_KEY)
`

const usageExample = `
polyglot what is a goroutine
polyglot --api-url https://api.openai.com --api-key sk-... explain this error
git diff | polyglot --api-url https://api.anthropic.com review this diff -
polyglot review --ext .go --ext .kt 'src-*'
`
