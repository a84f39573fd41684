package main

import (
	"github.com/qiangli/polyglot/internal"
	"github.com/qiangli/polyglot/internal/log"
)

// shared by all commands; configured in setup
var logger = log.Default()

func main() {
	if err := rootCmd.Execute(); err != nil {
		internal.Exit(logger, err)
	}
	logger.CloseTee()
}
