// Package main provides the fxcss CLI for generating and verifying
// JavaFX stylesheets.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the shared CLI logger. Verbose mode lowers it to debug level
// in loadConfig.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
