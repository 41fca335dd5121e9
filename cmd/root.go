package cmd

import (
	"fmt"
	"os"

	"scrabble-devserver/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd serves the working directory without opening a browser.
var RootCmd = &cobra.Command{
	Use:   "scrabble-devserver",
	Short: "Serve the web build with cross-origin isolation headers",
	Long: `Serves the current directory on http://localhost:8000.
Every response carries Cross-Origin-Opener-Policy, Cross-Origin-Embedder-Policy
and a no-store Cache-Control header so the WebAssembly build can use
SharedArrayBuffer and always picks up fresh files.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd, false)
	},
}

// Execute runs the CLI and exits 1 on failure, after reporting the error on
// stderr.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError logs err through a console logger, falling back to plain stderr
// if the logger cannot be built.
func reportError(err error) {
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
}
