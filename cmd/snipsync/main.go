// Package main is the entry point for the snipsync CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/snipsync/internal/cli"
	"github.com/yaklabco/snipsync/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrChangesRequired and ErrSyncFailed only select the exit
		// code; their details were already reported.
		switch {
		case errors.Is(err, cli.ErrChangesRequired):
			return cli.ExitChangesRequired
		case errors.Is(err, cli.ErrSyncFailed):
			return cli.ExitError
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitError
	}

	return cli.ExitSuccess
}
