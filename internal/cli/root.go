// Package cli provides the Cobra command structure for snipsync.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/snipsync/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root snipsync command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "snipsync",
		Short: "Keep documentation code blocks synchronized with source files",
		Long: `snipsync keeps documentation code blocks synchronized with live source
files. Mark a region in a Markdown or reStructuredText document with
start/end directives naming a source file and a line range, and snipsync
re-extracts the referenced lines and rewrites the code block between the
directives, leaving the rest of the document untouched.

Directive syntax (Markdown):

  <!-- code_snippet_start:path/to/file.c:10:/^}/+ -->
  <!-- code_snippet_end -->

Line ranges are given by line number, /glob/ search, or r/regex/ search;
a trailing + makes the end line inclusive.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newSyncCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Keep usage errors on stderr even with SilenceErrors set.
	rootCmd.SetErr(os.Stderr)

	return rootCmd
}
