package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/snipsync/internal/configloader"
	"github.com/yaklabco/snipsync/internal/logging"
	"github.com/yaklabco/snipsync/pkg/reporter"
	"github.com/yaklabco/snipsync/pkg/runner"
)

// ErrChangesRequired is returned by check mode when any document is out
// of date. It exists only to select the exit code and is never logged.
var ErrChangesRequired = errors.New("changes required")

// ErrSyncFailed is returned when one or more documents failed to
// process; the per-document errors have already been reported.
var ErrSyncFailed = errors.New("one or more documents failed")

type syncFlags struct {
	check      bool
	jobs       int
	ignore     []string
	include    []string
	extensions []string
	guessLang  bool
}

func newSyncCommand() *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync [paths...]",
		Short: "Regenerate snippet blocks in documentation files",
		Long: `Regenerate the code blocks between snippet directives from the
referenced source files.

By default, processes all .md, .markdown, and .rst files in the current
directory and subdirectories. Specify paths to process specific files or
directories; explicitly named files are processed regardless of
extension, falling back to the Markdown dialect.

Examples:
  snipsync sync                  # Update documents under the current directory
  snipsync sync docs/            # Update the docs directory
  snipsync sync README.md        # Update a single file
  snipsync sync --check          # Report stale documents without writing
  snipsync sync --ignore 'vendor/**'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.check, "check", false,
		"report documents that need updating without modifying them")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "glob patterns to include")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"document extensions picked up during directory walks")
	cmd.Flags().BoolVar(&flags.guessLang, "guess-lang", false,
		"guess the language of unrecognized source files from their content")

	return cmd
}

func runSync(cmd *cobra.Command, args []string, flags *syncFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	cfg := loadResult.Config
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	// CLI flags override the config file, but only when explicitly set.
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("include") {
		cfg.Include = flags.include
	}
	if cmd.Flags().Changed("extensions") {
		cfg.Extensions = flags.extensions
	}
	if cmd.Flags().Changed("guess-lang") {
		cfg.GuessLang = flags.guessLang
	}

	opts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		IncludeGlobs: cfg.Include,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Check:        flags.check,
		GuessLang:    cfg.GuessLang,
	}

	logger.Debug("starting sync run",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
		logging.FieldCheck, opts.Check,
		logging.FieldGuessLang, opts.GuessLang,
	)

	result, err := runner.New().Run(ctx, opts)
	if err != nil {
		return errors.Join(errors.New("sync run failed"), err)
	}

	logger.Debug("sync run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep := reporter.New(reporter.Options{
		ErrorWriter: cmd.ErrOrStderr(),
		Color:       colorMode,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	rep.Report(result, flags.check)

	if result.HasErrors() {
		return ErrSyncFailed
	}
	if flags.check && result.ChangesRequired() {
		return ErrChangesRequired
	}
	return nil
}
