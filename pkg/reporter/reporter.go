// Package reporter renders synchronization outcomes for the CLI.
//
// Progress, diffs, and errors all go to the error writer so that stdout
// stays clean for scripting, matching the behavior documentation tools
// are expected to have in CI pipelines.
package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/snipsync/internal/ui/pretty"
	"github.com/yaklabco/snipsync/pkg/runner"
)

// Options controls reporter output.
type Options struct {
	// ErrorWriter receives all output. Defaults to os.Stderr.
	ErrorWriter io.Writer

	// Color is the color mode: auto, always, never.
	Color string

	// ShowSummary appends an aggregate line after per-file output.
	ShowSummary bool

	// WorkingDir shortens absolute paths for display.
	WorkingDir string
}

// Reporter writes per-document outcomes and a run summary.
type Reporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// New creates a Reporter.
func New(opts Options) *Reporter {
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = os.Stderr
	}
	return &Reporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		out:    opts.ErrorWriter,
	}
}

// Report renders the outcomes of a run. In check mode changed documents
// are reported with their unified diff; in update mode rewritten
// documents are announced.
func (r *Reporter) Report(result *runner.Result, check bool) {
	if result == nil {
		return
	}

	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			fmt.Fprintf(r.out, "%s %v\n", r.styles.Error.Render("error:"), file.Error)
		case check && file.Changed:
			fmt.Fprintf(r.out, "Changes required in %s:\n",
				r.styles.FilePath.Render(r.displayPath(file.Path)))
			r.writeDiff(file)
		case file.Written:
			fmt.Fprintf(r.out, "Updating %s...\n",
				r.styles.FilePath.Render(r.displayPath(file.Path)))
		}
	}

	if r.opts.ShowSummary {
		r.writeSummary(result, check)
	}
}

// writeDiff renders one document's unified diff with per-line styling.
func (r *Reporter) writeDiff(file runner.FileOutcome) {
	if file.Diff == nil {
		return
	}
	for _, line := range strings.Split(file.Diff.String(), "\n") {
		if line == "" {
			continue
		}
		r.writeDiffLine(line)
	}
	fmt.Fprintln(r.out)
}

func (r *Reporter) writeDiffLine(line string) {
	var styled string
	switch {
	case strings.HasPrefix(line, "@@"):
		styled = r.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		styled = r.styles.DiffHeader.Render(line)
	case strings.HasPrefix(line, "+"):
		styled = r.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		styled = r.styles.DiffRemove.Render(line)
	default:
		styled = r.styles.DiffContext.Render(line)
	}
	fmt.Fprintln(r.out, styled)
}

// writeSummary writes one aggregate line for the whole run.
func (r *Reporter) writeSummary(result *runner.Result, check bool) {
	stats := result.Stats

	if stats.FilesErrored > 0 || stats.FilesChanged > 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render(strings.Repeat("─", r.separatorWidth())))
	}

	switch {
	case stats.FilesErrored > 0:
		fmt.Fprintln(r.out, r.styles.Failure.Render(
			fmt.Sprintf("%d of %d %s failed",
				stats.FilesErrored, stats.FilesProcessed, docWord(stats.FilesProcessed))))
	case check && stats.FilesChanged > 0:
		fmt.Fprintln(r.out, r.styles.Failure.Render(
			fmt.Sprintf("%d of %d %s out of date",
				stats.FilesChanged, stats.FilesProcessed, docWord(stats.FilesProcessed))))
	case !check && stats.FilesWritten > 0:
		fmt.Fprintln(r.out, r.styles.Success.Render(
			fmt.Sprintf("%d %s updated", stats.FilesWritten, docWord(stats.FilesWritten))))
	default:
		fmt.Fprintln(r.out, r.styles.Dim.Render(
			fmt.Sprintf("%d %s up to date", stats.FilesProcessed, docWord(stats.FilesProcessed))))
	}
}

// separatorWidth is the terminal width capped at 80, or 60 when the
// writer is not a terminal.
func (r *Reporter) separatorWidth() int {
	if f, ok := r.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return min(w, 80)
		}
	}
	return 60
}

func docWord(n int) string {
	if n == 1 {
		return "document"
	}
	return "documents"
}

// displayPath shortens an absolute path relative to the working
// directory when that keeps it readable.
func (r *Reporter) displayPath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	base := r.opts.WorkingDir
	if base == "" {
		var err error
		base, err = os.Getwd()
		if err != nil {
			return path
		}
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.Count(rel, "..") > 2 {
		return path
	}
	return rel
}
