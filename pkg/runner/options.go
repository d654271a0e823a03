// Package runner provides multi-document synchronization orchestration.
package runner

// Options controls a synchronization run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// If empty, the working directory is processed. Explicitly named
	// files are always processed regardless of extension; the Markdown
	// adapter is the fallback for unrecognized names.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the set of document extensions (lowercase, with
	// leading dot) picked up during directory walks.
	Extensions []string

	// IncludeGlobs restricts directory walks to matching paths,
	// relative to WorkingDir. Empty means everything matching
	// Extensions.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers. Zero or
	// negative means one worker per CPU.
	Jobs int

	// Check computes diffs without modifying any document.
	Check bool

	// GuessLang enables content-based language guessing for source
	// files outside the fixed tag tables.
	GuessLang bool
}

// DefaultExtensions returns the document extensions processed by
// default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".rst"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
