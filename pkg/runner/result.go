package runner

import "github.com/yaklabco/snipsync/pkg/diffutil"

// FileOutcome is the result of processing one document.
type FileOutcome struct {
	// Path is the absolute document path.
	Path string

	// Changed reports whether the regenerated content differed from
	// the document's current content.
	Changed bool

	// Written reports whether the document was rewritten on disk
	// (always false in check mode).
	Written bool

	// Diff is the unified diff against the current content. Populated
	// in check mode when Changed is true.
	Diff *diffutil.Diff

	// Error is the processing failure, if any. It includes the
	// document path.
	Error error
}

// Stats aggregates counts across a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesChanged    int
	FilesWritten    int
	FilesErrored    int
}

// Result collects the outcomes of a run in discovery order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

func (r *Result) accumulate(o FileOutcome) {
	r.Files = append(r.Files, o)
	r.Stats.FilesProcessed++
	if o.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if o.Changed {
		r.Stats.FilesChanged++
	}
	if o.Written {
		r.Stats.FilesWritten++
	}
}

// HasErrors reports whether any document failed to process.
func (r *Result) HasErrors() bool {
	return r.Stats.FilesErrored > 0
}

// ChangesRequired reports whether any document's content differed from
// its regenerated form. In check mode this drives the non-zero exit.
func (r *Result) ChangesRequired() bool {
	return r.Stats.FilesChanged > 0
}
