// Package rewrite drives a single forward pass over a document,
// regenerating the code blocks between snippet directives from the
// referenced source files.
package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/snipsync/internal/logging"
	"github.com/yaklabco/snipsync/pkg/docformat"
	"github.com/yaklabco/snipsync/pkg/langtag"
	"github.com/yaklabco/snipsync/pkg/linespec"
)

// Rewriter performs one document pass. It owns the output buffer and the
// in-block scan state; the adapter owns the passthrough state. A Rewriter
// is created fresh per document and is not safe for concurrent use.
type Rewriter struct {
	// GuessLang enables content-based language guessing for source
	// files the fixed tag tables do not know.
	GuessLang bool

	format  docformat.Format
	docPath string
	docDir  string
}

// New returns a Rewriter for one document. The document's own directory
// is the base for resolving relative snippet source paths.
func New(format docformat.Format, docPath string) *Rewriter {
	dir := "."
	if abs, err := filepath.Abs(docPath); err == nil {
		dir = filepath.Dir(abs)
	}
	return &Rewriter{
		format:  format,
		docPath: docPath,
		docDir:  dir,
	}
}

// Rewrite returns the document content with every snippet block
// regenerated. Documents containing no start directive come back
// byte-for-byte unchanged. Any resolution or source-read failure aborts
// the whole document; no partial output is returned.
func (r *Rewriter) Rewrite(content []byte) ([]byte, error) {
	var out strings.Builder
	out.Grow(len(content))

	inBlock := false

	for _, line := range splitAfterLines(string(content)) {
		if inBlock {
			// Stale lines between the directives are dropped; only the
			// end directive survives.
			if r.format.MatchEnd(strings.TrimSpace(line)) {
				out.WriteString(line)
				inBlock = false
			}
			continue
		}

		out.WriteString(line)

		if r.format.Passthrough(line) {
			continue
		}

		directive, ok := r.format.MatchStart(strings.TrimSpace(line))
		if !ok {
			continue
		}
		if err := r.renderSnippet(&out, directive); err != nil {
			return nil, err
		}
		inBlock = true
	}

	if inBlock {
		// Block ran to end of file: trailing document lines were
		// consumed. Preserved permissive behavior.
		logging.Default().Debug("snippet block not terminated before end of document",
			logging.FieldPath, r.docPath)
	}

	return []byte(out.String()), nil
}

// renderSnippet loads the directive's source file, resolves the line
// range, and appends the rendered block.
func (r *Rewriter) renderSnippet(out *strings.Builder, d docformat.Directive) error {
	srcPath := r.resolveSourcePath(d.Path)

	src, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read snippet source: %w", err)
	}
	srcLines := splitAfterLines(string(src))

	startSpec, err := linespec.Parse(d.StartSpec)
	if err != nil {
		return fmt.Errorf("start spec of %s: %w", srcPath, err)
	}
	startLine, err := startSpec.Resolve(srcLines, 0)
	if err != nil {
		return fmt.Errorf("start spec of %s: %w", srcPath, err)
	}

	endSpec, err := linespec.ParseEnd(d.EndSpec)
	if err != nil {
		return fmt.Errorf("end spec of %s: %w", srcPath, err)
	}
	// Anchor the end search at the start line so an end pattern can
	// never match before or at the snippet's first line.
	endLine, err := endSpec.Resolve(srcLines, startLine)
	if err != nil {
		return fmt.Errorf("end spec of %s: %w", srcPath, err)
	}

	snippet := sliceLines(srcLines, startLine, endLine, endSpec.Inclusive())

	lang := langtag.Detect(srcPath)
	if lang == "" && r.GuessLang {
		lang = langtag.Guess(srcPath, src)
	}

	r.format.RenderBlock(out, lang, snippet)
	return nil
}

// resolveSourcePath unescapes the directive path and resolves it against
// the document's directory unless it is already absolute.
func (r *Rewriter) resolveSourcePath(path string) string {
	path = docformat.UnescapePath(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(r.docDir, path))
}

// sliceLines extracts [start, end) in 1-based terms, or [start, end] when
// inclusive. Out-of-range boundaries clamp to the file rather than
// failing, so oversized numeric specs yield empty or truncated blocks.
func sliceLines(lines []string, start, end int, inclusive bool) []string {
	lo := start - 1
	hi := end - 1
	if inclusive {
		hi = end
	}

	if lo < 0 {
		lo = 0
	}
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo >= len(lines) || hi <= lo {
		return nil
	}
	return lines[lo:hi]
}

// splitAfterLines splits text into lines, each retaining its trailing
// newline (the final line may lack one).
func splitAfterLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
