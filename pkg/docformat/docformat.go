// Package docformat defines the document-dialect boundary for snippet
// synchronization. Each dialect supplies directive recognition, a
// passthrough rule for regions where directive syntax must be ignored,
// and code-block rendering.
package docformat

import (
	"path/filepath"
	"strings"
)

// Directive holds the three colon-delimited fields of a start directive,
// exactly as written. Literal colons inside a field appear as the "\:"
// escape; the path is unescaped by the consumer, the specs by the
// linespec parser.
type Directive struct {
	// Path names the source file, possibly relative to the document.
	Path string

	// StartSpec selects the first line of the snippet.
	StartSpec string

	// EndSpec selects the line the snippet runs up to (exclusive unless
	// suffixed with "+").
	EndSpec string
}

// Format is one document dialect. Implementations own per-document
// passthrough state, so a fresh instance is required for every document
// pass.
type Format interface {
	// Name identifies the dialect in logs and error messages.
	Name() string

	// MatchStart tests a whitespace-stripped line against the dialect's
	// start-directive syntax and returns the parsed fields on a match.
	MatchStart(stripped string) (Directive, bool)

	// MatchEnd tests a whitespace-stripped line against the dialect's
	// end-directive syntax.
	MatchEnd(stripped string) bool

	// Passthrough reports whether the raw line is part of a literal
	// region where directive matching must be skipped. It may mutate
	// the adapter's scan state.
	Passthrough(line string) bool

	// RenderBlock appends the dialect's code-block rendering of the
	// extracted lines, tagged with lang ("" means untagged).
	RenderBlock(b *strings.Builder, lang string, lines []string)
}

// fieldsPattern matches the three colon-delimited directive fields. A
// backslash escapes the following character, so "\:" does not split a
// field.
const fieldsPattern = `(?P<path>(?:[^:\\]|\\.)+?):(?P<start>(?:[^:\\]|\\.)+?):(?P<end>(?:[^:\\]|\\.)+?)`

// ForPath returns a fresh adapter for the dialect implied by the
// document's file name. Dotted name parts are scanned from the end, so
// "guide.rst.in" still selects RST. Unrecognized names default to
// Markdown.
func ForPath(path string) Format {
	parts := strings.Split(strings.ToLower(filepath.Base(path)), ".")
	for i := len(parts) - 1; i >= 0; i-- {
		switch parts[i] {
		case "rst":
			return NewRST()
		case "md", "markdown":
			return NewMarkdown()
		}
	}
	return NewMarkdown()
}

// UnescapePath rewrites the "\:" escape in a directive path to a literal
// colon, symmetric with the unescaping the linespec parser applies to
// pattern fields.
func UnescapePath(path string) string {
	return strings.ReplaceAll(path, `\:`, ":")
}
