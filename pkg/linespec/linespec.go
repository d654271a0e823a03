// Package linespec parses and resolves line specifications.
//
// A line specification picks a single line in a source file and is one of:
//
//	42          an absolute 1-based line number
//	/pattern/   a glob-style containment match (implicit leading/trailing *)
//	r/pattern/  a regular-expression search
//
// End specifications may carry a trailing "+" meaning the matched line is
// included in the extracted range. Literal colons inside a pattern are
// written as "\:" and unescaped before compilation.
package linespec

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
)

// Sentinel errors returned by Parse and Resolve. Callers match them with
// errors.Is; the wrapped message carries the offending spec text.
var (
	// ErrInvalidSpec indicates a spec string that is neither a line
	// number, a /glob/ pattern, nor an r/regex/ pattern.
	ErrInvalidSpec = errors.New("invalid line specification")

	// ErrInvalidPattern indicates a pattern that failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNotFound indicates a pattern with no matching line after the
	// search anchor.
	ErrNotFound = errors.New("pattern not found")
)

// Kind identifies the form of a parsed specification.
type Kind int

const (
	// KindLine is an absolute 1-based line number.
	KindLine Kind = iota

	// KindGlob is a glob-style containment pattern.
	KindGlob

	// KindRegex is a regular-expression search pattern.
	KindRegex
)

// Spec is an immutable, parsed line specification. The zero value is not
// valid; use Parse or ParseEnd.
type Spec struct {
	raw       string
	kind      Kind
	line      int
	globPat   glob.Glob
	regexPat  *regexp.Regexp
	inclusive bool
}

// Parse parses a start specification.
func Parse(raw string) (Spec, error) {
	// Line number first.
	if n, err := strconv.Atoi(raw); err == nil {
		return Spec{raw: raw, kind: KindLine, line: n}, nil
	}

	// r/regex/ form.
	if strings.HasPrefix(raw, "r/") && strings.HasSuffix(raw, "/") && len(raw) > 2 {
		pattern := unescapeColons(raw[2 : len(raw)-1])
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: compile regex in %q: %v", ErrInvalidPattern, raw, err)
		}
		return Spec{raw: raw, kind: KindRegex, regexPat: re}, nil
	}

	// /glob/ form.
	if strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") && len(raw) > 1 {
		pattern := unescapeColons(raw[1 : len(raw)-1])
		// Containment semantics: the pattern may match anywhere in the line.
		g, err := glob.Compile("*" + pattern + "*")
		if err != nil {
			return Spec{}, fmt.Errorf("%w: compile glob in %q: %v", ErrInvalidPattern, raw, err)
		}
		return Spec{raw: raw, kind: KindGlob, globPat: g}, nil
	}

	return Spec{}, fmt.Errorf(
		"%w: %q (expected a line number, /glob/ pattern, or r/regex/ pattern)",
		ErrInvalidSpec, raw)
}

// ParseEnd parses an end specification. A trailing "+" marks the spec as
// inclusive and is stripped before parsing.
func ParseEnd(raw string) (Spec, error) {
	inclusive := strings.HasSuffix(raw, "+")
	spec, err := Parse(strings.TrimSuffix(raw, "+"))
	if err != nil {
		return Spec{}, err
	}
	spec.inclusive = inclusive
	return spec, nil
}

// Kind returns the form of the specification.
func (s Spec) Kind() Kind { return s.kind }

// Inclusive reports whether the matched line itself is part of the
// extracted range. Only end specifications can be inclusive.
func (s Spec) Inclusive() bool { return s.inclusive }

// String returns the original spec text.
func (s Spec) String() string { return s.raw }

// Resolve returns the 1-based line number the spec picks within lines.
//
// For pattern specs the search starts strictly after the 1-based line
// number startAfter (pass 0 to search the whole file). Line numbers are
// returned as-is with no bounds validation; out-of-range values surface
// later as empty or truncated slices.
func (s Spec) Resolve(lines []string, startAfter int) (int, error) {
	if s.kind == KindLine {
		return s.line, nil
	}

	for i, line := range lines {
		if i < startAfter {
			continue
		}
		if s.matchLine(trimEOL(line)) {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: %s has no match in file", ErrNotFound, s.raw)
}

// matchLine reports whether a single line (without its line ending)
// satisfies the pattern.
func (s Spec) matchLine(line string) bool {
	switch s.kind {
	case KindGlob:
		return s.globPat.Match(line)
	case KindRegex:
		return s.regexPat.MatchString(line)
	default:
		return false
	}
}

// unescapeColons rewrites the "\:" escape to a literal colon. The escape
// exists so colons inside patterns survive the colon-delimited directive
// grammar.
func unescapeColons(pattern string) string {
	return strings.ReplaceAll(pattern, `\:`, ":")
}

// trimEOL strips a trailing LF or CRLF. Pattern matching ignores line
// endings so that anchors like $ behave the same on newline-terminated
// lines as they do in other tools.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
