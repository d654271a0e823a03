package docformat

import (
	"regexp"
	"strings"
)

var (
	// .. code_snippet_start:path/to/file:START:END
	rstStartRe = regexp.MustCompile(`^\.\.\s+code_snippet_start:` + fieldsPattern + `\s*$`)
	rstEndRe   = regexp.MustCompile(`^\.\.\s+code_snippet_end\s*$`)

	rstPathIdx  = rstStartRe.SubexpIndex("path")
	rstStartIdx = rstStartRe.SubexpIndex("start")
	rstEndIdx   = rstStartRe.SubexpIndex("end")
)

// RST recognizes comment-directive snippet markers. It has no literal
// passthrough regions, so directive matching is always active.
type RST struct{}

// NewRST returns an RST adapter.
func NewRST() *RST {
	return &RST{}
}

// Name implements Format.
func (r *RST) Name() string { return "rst" }

// MatchStart implements Format. Unlike Markdown, the pattern is anchored
// to the end of the stripped line; trailing characters are not permitted.
func (r *RST) MatchStart(stripped string) (Directive, bool) {
	groups := rstStartRe.FindStringSubmatch(stripped)
	if groups == nil {
		return Directive{}, false
	}
	return Directive{
		Path:      groups[rstPathIdx],
		StartSpec: groups[rstStartIdx],
		EndSpec:   groups[rstEndIdx],
	}, true
}

// MatchEnd implements Format.
func (r *RST) MatchEnd(stripped string) bool {
	return rstEndRe.MatchString(stripped)
}

// Passthrough implements Format. RST has no fence ambiguity in this
// design.
func (r *RST) Passthrough(string) bool { return false }

// RenderBlock implements Format. Extracted lines are indented by three
// spaces under a code-block directive; blank lines are preserved without
// indentation.
func (r *RST) RenderBlock(b *strings.Builder, lang string, lines []string) {
	b.WriteString("\n.. code-block:: ")
	b.WriteString(lang)
	b.WriteString("\n\n")
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString("   ")
			b.WriteString(line)
		} else {
			b.WriteByte('\n')
		}
	}
	if len(lines) > 0 && !strings.HasSuffix(lines[len(lines)-1], "\n") {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}
