package docformat

import (
	"regexp"
	"strings"
)

var (
	// <!-- code_snippet_start:path/to/file:START:END -->
	mdStartRe = regexp.MustCompile(`^<!--\s*code_snippet_start:` + fieldsPattern + `\s*-->`)
	mdEndRe   = regexp.MustCompile(`^<!--\s*code_snippet_end\s*-->`)

	// Three-or-more backticks or tildes open (and close) a literal fence.
	mdFenceRe = regexp.MustCompile("^(`{3,}|~{3,})")

	mdPathIdx  = mdStartRe.SubexpIndex("path")
	mdStartIdx = mdStartRe.SubexpIndex("start")
	mdEndIdx   = mdStartRe.SubexpIndex("end")
)

// Markdown recognizes HTML-comment directives and skips directive
// matching inside fenced code blocks.
type Markdown struct {
	inFence   bool
	fenceChar byte
}

// NewMarkdown returns a Markdown adapter with fresh passthrough state.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Name implements Format.
func (m *Markdown) Name() string { return "markdown" }

// MatchStart implements Format.
func (m *Markdown) MatchStart(stripped string) (Directive, bool) {
	groups := mdStartRe.FindStringSubmatch(stripped)
	if groups == nil {
		return Directive{}, false
	}
	return Directive{
		Path:      groups[mdPathIdx],
		StartSpec: groups[mdStartIdx],
		EndSpec:   groups[mdEndIdx],
	}, true
}

// MatchEnd implements Format.
func (m *Markdown) MatchEnd(stripped string) bool {
	return mdEndRe.MatchString(stripped)
}

// Passthrough implements Format. A fence line always passes through; the
// fence closes only on a line consisting solely of the character that
// opened it. Directive-looking lines inside the fence pass through
// verbatim.
func (m *Markdown) Passthrough(line string) bool {
	stripped := strings.TrimSpace(line)
	fence := mdFenceRe.FindString(stripped)
	if fence != "" {
		if !m.inFence {
			m.inFence = true
			m.fenceChar = fence[0]
		} else if stripped[0] == m.fenceChar &&
			strings.TrimRight(stripped, string(m.fenceChar)) == "" {
			m.inFence = false
		}
		return true
	}
	return m.inFence
}

// RenderBlock implements Format. The block is a fenced code block
// surrounded by blank lines, with a forced newline when the last
// extracted line lacks one.
func (m *Markdown) RenderBlock(b *strings.Builder, lang string, lines []string) {
	b.WriteString("\n```")
	b.WriteString(lang)
	b.WriteByte('\n')
	for _, line := range lines {
		b.WriteString(line)
	}
	if len(lines) > 0 && !strings.HasSuffix(lines[len(lines)-1], "\n") {
		b.WriteByte('\n')
	}
	b.WriteString("```\n\n")
}
