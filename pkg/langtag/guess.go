package langtag

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// guessCandidates bounds the classifier search to languages that are
// plausible in documentation snippets.
var guessCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "TOML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Guess returns a language tag for a file the fixed tables do not know,
// using go-enry on the file name and content. It returns "" when no
// confident guess can be made, so callers fall back to an untagged block.
//
// Guess never overrides the fixed tables: Detect is consulted first and
// its answer wins.
func Guess(path string, content []byte) string {
	if tag := Detect(path); tag != "" {
		return tag
	}
	if len(content) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return normalizeTag(lang)
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalizeTag(lang)
	}
	if lang, safe := enry.GetLanguageByClassifier(content, guessCandidates); safe && lang != "" {
		return normalizeTag(lang)
	}

	return ""
}

// normalizeTag converts go-enry language names to fence tags.
func normalizeTag(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	}
	return strings.ToLower(lang)
}
