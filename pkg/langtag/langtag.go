// Package langtag maps source file paths to the language identifier used
// on generated code blocks.
package langtag

import (
	"path/filepath"
	"strings"
)

// extTags maps lowercase file extensions to fence language tags.
var extTags = map[string]string{
	".py":    "python",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cxx":   "cpp",
	".cc":    "cpp",
	".hpp":   "hpp",
	".java":  "java",
	".js":    "javascript",
	".ts":    "typescript",
	".rs":    "rust",
	".go":    "go",
	".rb":    "ruby",
	".sh":    "bash",
	".bash":  "bash",
	".zsh":   "zsh",
	".yml":   "yaml",
	".yaml":  "yaml",
	".json":  "json",
	".toml":  "toml",
	".xml":   "xml",
	".html":  "html",
	".css":   "css",
	".sql":   "sql",
	".md":    "markdown",
	".cmake": "cmake",
	".mk":    "makefile",
}

// basenameTags maps well-known extensionless filenames to tags.
var basenameTags = map[string]string{
	"Makefile":       "makefile",
	"makefile":       "makefile",
	"GNUmakefile":    "makefile",
	"CMakeLists.txt": "cmake",
	"Dockerfile":     "dockerfile",
}

// Detect returns the language tag for a source file path, or "" when the
// path matches neither the basename nor the extension table. Unknown
// files degrade to an untagged block; there are no error conditions.
func Detect(path string) string {
	base := filepath.Base(path)
	if tag, ok := basenameTags[base]; ok {
		return tag
	}
	if base == "Kconfig" || strings.HasPrefix(base, "Kconfig.") {
		return "kconfig"
	}
	ext := strings.ToLower(filepath.Ext(path))
	return extTags[ext]
}
