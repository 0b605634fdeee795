// Package extract shapes raw input into prose the analyzers can score.
// Markdown documents get their code and markup stripped so only
// natural-language text is judged; everything else passes through as-is.
package extract

import (
	"path/filepath"
	"strings"
)

// Prose returns the analyzable text of a document. The path decides the
// treatment; content is never modified for plain text.
func Prose(path string, content []byte) string {
	if isMarkdown(path) {
		return markdownProse(content)
	}
	return string(content)
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
