package editor

import (
	"path/filepath"
	"strings"
)

// Language identifiers understood by the paste trigger.
const (
	LanguageTypeScript      = "typescript"
	LanguageTypeScriptReact = "typescriptreact"
	LanguageGo              = "go"
	LanguagePlainText       = "plaintext"
)

// Selection is a byte range [Start, End) in a document.
type Selection struct {
	Start int
	End   int
}

// IsEmpty reports whether the selection is a bare cursor.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Normalize orders the bounds and clamps them to [0, size].
func (s Selection) Normalize(size int) Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	s.Start = clamp(s.Start, 0, size)
	s.End = clamp(s.End, 0, size)
	return s
}

// Apply deletes the selected text, if any, and inserts text at the selection start.
func Apply(doc string, sel Selection, text string) string {
	sel = sel.Normalize(len(doc))
	var b strings.Builder
	b.Grow(len(doc) - (sel.End - sel.Start) + len(text))
	b.WriteString(doc[:sel.Start])
	b.WriteString(text)
	b.WriteString(doc[sel.End:])
	return b.String()
}

// LanguageIDFromPath guesses a document language from its file extension.
func LanguageIDFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return LanguageTypeScript
	case ".tsx":
		return LanguageTypeScriptReact
	case ".go":
		return LanguageGo
	default:
		return LanguagePlainText
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
