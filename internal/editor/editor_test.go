package editor

import "testing"

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		sel  Selection
		text string
		want string
	}{
		{name: "insert at cursor", doc: "ab", sel: Selection{Start: 1, End: 1}, text: "X", want: "aXb"},
		{name: "replace selection", doc: "hello world", sel: Selection{Start: 6, End: 11}, text: "there", want: "hello there"},
		{name: "reversed bounds", doc: "abcd", sel: Selection{Start: 3, End: 1}, text: "-", want: "a-d"},
		{name: "clamped past end", doc: "abc", sel: Selection{Start: 10, End: 20}, text: "!", want: "abc!"},
		{name: "negative start", doc: "abc", sel: Selection{Start: -5, End: 1}, text: ">", want: ">bc"},
		{name: "empty document", doc: "", sel: Selection{}, text: "class A {\n}\n", want: "class A {\n}\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.doc, tc.sel, tc.text); got != tc.want {
				t.Fatalf("Apply() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSelection_IsEmpty(t *testing.T) {
	if !(Selection{Start: 3, End: 3}).IsEmpty() {
		t.Fatal("cursor should be empty")
	}
	if (Selection{Start: 1, End: 3}).IsEmpty() {
		t.Fatal("range should not be empty")
	}
}

func TestLanguageIDFromPath(t *testing.T) {
	tests := map[string]string{
		"src/models.ts": LanguageTypeScript,
		"App.TSX":       LanguageTypeScriptReact,
		"lib/index.mts": LanguageTypeScript,
		"main.go":       LanguageGo,
		"README.md":     LanguagePlainText,
		"no-extension":  LanguagePlainText,
	}
	for path, want := range tests {
		if got := LanguageIDFromPath(path); got != want {
			t.Fatalf("LanguageIDFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
