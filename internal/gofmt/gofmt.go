package gofmt

import (
	"fmt"

	"golang.org/x/tools/imports"
)

// Normalizer rewrites clipboard text into gofmt layout before scanning.
type Normalizer interface {
	Normalize(text string) (string, error)
}

type goimportsNormalizer struct {
	opts *imports.Options
}

// New returns a normalizer backed by goimports in format-only fragment mode.
// Text that does not parse as Go declarations is reported as an error.
func New() Normalizer {
	return &goimportsNormalizer{
		opts: &imports.Options{
			Fragment:   true,
			FormatOnly: true,
			Comments:   true,
			TabIndent:  true,
			TabWidth:   8,
		},
	}
}

func (n *goimportsNormalizer) Normalize(text string) (string, error) {
	out, err := imports.Process("clipboard.go", []byte(text), n.opts)
	if err != nil {
		return "", fmt.Errorf("gofmt: %w", err)
	}
	return string(out), nil
}
