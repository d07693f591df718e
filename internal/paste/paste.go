package paste

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/seitarof/gs2tc/internal/editor"
	"github.com/seitarof/gs2tc/internal/generator"
	"github.com/seitarof/gs2tc/internal/gofmt"
	"github.com/seitarof/gs2tc/internal/logger"
	"github.com/seitarof/gs2tc/internal/parser"
)

// Request is one paste action: the clipboard text and the language of the target document.
type Request struct {
	LanguageID string
	Text       string
}

// Result always carries text that is safe to paste. When Converted is false
// Text is the original clipboard text; Err says why, if anything failed.
type Result struct {
	Text      string
	Converted bool
	Err       error
}

// Transformer turns clipboard text into the text to paste.
type Transformer interface {
	Transform(ctx context.Context, req Request) Result
}

// Option configures a Transformer.
type Option func(*transformerImpl)

// WithNormalizer runs n over the clipboard text before scanning.
// Text n rejects is scanned as is.
func WithNormalizer(n gofmt.Normalizer) Option {
	return func(t *transformerImpl) {
		t.normalizer = n
	}
}

type transformerImpl struct {
	parser     parser.Parser
	generator  generator.Generator
	normalizer gofmt.Normalizer
}

// New creates a paste transformer.
func New(p parser.Parser, g generator.Generator, opts ...Option) Transformer {
	t := &transformerImpl{parser: p, generator: g}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsTypeScript reports whether languageID names a TypeScript document.
// Surrounding space and letter case are ignored; "typescriptreact" is not TypeScript.
func IsTypeScript(languageID string) bool {
	return strings.EqualFold(strings.TrimSpace(languageID), editor.LanguageTypeScript)
}

func (t *transformerImpl) Transform(ctx context.Context, req Request) (res Result) {
	log := logger.FromContext(ctx)
	res = Result{Text: req.Text}

	if !IsTypeScript(req.LanguageID) {
		log.Debug("not a typescript document, pasting unchanged", "language", req.LanguageID)
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{Text: req.Text, Err: errors.Newf("transform panicked: %v", r)}
			log.Debug("transform failed, pasting unchanged", "error", res.Err)
		}
	}()

	out, converted, err := t.convert(ctx, req.Text)
	if err != nil {
		log.Debug("transform failed, pasting unchanged", "error", err)
		return Result{Text: req.Text, Err: err}
	}
	if !converted {
		log.Debug("no go structs found, pasting unchanged")
		return res
	}
	return Result{Text: out, Converted: true}
}

func (t *transformerImpl) convert(ctx context.Context, text string) (string, bool, error) {
	log := logger.FromContext(ctx)

	src := text
	if t.normalizer != nil && text != "" {
		formatted, err := t.normalizer.Normalize(text)
		if err != nil {
			log.Debug("gofmt skipped", "error", err)
		} else {
			src = formatted
		}
	}

	defs := t.parser.Scan(src)
	if len(defs) == 0 {
		return "", false, nil
	}
	log.Debug("scanned structs", "count", len(defs))

	out, err := t.generator.Generate(defs)
	if err != nil {
		return "", false, errors.Wrap(err, "generate classes")
	}
	return out, true, nil
}
