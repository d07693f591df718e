package cli

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/seitarof/gs2tc/internal/editor"
	"github.com/seitarof/gs2tc/internal/hostio"
	"github.com/seitarof/gs2tc/internal/logger"
	"github.com/seitarof/gs2tc/internal/paste"
)

// Runner performs one paste: read, transform, write.
type Runner interface {
	Run(ctx context.Context, cfg *Config) error
}

type runnerImpl struct {
	transformer paste.Transformer
	source      hostio.Reader
	sink        hostio.Writer
}

// NewRunner creates a default runner implementation.
func NewRunner(t paste.Transformer, source hostio.Reader, sink hostio.Writer) Runner {
	return &runnerImpl{
		transformer: t,
		source:      source,
		sink:        sink,
	}
}

// NewSource picks the reader for cfg: a file or stdin when --in is set, the clipboard otherwise.
func NewSource(cfg *Config) hostio.Reader {
	if cfg.Input != "" {
		return hostio.NewFileReader(cfg.Input)
	}
	return hostio.NewClipboardReader()
}

// NewSink picks the writer for cfg: the target document, --out, or the clipboard.
func NewSink(cfg *Config) hostio.Writer {
	if cfg.Target != "" {
		return NewSelectionWriter(
			hostio.NewFileReader(cfg.Target),
			hostio.NewFileWriter(cfg.Target),
			cfg.Selection,
		)
	}
	if cfg.Output != "" {
		return hostio.NewFileWriter(cfg.Output)
	}
	return hostio.NewClipboardWriter()
}

// Run reads the clipboard text to completion before transforming it.
// Transform failures are not errors: the original text is pasted instead.
func (r *runnerImpl) Run(ctx context.Context, cfg *Config) error {
	log := logger.FromContext(ctx)

	text, err := r.source.ReadText(ctx)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	lang := cfg.LanguageID()
	res := r.transformer.Transform(ctx, paste.Request{LanguageID: lang, Text: text})
	if res.Err != nil {
		log.Warn("conversion failed, pasting original text", "error", res.Err)
	}
	log.Info("paste", "language", lang, "converted", res.Converted, "bytes", len(res.Text))

	if err := r.sink.WriteText(ctx, res.Text); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

type selectionWriter struct {
	doc       hostio.Reader
	out       hostio.Writer
	selection func(docLen int) editor.Selection
}

// NewSelectionWriter pastes into the document read from doc, replacing the
// selection computed for its length, and writes the edited document to out.
func NewSelectionWriter(doc hostio.Reader, out hostio.Writer, selection func(docLen int) editor.Selection) hostio.Writer {
	return &selectionWriter{doc: doc, out: out, selection: selection}
}

func (w *selectionWriter) WriteText(ctx context.Context, text string) error {
	current, err := w.doc.ReadText(ctx)
	if err != nil {
		return errors.Wrap(err, "read target")
	}
	edited := editor.Apply(current, w.selection(len(current)), text)
	return w.out.WriteText(ctx, edited)
}
