// Package hostio reads the text to paste and writes the pasted result.
package hostio

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
)

// StdStream selects stdin or stdout in place of a file path.
const StdStream = "-"

// Reader supplies the raw text to transform.
type Reader interface {
	ReadText(ctx context.Context) (string, error)
}

// Writer consumes the text to paste.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

type clipboardReader struct{}

type clipboardWriter struct{}

type fileReader struct {
	path string
}

type fileWriter struct {
	path string
}

type streamReader struct {
	r io.Reader
}

type streamWriter struct {
	w io.Writer
}

// NewClipboardReader reads the system clipboard.
func NewClipboardReader() Reader {
	return &clipboardReader{}
}

// NewClipboardWriter replaces the system clipboard contents.
func NewClipboardWriter() Writer {
	return &clipboardWriter{}
}

// NewFileReader reads path, or stdin when path is StdStream.
func NewFileReader(path string) Reader {
	if path == StdStream {
		return NewStreamReader(os.Stdin)
	}
	return &fileReader{path: path}
}

// NewFileWriter writes path, or stdout when path is StdStream.
func NewFileWriter(path string) Writer {
	if path == StdStream {
		return NewStreamWriter(os.Stdout)
	}
	return &fileWriter{path: path}
}

// NewStreamReader reads everything from r.
func NewStreamReader(r io.Reader) Reader {
	return &streamReader{r: r}
}

// NewStreamWriter writes to w.
func NewStreamWriter(w io.Writer) Writer {
	return &streamWriter{w: w}
}

func (c *clipboardReader) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}
	if clipboard.Unsupported {
		return "", errors.New("clipboard is not supported on this system")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, "read clipboard")
	}
	return text, nil
}

func (c *clipboardWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "write clipboard")
	}
	return nil
}

func (f *fileReader) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", f.path)
	}
	return string(b), nil
}

func (f *fileWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(f.path, []byte(text), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", f.path)
	}
	return nil
}

func (s *streamReader) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}
	b, err := io.ReadAll(s.r)
	if err != nil {
		return "", errors.Wrap(err, "read stream")
	}
	return string(b), nil
}

func (s *streamWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		return errors.Wrap(err, "write stream")
	}
	return nil
}
