package encoding

import (
	"io"
)

// Mode selects how a Writer escapes what passes through it.
type Mode int

const (
	// Raw passes content through untouched. Use only for trusted markup.
	Raw Mode = iota
	// Text escapes for element content.
	Text
	// Attribute escapes for a double-quoted attribute value.
	Attribute
)

// Writer escapes everything written through it before forwarding to the
// underlying writer. It lets collaborators that only know how to write plain
// text (labels, id resolvers) emit safely into a markup stream.
type Writer struct {
	enc  TextEncoder
	mode Mode
	out  io.Writer
}

// NewWriter wraps out. A nil encoder falls back to XHTML.
func NewWriter(enc TextEncoder, mode Mode, out io.Writer) *Writer {
	if enc == nil {
		enc = XHTML
	}
	return &Writer{enc: enc, mode: mode, out: out}
}

// Write escapes p and writes the result. On success it reports len(p) so
// callers such as io.Copy see their own byte count, not the escaped length.
func (w *Writer) Write(p []byte) (int, error) {
	if _, err := w.WriteString(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString escapes s and writes the result.
func (w *Writer) WriteString(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if _, err := io.WriteString(w.out, w.escape(s)); err != nil {
		return 0, err
	}
	return len(s), nil
}

func (w *Writer) escape(s string) string {
	switch w.mode {
	case Text:
		return w.enc.EscapeText(s)
	case Attribute:
		return w.enc.EscapeAttribute(s)
	default:
		return s
	}
}
