package model

import (
	"bytes"
	"io"
	"strings"
)

// Body is the free-text content nested inside a contact. It may contain
// markup; renderers decide whether it is trusted, escaped, or sanitised.
type Body interface {
	Len() int
	WriteTo(w io.Writer) (int64, error)
}

// TextBody is a Body backed by a string.
type TextBody string

// Len returns the body length in bytes.
func (b TextBody) Len() int { return len(b) }

// WriteTo writes the body to w.
func (b TextBody) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(b))
	return int64(n), err
}

// BufferBody is a Body that is filled incrementally, typically while a page
// is being captured. WriteTo does not drain the buffer, so the body can be
// rendered more than once.
type BufferBody struct {
	buf bytes.Buffer
}

// Write appends to the body.
func (b *BufferBody) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// WriteString appends to the body.
func (b *BufferBody) WriteString(s string) (int, error) {
	return b.buf.WriteString(s)
}

// Len returns the number of buffered bytes.
func (b *BufferBody) Len() int {
	if b == nil {
		return 0
	}
	return b.buf.Len()
}

// WriteTo writes the buffered bytes to w.
func (b *BufferBody) WriteTo(w io.Writer) (int64, error) {
	if b == nil {
		return 0, nil
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// ReadBody drains body into a string. A nil body reads as "".
func ReadBody(body Body) (string, error) {
	if body == nil || body.Len() == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.Grow(body.Len())
	if _, err := body.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
