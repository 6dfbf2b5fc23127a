// Package body renders the free-text body nested inside a contact. The body
// may already hold trusted markup from the page pipeline, plain text typed by
// an editor, or user-supplied HTML/Markdown that must be sanitised first; each
// case has its own BodyRenderer.
package body

import (
	"io"

	"github.com/goliatone/go-contact/pkg/encoding"
	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/render"
)

// BodyRenderer streams a contact's body into out.
type BodyRenderer interface {
	RenderBody(ctx render.ElementContext, contact model.Contact, out io.Writer) error
}

// Func adapts a function to BodyRenderer.
type Func func(ctx render.ElementContext, contact model.Contact, out io.Writer) error

// RenderBody calls f.
func (f Func) RenderBody(ctx render.ElementContext, contact model.Contact, out io.Writer) error {
	return f(ctx, contact, out)
}

// Trusted writes the body verbatim. It is the default: bodies produced by the
// page pipeline are already encoded markup.
var Trusted BodyRenderer = Func(func(_ render.ElementContext, contact model.Contact, out io.Writer) error {
	if contact.Body == nil {
		return nil
	}
	_, err := contact.Body.WriteTo(out)
	return err
})

// Text escapes the body as element content.
func Text(enc encoding.TextEncoder) BodyRenderer {
	return Func(func(_ render.ElementContext, contact model.Contact, out io.Writer) error {
		if contact.Body == nil {
			return nil
		}
		_, err := contact.Body.WriteTo(encoding.NewWriter(enc, encoding.Text, out))
		return err
	})
}

// Named resolves a body renderer by the names the CLI and loader accept.
func Named(name string) (BodyRenderer, bool) {
	switch name {
	case "", "trusted":
		return Trusted, true
	case "text":
		return Text(nil), true
	case "sanitized", "sanitised", "html":
		return Sanitized(), true
	case "markdown", "md":
		return Markdown(), true
	default:
		return nil, false
	}
}
