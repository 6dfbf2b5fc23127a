package table

import (
	"bytes"
	"context"

	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/render"
)

// Name is the registry key of the streaming table renderer.
const Name = "table"

// Renderer adapts WriteContactTable to render.Renderer.
type Renderer struct {
	options []Option
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a Renderer. Options apply to every render.
func New(options ...Option) *Renderer {
	return &Renderer{options: append([]Option(nil), options...)}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render buffers the fragment. When options.Element has no context of its own
// ctx is threaded through to the body renderer.
func (r *Renderer) Render(ctx context.Context, contact model.Contact, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	element := options.Element
	if element.Context == nil {
		element.Context = ctx
	}

	var buf bytes.Buffer
	if err := WriteContactTable(options.Indexer, &buf, element, options.StyleValue(), contact, r.options...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
