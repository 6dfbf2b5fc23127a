package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contact/pkg/pageindex"
)

// RenderOptions describe per-request data renderers use to place a contact
// inside the surrounding page without touching the contact itself.
type RenderOptions struct {
	// Style is written to the table's inline style attribute. It accepts any
	// value encoding.Coerce understands; nil omits the attribute.
	Style any
	// Theme supplies CSS variables used as the inline style when Style is nil.
	Theme *theme.RendererConfig
	// Indexer resolves the table's DOM id when several pages are combined.
	Indexer pageindex.PageIndexer
	// Element is handed to the body renderer untouched.
	Element ElementContext
}

// StyleValue returns the style to emit, preferring Style over Theme.
func (o RenderOptions) StyleValue() any {
	if o.Style != nil {
		return o.Style
	}
	if o.Theme != nil && len(o.Theme.CSSVars) > 0 {
		return o.Theme
	}
	return nil
}

// ElementContext is the rendering context of the element that owns a
// contact. Renderers never inspect it; it exists so body renderers can reach
// request-scoped state such as nested element resolvers.
type ElementContext struct {
	Context context.Context
	Data    any
}

// Ctx returns the wrapped context, falling back to context.Background.
func (e ElementContext) Ctx() context.Context {
	if e.Context == nil {
		return context.Background()
	}
	return e.Context
}
