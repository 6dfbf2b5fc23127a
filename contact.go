// Package contact renders contact entities as HTML table fragments. The root
// package re-exports the pieces most callers need; the sub-packages under pkg/
// hold the renderers, collaborators and document loader.
package contact

import (
	"context"
	"io"
	"io/fs"

	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/orchestrator"
	"github.com/goliatone/go-contact/pkg/pageindex"
	"github.com/goliatone/go-contact/pkg/render"
	"github.com/goliatone/go-contact/pkg/renderers/table"
	"github.com/goliatone/go-contact/pkg/renderers/vanilla"
)

// Contact aliases model.Contact for callers that only import the root package.
type Contact = model.Contact

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// ElementContext aliases render.ElementContext.
type ElementContext = render.ElementContext

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewRegistry returns a registry with the table and vanilla renderers.
func NewRegistry() (*render.Registry, error) {
	return orchestrator.DefaultRegistry(nil)
}

// WriteContactTable streams contact as a table fragment to out using the
// default collaborators.
func WriteContactTable(indexer pageindex.PageIndexer, out io.Writer, ctx ElementContext, style any, c Contact, options ...table.Option) error {
	return table.WriteContactTable(indexer, out, ctx, style, c, options...)
}

// RenderHTML renders c with the named renderer ("table" when empty).
func RenderHTML(ctx context.Context, c Contact, rendererName string, options RenderOptions) ([]byte, error) {
	return orchestrator.New().Generate(ctx, orchestrator.Request{
		Contact:       &c,
		Renderer:      rendererName,
		RenderOptions: options,
	})
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
