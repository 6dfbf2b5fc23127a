package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-contact/pkg/body"
	"github.com/goliatone/go-contact/pkg/loader"
	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/pageindex"
	"github.com/goliatone/go-contact/pkg/render"
	"github.com/goliatone/go-contact/pkg/renderers/table"
	"github.com/goliatone/go-contact/pkg/renderers/vanilla"
)

const defaultRendererName = table.Name

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithStore supplies pre-loaded contact records.
func WithStore(store *loader.Store) Option {
	return func(o *Orchestrator) {
		if store != nil {
			o.store = store
		}
	}
}

// WithContactsFS loads contact documents from fsys on first use.
func WithContactsFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.contactsFS = fsys
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// WithDefaultRenderer sets the renderer used when a request leaves the name
// empty.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = strings.TrimSpace(name)
	}
}

// WithTransformer registers a transformer applied to every resolved contact.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithLogger sets the logger used for pipeline tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates contact lookup, body preparation and rendering.
type Orchestrator struct {
	store           *loader.Store
	contactsFS      fs.FS
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	logger          *zap.Logger

	initOnce      sync.Once
	initialiseErr error
	index         *pageindex.Index
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// DefaultRegistry returns a registry holding the table and vanilla renderers.
func DefaultRegistry(logger *zap.Logger) (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(table.New(table.WithLogger(logger)))
	renderer, err := vanilla.New(vanilla.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	registry.MustRegister(renderer)
	return registry, nil
}

// Request describes a single contact render.
type Request struct {
	// ContactID selects a record from the store. Ignored when Contact is set.
	ContactID string

	// Contact bypasses the store when the caller already holds the entity.
	Contact *model.Contact

	// BodyFormat overrides the record's body format (trusted, text,
	// sanitized, markdown).
	BodyFormat string

	// Renderer names the renderer to use. Empty falls back to the default.
	Renderer string

	// RenderOptions is passed to the renderer. When Indexer is nil the
	// orchestrator supplies an index over every page in the store.
	RenderOptions render.RenderOptions
}

// Generate resolves the requested contact, prepares its body and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.init(); err != nil {
		return nil, err
	}

	contact, format, err := o.resolveContact(req)
	if err != nil {
		return nil, err
	}
	if req.BodyFormat != "" {
		format = req.BodyFormat
	}

	contact = contact.Clone()
	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &contact); err != nil {
			return nil, fmt.Errorf("orchestrator: transform contact: %w", err)
		}
	}
	if err := prepareBody(ctx, &contact, format); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Indexer == nil && o.index != nil && o.index.Len() > 0 {
		options.Indexer = o.index
	}

	output, err := renderer.Render(ctx, contact, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("contact generated",
		zap.String("id", contact.ID),
		zap.String("renderer", renderer.Name()),
		zap.String("body_format", format),
		zap.Int("bytes", len(output)),
	)
	return output, nil
}

// Records returns every stored record, loading contacts on first use.
func (o *Orchestrator) Records() ([]loader.Record, error) {
	if err := o.init(); err != nil {
		return nil, err
	}
	return o.store.Records(), nil
}

// Index exposes the page index built from the stored records.
func (o *Orchestrator) Index() (*pageindex.Index, error) {
	if err := o.init(); err != nil {
		return nil, err
	}
	return o.index, nil
}

func (o *Orchestrator) init() error {
	o.initOnce.Do(func() {
		if o.store == nil {
			store, err := loader.LoadFS(o.contactsFS)
			if err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: load contacts: %w", err)
				return
			}
			o.store = store
		}
		o.index = pageindex.New(o.store.Pages()...)

		if o.registry == nil {
			registry, err := DefaultRegistry(o.logger)
			if err != nil {
				o.initialiseErr = err
				return
			}
			o.registry = registry
		}
		if o.defaultRenderer == "" {
			o.defaultRenderer = defaultRendererName
		}
		o.logger.Debug("orchestrator initialised",
			zap.Int("contacts", len(o.store.Records())),
			zap.Int("pages", o.index.Len()),
		)
	})
	return o.initialiseErr
}

func (o *Orchestrator) resolveContact(req Request) (model.Contact, string, error) {
	if req.Contact != nil {
		return *req.Contact, "", nil
	}
	if req.ContactID == "" {
		return model.Contact{}, "", errors.New("orchestrator: contact or contact id is required")
	}
	record, ok := o.store.Contact(req.ContactID)
	if !ok {
		return model.Contact{}, "", fmt.Errorf("orchestrator: contact %q not found", req.ContactID)
	}
	return record.Contact, record.BodyFormat, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err == nil {
		return renderer, nil
	}
	if name != "" {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	renderer, err = o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// prepareBody pre-renders non-trusted bodies so every renderer can stream the
// result verbatim.
func prepareBody(ctx context.Context, contact *model.Contact, format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" || format == "trusted" || contact.BodyLen() == 0 {
		return nil
	}
	renderer, ok := body.Named(format)
	if !ok {
		return fmt.Errorf("orchestrator: unknown body format %q", format)
	}
	buf := &model.BufferBody{}
	if err := renderer.RenderBody(render.ElementContext{Context: ctx}, *contact, buf); err != nil {
		return fmt.Errorf("orchestrator: render %s body: %w", format, err)
	}
	contact.Body = buf
	return nil
}
