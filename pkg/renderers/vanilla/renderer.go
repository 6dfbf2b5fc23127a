package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-contact/pkg/body"
	"github.com/goliatone/go-contact/pkg/encoding"
	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/render"
	rendertemplate "github.com/goliatone/go-contact/pkg/render/template"
	gotemplate "github.com/goliatone/go-contact/pkg/render/template/gotemplate"
)

// Name is the registry key of the template-backed renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	encoder          encoding.TextEncoder
	body             body.BodyRenderer
	logger           *zap.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithEncoder replaces the XHTML encoder used to pre-escape template values.
func WithEncoder(enc encoding.TextEncoder) Option {
	return func(cfg *config) {
		if enc != nil {
			cfg.encoder = enc
		}
	}
}

// WithBodyRenderer replaces the trusted body renderer.
func WithBodyRenderer(renderer body.BodyRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.body = renderer
		}
	}
}

// WithLogger sets the logger used for render tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer renders contacts through the contact.tmpl template. Every value
// handed to the template is escaped in Go first, so the template marks all
// output safe and the result matches the streaming table renderer byte for
// byte.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	encoder   encoding.TextEncoder
	body      body.BodyRenderer
	logger    *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		encoder:    encoding.XHTML,
		body:       body.Trusted,
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		encoder:   cfg.encoder,
		body:      cfg.body,
		logger:    cfg.logger,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, contact model.Contact, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	element := options.Element
	if element.Context == nil {
		element.Context = ctx
	}

	data, err := buildView(r.encoder, r.body, element, options, contact)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render body: %w", err)
	}

	result, err := r.templates.RenderTemplate(TemplatePath, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	r.logger.Debug("contact rendered from template",
		zap.String("id", contact.ID),
		zap.String("template", TemplatePath),
		zap.Int("bytes", len(result)),
	)
	return []byte(result), nil
}
