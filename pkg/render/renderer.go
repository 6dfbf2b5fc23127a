package render

import (
	"context"

	"github.com/goliatone/go-contact/pkg/model"
)

// Renderer converts a Contact into a byte representation (an HTML fragment,
// usually). Implementations must not mutate the contact.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, contact model.Contact, options RenderOptions) ([]byte, error)
}
