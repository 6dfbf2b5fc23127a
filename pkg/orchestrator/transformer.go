package orchestrator

import (
	"context"

	"github.com/goliatone/go-contact/pkg/model"
)

// Transformer mutates a contact after it is resolved and before it is
// rendered. The orchestrator hands it a copy, so the stored record is never
// changed.
type Transformer interface {
	Transform(ctx context.Context, contact *model.Contact) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, contact *model.Contact) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, contact *model.Contact) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, contact)
}
