// Package render defines the renderer contract form definitions flow
// through, plus a registry for looking renderers up by name.
package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/form"
)

// Renderer converts a form definition into a byte representation (HTML,
// plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, def form.Form, options Options) ([]byte, error)
}

// Options describe per-request data renderers can use to customize output
// without mutating the form definition.
type Options struct {
	// Values pre-populates rendered controls by field name.
	Values map[string]any

	// Theme carries a resolved go-theme configuration. Renderers translate
	// manifest tokens into whatever their output format supports; nil means
	// unthemed output.
	Theme *theme.RendererConfig
}
