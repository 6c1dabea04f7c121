// Package template provides the page-layout engine used to wrap rendered
// form fragments in surrounding chrome. The contract mirrors the
// github.com/goliatone/go-template engine so callers can swap in that
// implementation directly.
package template

import "io"

// TemplateRenderer is the seam layout rendering relies on.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
