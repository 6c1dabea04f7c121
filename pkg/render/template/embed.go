package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates
var builtinFS embed.FS

// LayoutTemplate is the name of the built-in page layout. It expects a
// "title" string and a pre-rendered "content" fragment in its context.
const LayoutTemplate = "layout"

// Builtin constructs an engine backed by the embedded templates.
func Builtin() (*Engine, error) {
	sub, err := fs.Sub(builtinFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("template: embedded templates: %w", err)
	}
	return New(WithFS(sub))
}
