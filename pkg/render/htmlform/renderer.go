// Package htmlform renders form definitions to plain HTML fragments using
// the control factories, with optional help-text sanitization and go-theme
// token support.
package htmlform

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formkit/pkg/controls"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/render"
)

// Name identifies this renderer inside a render.Registry.
const Name = "html"

// Option configures the renderer before construction.
type Option func(*Renderer)

// WithControls overrides the controls registry used to build field markup.
func WithControls(reg *controls.Registry) Option {
	return func(r *Renderer) {
		r.controls = reg
	}
}

// WithHelpPolicy overrides the sanitizer applied to field help markup. A
// nil policy disables sanitization; help text is then escaped like any
// other text.
func WithHelpPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		r.helpPolicy = policy
		r.helpPolicySet = true
	}
}

// Renderer emits a standalone HTML fragment per form definition.
type Renderer struct {
	controls      *controls.Registry
	helpPolicy    *bluemonday.Policy
	helpPolicySet bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a Renderer using the provided options. Without options it
// uses the built-in control factories and the default help policy.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.controls == nil {
		r.controls = controls.NewDefaultRegistry()
	}
	if !r.helpPolicySet {
		r.helpPolicy = helpSanitizer()
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return Name }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render builds the element tree for the definition and serializes it.
// Theme tokens, when present, land on the form element as CSS custom
// properties so stylesheets can pick them up without extra plumbing.
func (r *Renderer) Render(ctx context.Context, def form.Form, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := def.Build(r.controls, form.BuildOptions{
		Values:       options.Values,
		SanitizeHelp: r.sanitizeHelp(),
	})
	if err != nil {
		return nil, err
	}

	root = applyTheme(root, options.Theme)
	return []byte(root.HTML()), nil
}

func (r *Renderer) sanitizeHelp() func(string) string {
	if r.helpPolicy == nil {
		return nil
	}
	policy := r.helpPolicy
	return func(raw string) string {
		return policy.Sanitize(raw)
	}
}

