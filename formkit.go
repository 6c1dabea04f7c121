// Package formkit is a thin declarative helper library for building
// form-control markup: one factory per control kind, normalized attribute
// handling, and renderers that turn whole form definitions into HTML.
//
// The root package re-exports the common entry points; the pkg tree holds
// the full surface (controls, element, form, render, openapi, prompt).
package formkit

import (
	"context"

	"github.com/goliatone/go-formkit/pkg/controls"
	"github.com/goliatone/go-formkit/pkg/element"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/render/htmlform"
)

// Element is the opaque markup description every factory returns.
type Element = element.Element

// Options is the shared options bag for control factories.
type Options = controls.Options

// SelectOption is the normalized shape of one choice-list entry.
type SelectOption = controls.SelectOption

// Form is a declarative form definition.
type Form = form.Form

// Field is one control inside a form definition.
type Field = form.Field

// RenderOptions carries per-request renderer data.
type RenderOptions = render.Options

// Control factories, re-exported for callers that only need markup for a
// single control.
var (
	Input    = controls.Input
	Textarea = controls.Textarea
	Select   = controls.Select
	Checkbox = controls.Checkbox
	Radio    = controls.Radio
	Hidden   = controls.Hidden
	Submit   = controls.Submit
	Button   = controls.Button
	Label    = controls.Label
)

// NewControlRegistry returns a registry pre-populated with the built-in
// control factories.
func NewControlRegistry() *controls.Registry {
	return controls.NewDefaultRegistry()
}

// ParseForm decodes a YAML or JSON form definition.
func ParseForm(data []byte) (Form, error) {
	return form.Parse(data)
}

// RenderHTML renders a form definition to an HTML fragment using the
// default HTML renderer. It is the simplest entry point for callers that
// just want markup.
func RenderHTML(ctx context.Context, def Form, options RenderOptions) ([]byte, error) {
	return htmlform.New().Render(ctx, def, options)
}
