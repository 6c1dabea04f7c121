// Package controls exposes one factory per form-control kind. Each factory
// is a pure mapping from a name (or button text) and an Options bag to an
// element description: defaults are substituted for absent settings, the
// two class aliases collapse into one attribute, and everything the bag
// does not model is forwarded verbatim. No factory performs I/O, mutates
// its inputs, or fails on normal input.
package controls

import (
	"strconv"

	"github.com/goliatone/go-formkit/pkg/element"
)

// Fallback identifiers for controls that have no field name to derive one
// from.
const (
	DefaultSubmitID = "submit"
	DefaultButtonID = "button"
	DefaultLabelID  = "label"
)

// DefaultSubmitText is the caption used when a submit control is built
// without one.
const DefaultSubmitText = "Submit"

// Textarea dimensions applied when the options bag leaves them unset.
const (
	DefaultTextareaRows = 4
	DefaultTextareaCols = 50
)

// Input builds a text-like input. The type defaults to "text" and the
// identifier to the field name; all remaining options pass through.
func Input(name string, opts Options) element.Element {
	attrs := opts.attrs(name)
	if _, ok := attrs["type"]; !ok {
		typ := opts.Type
		if typ == "" {
			typ = "text"
		}
		attrs["type"] = typ
	}
	id := opts.id(name)
	attrs["id"] = id
	if opts.Value != nil {
		attrs["value"] = opts.Value
	}
	if opts.Checked {
		attrs["checked"] = true
	}
	return build("input", id, attrs)
}

// Textarea builds a multiline text control. Rows default to 4 and columns
// to 50; the value becomes the element's text content.
func Textarea(name string, opts Options) element.Element {
	attrs := opts.attrs(name)
	rows := opts.Rows
	if rows <= 0 {
		rows = DefaultTextareaRows
	}
	cols := opts.Cols
	if cols <= 0 {
		cols = DefaultTextareaCols
	}
	attrs["rows"] = rows
	attrs["cols"] = cols
	id := opts.id(name)
	attrs["id"] = id

	var children []element.Element
	if text := scalarText(opts.Value); text != "" {
		children = append(children, element.Text(text))
	}
	return build("textarea", id, attrs, children...)
}

// Select builds a choice list. Each entry in opts.Options is normalized
// per Normalize and rendered as one option child, keyed by the control
// name plus its position. An absent or empty entry sequence yields zero
// children.
func Select(name string, opts Options) element.Element {
	attrs := opts.attrs(name)
	id := opts.id(name)
	attrs["id"] = id

	selected := ""
	if opts.Value != nil {
		selected = scalarText(opts.Value)
	}

	normalized := Normalize(opts.Options)
	children := make([]element.Element, 0, len(normalized))
	for i, opt := range normalized {
		optAttrs := map[string]any{"value": opt.Value}
		if opt.Disabled {
			optAttrs["disabled"] = true
		}
		if selected != "" && opt.Value == selected {
			optAttrs["selected"] = true
		}
		child := element.New("option", optAttrs, element.Text(opt.Label)).
			WithKey(name + strconv.Itoa(i))
		children = append(children, child)
	}
	return build("select", id, attrs, children...)
}

// Checkbox builds a checkbox input. The value defaults to the literal "1"
// and the identifier to the field name.
func Checkbox(name string, opts Options) element.Element {
	attrs := opts.attrs(name)
	attrs["type"] = "checkbox"
	value := opts.Value
	if value == nil {
		value = "1"
	}
	attrs["value"] = value
	if opts.Checked {
		attrs["checked"] = true
	}
	id := opts.id(name)
	attrs["id"] = id
	return build("input", id, attrs)
}

// Radio builds a radio input. The identifier defaults to name_value, or
// name_radio when no value was supplied, and the identity key follows the
// computed identifier rather than the field name.
func Radio(name string, opts Options) element.Element {
	attrs := opts.attrs(name)
	attrs["type"] = "radio"
	suffix := "radio"
	if opts.Value != nil {
		attrs["value"] = opts.Value
		if text := scalarText(opts.Value); text != "" {
			suffix = text
		}
	}
	if opts.Checked {
		attrs["checked"] = true
	}
	id := opts.id(name + "_" + suffix)
	attrs["id"] = id
	return build("input", id, attrs)
}

// Hidden builds a hidden input carrying the supplied value.
func Hidden(name string, opts Options) element.Element {
	attrs := opts.attrs(name)
	attrs["type"] = "hidden"
	id := opts.id(name)
	attrs["id"] = id
	if opts.Value != nil {
		attrs["value"] = opts.Value
	}
	return build("input", id, attrs)
}

// Submit builds a submit control. The caption defaults to "Submit" and is
// carried by the value attribute; the identifier defaults to a fixed
// constant since there is no field name to derive one from.
func Submit(text string, opts Options) element.Element {
	attrs := opts.attrs("")
	attrs["type"] = "submit"
	if text == "" {
		text = DefaultSubmitText
	}
	attrs["value"] = text
	id := opts.id(DefaultSubmitID)
	attrs["id"] = id
	return build("input", id, attrs)
}

// Button builds a generic button whose caption becomes child content. The
// type defaults to "button" so it never submits by accident.
func Button(text string, opts Options) element.Element {
	attrs := opts.attrs("")
	if _, ok := attrs["type"]; !ok {
		typ := opts.Type
		if typ == "" {
			typ = "button"
		}
		attrs["type"] = typ
	}
	id := opts.id(DefaultButtonID)
	attrs["id"] = id
	return build("button", id, attrs, element.Text(text))
}

// Label builds a label associated with a target control through the for
// attribute; the caption becomes child content.
func Label(text string, opts Options) element.Element {
	attrs := opts.attrs("")
	if opts.For != "" {
		attrs["for"] = opts.For
	}
	id := opts.id(DefaultLabelID)
	attrs["id"] = id
	return build("label", id, attrs, element.Text(text))
}
