package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formkit/pkg/controls"
	"github.com/goliatone/go-formkit/pkg/element"
)

// methodField is the hidden input carrying the declared verb when the
// browser method has to fall back to POST.
const methodField = "_method"

// BuildOptions carries per-build data that customizes the produced tree
// without touching the form definition itself.
type BuildOptions struct {
	// Values pre-populates controls by field name, overriding each field's
	// declared default.
	Values map[string]any

	// SanitizeHelp cleans field help markup before it is embedded raw.
	// When nil, help text is escaped like any other text.
	SanitizeHelp func(string) string
}

// Build maps the form definition through the controls registry into a
// single form element tree: one labelled wrapper per visible field, the
// hidden _method input for verbs browsers cannot submit natively, and a
// trailing actions row. A nil registry falls back to the built-in
// factories.
func (f Form) Build(reg *controls.Registry, opts BuildOptions) (element.Element, error) {
	if reg == nil {
		reg = controls.NewDefaultRegistry()
	}

	method := strings.ToUpper(strings.TrimSpace(f.Method))
	if method == "" {
		method = "POST"
	}
	browserMethod := method
	if method != "GET" && method != "POST" {
		browserMethod = "POST"
	}

	attrs := map[string]any{
		"method": strings.ToLower(browserMethod),
		"class":  f.formClass(),
	}
	if f.Name != "" {
		attrs["id"] = f.Name
		attrs["name"] = f.Name
	}
	if f.Action != "" {
		attrs["action"] = f.Action
	}

	children := make([]element.Element, 0, len(f.Fields)+2)
	if browserMethod != method {
		children = append(children, controls.Hidden(methodField, controls.Options{
			Value: method,
		}))
	}

	for _, field := range f.Fields {
		built, err := f.buildField(reg, field, opts)
		if err != nil {
			return element.Element{}, err
		}
		children = append(children, built)
	}

	children = append(children, element.New("div",
		map[string]any{"class": ClassActions},
		controls.Submit(f.Submit, controls.Options{}),
	))

	root := element.New("form", attrs, children...)
	if f.Name != "" {
		root = root.WithKey(f.Name)
	}
	return root, nil
}

func (f Form) buildField(reg *controls.Registry, field Field, opts BuildOptions) (element.Element, error) {
	if strings.TrimSpace(field.Name) == "" {
		return element.Element{}, fmt.Errorf("form %q: field name is required", f.Name)
	}

	kind := field.Kind
	if kind == "" {
		kind = controls.KindInput
	}
	factory, ok := reg.Factory(kind)
	if !ok {
		return element.Element{}, fmt.Errorf("form %q: control kind %q not registered for field %q", f.Name, kind, field.Name)
	}

	value := field.Default
	if opts.Values != nil {
		if v, ok := opts.Values[field.Name]; ok {
			value = v
		}
	}

	ctrlOpts := controls.Options{
		Type:        field.Type,
		Class:       field.Class,
		Placeholder: field.Placeholder,
		Required:    field.Required,
		Options:     field.Options,
		Min:         field.Min,
		Max:         field.Max,
		Step:        field.Step,
		MaxLength:   field.MaxLength,
		Pattern:     field.Pattern,
		Rows:        field.Rows,
		Cols:        field.Cols,
		Attrs:       field.Attrs,
	}
	if kind == controls.KindCheckbox || kind == controls.KindRadio {
		ctrlOpts.Checked = truthy(value)
	} else {
		ctrlOpts.Value = value
	}

	control := factory(field.Name, ctrlOpts)

	// Hidden inputs stay bare: no wrapper, no label, no help.
	if kind == controls.KindHidden {
		return control, nil
	}

	wrapped := make([]element.Element, 0, 3)
	if field.Label != "" {
		target := control.Key
		wrapped = append(wrapped, controls.Label(field.Label, controls.Options{
			ID:  target + "_label",
			For: target,
		}))
	}
	wrapped = append(wrapped, control)

	if help := strings.TrimSpace(field.Help); help != "" {
		helpChild := element.Text(help)
		if opts.SanitizeHelp != nil {
			helpChild = element.RawText(opts.SanitizeHelp(help))
		}
		wrapped = append(wrapped, element.New("small",
			map[string]any{"class": ClassHelp},
			helpChild,
		))
	}

	return element.New("div",
		map[string]any{"class": ClassField},
		wrapped...,
	).WithKey(field.Name), nil
}

func (f Form) formClass() string {
	if f.Class != "" {
		return ClassForm + " " + f.Class
	}
	return ClassForm
}

// truthy interprets the loose value shapes a checkbox or radio default can
// arrive in, from YAML booleans to submitted "1" strings.
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes", "checked":
			return true
		}
		return false
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}
