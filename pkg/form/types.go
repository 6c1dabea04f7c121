// Package form holds the declarative form definition consumed by renderers
// and the builder that turns it into an element tree through a controls
// registry.
package form

// Chrome class names applied to the structural markup around controls.
const (
	ClassForm    = "formkit-form"
	ClassField   = "formkit-field"
	ClassActions = "formkit-actions"
	ClassHelp    = "formkit-help"
)

// Field models an individual control inside a form definition.
type Field struct {
	Name        string         `json:"name" yaml:"name"`
	Kind        string         `json:"kind,omitempty" yaml:"kind,omitempty"`
	Type        string         `json:"type,omitempty" yaml:"type,omitempty"`
	Label       string         `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string         `json:"help,omitempty" yaml:"help,omitempty"`
	Default     any            `json:"default,omitempty" yaml:"default,omitempty"`
	Required    bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []any          `json:"options,omitempty" yaml:"options,omitempty"`
	Min         any            `json:"min,omitempty" yaml:"min,omitempty"`
	Max         any            `json:"max,omitempty" yaml:"max,omitempty"`
	Step        any            `json:"step,omitempty" yaml:"step,omitempty"`
	MaxLength   int            `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern     string         `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Rows        int            `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols        int            `json:"cols,omitempty" yaml:"cols,omitempty"`
	Class       string         `json:"class,omitempty" yaml:"class,omitempty"`
	Attrs       map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Form is the top-level definition renderers consume.
type Form struct {
	Name   string  `json:"name" yaml:"name"`
	Action string  `json:"action,omitempty" yaml:"action,omitempty"`
	Method string  `json:"method,omitempty" yaml:"method,omitempty"`
	Class  string  `json:"class,omitempty" yaml:"class,omitempty"`
	Submit string  `json:"submit,omitempty" yaml:"submit,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}
