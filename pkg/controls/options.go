package controls

import (
	"github.com/goliatone/go-formkit/pkg/element"
)

// Options is the bag of recognized settings shared by every control
// factory. Zero values mean "absent": the factory substitutes its default
// or omits the attribute entirely. Anything the struct does not model goes
// through Attrs and is forwarded verbatim.
type Options struct {
	// Type overrides the control's input type where the factory does not
	// fix one (Input, Button).
	Type string

	// ClassName and Class both map to the class attribute. ClassName wins
	// when both are set; the loser is never emitted.
	ClassName string
	Class     string

	// ID overrides the element identifier. When empty the factory derives
	// one from the control name.
	ID string

	Placeholder string

	// Value is the control's value or default value. Stringified at
	// serialization time.
	Value any

	// For associates a label with its target control id.
	For string

	Required bool
	Disabled bool
	ReadOnly bool
	Checked  bool
	Multiple bool

	// Rows and Cols apply to textareas. Zero falls back to 4 and 50.
	Rows int
	Cols int

	Size      int
	MaxLength int

	Min  any
	Max  any
	Step any

	Pattern string

	// Options feeds the select factory. Entries may be SelectOption values
	// or bare scalars; see Normalize.
	Options []any

	// Handler references are forwarded to the attribute map untouched.
	// This layer never invokes them.
	OnChange any
	OnInput  any
	OnBlur   any
	OnFocus  any
	OnClick  any

	// Attrs is the escape hatch for attributes the struct does not model.
	// Entries are merged last and may override recognized keys.
	Attrs map[string]any
}

// class resolves the two class aliases: ClassName first, Class second,
// empty when neither applies.
func (o Options) class() string {
	if o.ClassName != "" {
		return o.ClassName
	}
	return o.Class
}

// id resolves the element identifier against a fallback chain: explicit ID,
// then each non-empty fallback in order.
func (o Options) id(fallbacks ...string) string {
	if o.ID != "" {
		return o.ID
	}
	for _, fb := range fallbacks {
		if fb != "" {
			return fb
		}
	}
	return ""
}

// attrs assembles the common attribute map for a named control. The type,
// id, and value slots are owned by each factory; everything else follows
// the same rules for all of them.
func (o Options) attrs(name string) map[string]any {
	attrs := make(map[string]any, 8+len(o.Attrs))
	if name != "" {
		attrs["name"] = name
	}
	if cls := o.class(); cls != "" {
		attrs["class"] = cls
	}
	if o.Placeholder != "" {
		attrs["placeholder"] = o.Placeholder
	}
	if o.Required {
		attrs["required"] = true
	}
	if o.Disabled {
		attrs["disabled"] = true
	}
	if o.ReadOnly {
		attrs["readonly"] = true
	}
	if o.Multiple {
		attrs["multiple"] = true
	}
	if o.Size > 0 {
		attrs["size"] = o.Size
	}
	if o.MaxLength > 0 {
		attrs["maxlength"] = o.MaxLength
	}
	if o.Min != nil {
		attrs["min"] = o.Min
	}
	if o.Max != nil {
		attrs["max"] = o.Max
	}
	if o.Step != nil {
		attrs["step"] = o.Step
	}
	if o.Pattern != "" {
		attrs["pattern"] = o.Pattern
	}
	if o.OnChange != nil {
		attrs["onchange"] = o.OnChange
	}
	if o.OnInput != nil {
		attrs["oninput"] = o.OnInput
	}
	if o.OnBlur != nil {
		attrs["onblur"] = o.OnBlur
	}
	if o.OnFocus != nil {
		attrs["onfocus"] = o.OnFocus
	}
	if o.OnClick != nil {
		attrs["onclick"] = o.OnClick
	}
	for key, value := range o.Attrs {
		attrs[key] = value
	}
	return attrs
}

func build(tag, key string, attrs map[string]any, children ...element.Element) element.Element {
	return element.New(tag, attrs, children...).WithKey(key)
}
