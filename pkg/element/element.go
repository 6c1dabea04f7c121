// Package element models renderable markup nodes as plain values: a tag
// name, a merged attribute set, and an ordered list of children. Factories
// in pkg/controls produce these descriptions; serialization to HTML lives
// in this package so the description itself stays renderer-agnostic.
package element

// Element describes a single markup node. Once returned from a constructor
// the value is owned by the caller; nothing in this module retains or
// mutates it afterwards.
//
// Attribute values are deliberately typed as any so callers can attach
// event-handler references or other opaque payloads. Serialization only
// emits values it can represent as text; everything else is carried along
// untouched for consumers that inspect the description directly.
type Element struct {
	// Tag is the markup tag name. Empty for text and raw nodes.
	Tag string

	// Key is a deterministic identity for the node within its parent,
	// stable across repeated calls with the same inputs.
	Key string

	// Attrs is the merged attribute set.
	Attrs map[string]any

	// Text holds the content of text and raw nodes.
	Text string

	// Raw marks a text node whose content is emitted without escaping.
	Raw bool

	// Children are nested nodes, in insertion order.
	Children []Element
}

// New constructs an element description. The attribute map is copied so the
// caller keeps ownership of the map it passed in; a nil or empty map yields
// an element with no attributes.
func New(tag string, attrs map[string]any, children ...Element) Element {
	el := Element{Tag: tag}
	if len(attrs) > 0 {
		el.Attrs = make(map[string]any, len(attrs))
		for key, value := range attrs {
			el.Attrs[key] = value
		}
	}
	if len(children) > 0 {
		el.Children = append([]Element(nil), children...)
	}
	return el
}

// Text constructs a text node. Content is escaped during serialization.
func Text(content string) Element {
	return Element{Text: content}
}

// RawText constructs a raw node whose content bypasses escaping. Callers
// are responsible for sanitizing the payload first.
func RawText(content string) Element {
	return Element{Text: content, Raw: true}
}

// IsText reports whether the element is a text or raw node.
func (e Element) IsText() bool {
	return e.Tag == ""
}

// Attr returns the attribute value for key, if present.
func (e Element) Attr(key string) (any, bool) {
	value, ok := e.Attrs[key]
	return value, ok
}

// WithKey returns a copy of the element with its identity key replaced.
func (e Element) WithKey(key string) Element {
	e.Key = key
	return e
}
