package element

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strconv"
	"strings"
)

// voidTags never carry children or a closing tag.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// HTML serializes the element to markup. Attribute order is sorted so the
// same description always yields the same bytes.
func (e Element) HTML() string {
	var builder strings.Builder
	writeElement(&builder, e)
	return builder.String()
}

// WriteHTML serializes the element to w.
func WriteHTML(w io.Writer, e Element) error {
	var builder strings.Builder
	writeElement(&builder, e)
	_, err := io.WriteString(w, builder.String())
	return err
}

func writeElement(builder *strings.Builder, e Element) {
	if e.IsText() {
		if e.Raw {
			builder.WriteString(e.Text)
			return
		}
		builder.WriteString(html.EscapeString(e.Text))
		return
	}

	builder.WriteByte('<')
	builder.WriteString(e.Tag)
	writeAttrs(builder, e.Attrs)
	builder.WriteByte('>')

	if _, void := voidTags[e.Tag]; void {
		return
	}

	for _, child := range e.Children {
		writeElement(builder, child)
	}

	builder.WriteString("</")
	builder.WriteString(e.Tag)
	builder.WriteByte('>')
}

func writeAttrs(builder *strings.Builder, attrs map[string]any) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		text, boolean, ok := attrText(attrs[key])
		if !ok {
			continue
		}
		if boolean {
			builder.WriteByte(' ')
			builder.WriteString(key)
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(key)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(text))
		builder.WriteByte('"')
	}
}

// attrText converts an attribute value to its textual form. Boolean true
// yields a bare attribute, false suppresses it. Values with no sensible
// text form (handler references and the like) are skipped, not errored.
func attrText(value any) (text string, boolean, ok bool) {
	switch v := value.(type) {
	case nil:
		return "", false, false
	case string:
		return v, false, true
	case bool:
		return "", true, v
	case int:
		return strconv.Itoa(v), false, true
	case int64:
		return strconv.FormatInt(v, 10), false, true
	case uint64:
		return strconv.FormatUint(v, 10), false, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), false, true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), false, true
	case fmt.Stringer:
		return v.String(), false, true
	default:
		switch value.(type) {
		case int8, int16, int32, uint, uint8, uint16, uint32:
			return fmt.Sprint(value), false, true
		}
		return "", false, false
	}
}
