package element

import (
	"strings"
	"testing"
)

func TestHTML_SortsAttributes(t *testing.T) {
	el := New("input", map[string]any{
		"type": "text",
		"name": "email",
		"id":   "email",
	})

	got := el.HTML()
	want := `<input id="email" name="email" type="text">`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestHTML_EscapesTextAndAttributes(t *testing.T) {
	el := New("label", map[string]any{"title": `a "quoted" <value>`}, Text("<script>"))

	got := el.HTML()
	if strings.Contains(got, "<script>") {
		t.Fatalf("text content not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped text, got %q", got)
	}
	if !strings.Contains(got, "&#34;quoted&#34;") {
		t.Fatalf("expected escaped attribute, got %q", got)
	}
}

func TestHTML_RawTextBypassesEscaping(t *testing.T) {
	el := New("small", nil, RawText("<b>bold</b>"))
	if got := el.HTML(); got != "<small><b>bold</b></small>" {
		t.Fatalf("raw content altered: %q", got)
	}
}

func TestHTML_BooleanAttributes(t *testing.T) {
	el := New("input", map[string]any{
		"type":     "text",
		"required": true,
		"disabled": false,
	})

	got := el.HTML()
	if !strings.Contains(got, " required") {
		t.Fatalf("expected bare required attribute, got %q", got)
	}
	if strings.Contains(got, "disabled") {
		t.Fatalf("false boolean must be omitted, got %q", got)
	}
	if strings.Contains(got, `required="`) {
		t.Fatalf("boolean attribute must not carry a value, got %q", got)
	}
}

func TestHTML_VoidElementsHaveNoClosingTag(t *testing.T) {
	el := New("input", map[string]any{"type": "hidden"}, Text("ignored"))
	got := el.HTML()
	if strings.Contains(got, "</input>") {
		t.Fatalf("void element closed: %q", got)
	}
	if strings.Contains(got, "ignored") {
		t.Fatalf("void element rendered children: %q", got)
	}
}

func TestHTML_NumericAttributes(t *testing.T) {
	el := New("textarea", map[string]any{"rows": 4, "cols": 50, "step": 0.5})
	got := el.HTML()
	for _, want := range []string{`rows="4"`, `cols="50"`, `step="0.5"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %s in %q", want, got)
		}
	}
}

func TestHTML_SkipsUnrepresentableValues(t *testing.T) {
	handler := func() {}
	el := New("input", map[string]any{
		"type":     "text",
		"onchange": handler,
	})

	got := el.HTML()
	if strings.Contains(got, "onchange") {
		t.Fatalf("handler reference must not serialize: %q", got)
	}
	if _, ok := el.Attrs["onchange"]; !ok {
		t.Fatalf("handler reference must stay in the description")
	}
}

func TestHTML_NestedChildrenInOrder(t *testing.T) {
	el := New("select", map[string]any{"name": "size"},
		New("option", map[string]any{"value": "s"}, Text("Small")),
		New("option", map[string]any{"value": "m"}, Text("Medium")),
	)

	got := el.HTML()
	want := `<select name="size"><option value="s">Small</option><option value="m">Medium</option></select>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWriteHTML(t *testing.T) {
	var builder strings.Builder
	if err := WriteHTML(&builder, New("br", nil)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if builder.String() != "<br>" {
		t.Fatalf("expected <br>, got %q", builder.String())
	}
}
