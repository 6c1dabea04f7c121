package formkit

import (
	"context"
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	def, err := ParseForm([]byte(`
name: login
action: /login
fields:
  - name: email
    type: email
    label: Email
  - name: password
    type: password
    label: Password
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out, err := RenderHTML(context.Background(), def, RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(out)

	for _, want := range []string{`action="/login"`, `type="email"`, `type="password"`, `type="submit"`} {
		if !strings.Contains(markup, want) {
			t.Fatalf("expected %q in output:\n%s", want, markup)
		}
	}
}

func TestControlFactoriesReExported(t *testing.T) {
	el := Select("country", Options{
		Options: []any{"us", map[string]any{"value": "ca", "label": "Canada"}},
	})

	if len(el.Children) != 2 {
		t.Fatalf("expected 2 options, got %d", len(el.Children))
	}
	if el.Children[1].Attrs["value"] != "ca" {
		t.Fatalf("structured option lost: %+v", el.Children[1])
	}
}
