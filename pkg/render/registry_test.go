package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-formkit/pkg/form"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(context.Context, form.Form, Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(&stubRenderer{name: "html"})

	renderer, err := reg.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}

	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestRegistry_DuplicateNamesFail(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(&stubRenderer{name: "html"})

	if err := reg.Register(&stubRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistry_Validation(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := reg.Register(&stubRenderer{}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(&stubRenderer{name: "text"})
	reg.MustRegister(&stubRenderer{name: "html"})

	names := reg.List()
	if len(names) != 2 || names[0] != "html" || names[1] != "text" {
		t.Fatalf("expected sorted names, got %v", names)
	}
}
