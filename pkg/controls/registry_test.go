package controls

import (
	"testing"

	"github.com/goliatone/go-formkit/pkg/element"
)

func TestDefaultRegistry_ResolvesBuiltins(t *testing.T) {
	reg := NewDefaultRegistry()

	for _, kind := range []string{
		KindInput, KindTextarea, KindSelect, KindCheckbox, KindRadio,
		KindHidden, KindSubmit, KindButton, KindLabel,
	} {
		if _, ok := reg.Factory(kind); !ok {
			t.Fatalf("expected factory for %q", kind)
		}
	}

	if _, ok := reg.Factory("unknown"); ok {
		t.Fatalf("unexpected factory for unknown kind")
	}
}

func TestRegistry_RegisterOverrides(t *testing.T) {
	reg := NewDefaultRegistry()
	reg.MustRegister(KindInput, func(name string, opts Options) element.Element {
		return element.New("custom-input", map[string]any{"name": name})
	})

	factory, ok := reg.Factory(KindInput)
	if !ok {
		t.Fatalf("expected overridden factory")
	}
	if el := factory("x", Options{}); el.Tag != "custom-input" {
		t.Fatalf("override not applied, got tag %q", el.Tag)
	}
}

func TestRegistry_RegisterValidation(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("", Input); err == nil {
		t.Fatalf("expected error for empty kind")
	}
	if err := reg.Register("input", nil); err == nil {
		t.Fatalf("expected error for nil factory")
	}
}

func TestRegistry_CloneIsIsolated(t *testing.T) {
	reg := NewDefaultRegistry()
	cloned := reg.Clone()

	cloned.MustRegister("extra", func(name string, opts Options) element.Element {
		return element.New("extra", nil)
	})

	if _, ok := reg.Factory("extra"); ok {
		t.Fatalf("clone mutation leaked into the original registry")
	}
	if _, ok := cloned.Factory("extra"); !ok {
		t.Fatalf("expected extra factory on the clone")
	}
}

func TestRegistry_KindLookupIsCaseInsensitive(t *testing.T) {
	reg := NewDefaultRegistry()
	if _, ok := reg.Factory(" SELECT "); !ok {
		t.Fatalf("expected trimmed, lowercased lookup to resolve")
	}
}
