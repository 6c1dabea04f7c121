package controls

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formkit/pkg/element"
)

// Built-in control kinds resolvable from a default registry.
const (
	KindInput    = "input"
	KindTextarea = "textarea"
	KindSelect   = "select"
	KindCheckbox = "checkbox"
	KindRadio    = "radio"
	KindHidden   = "hidden"
	KindSubmit   = "submit"
	KindButton   = "button"
	KindLabel    = "label"
)

// Factory builds one control element from a name and an options bag.
type Factory func(name string, opts Options) element.Element

// Registry maps control kinds to factories. Callers can register new kinds
// or replace the built-ins, for example to restyle every checkbox a form
// builder produces.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry creates a registry pre-populated with the built-in
// control factories.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(KindInput, Input)
	reg.MustRegister(KindTextarea, Textarea)
	reg.MustRegister(KindSelect, Select)
	reg.MustRegister(KindCheckbox, Checkbox)
	reg.MustRegister(KindRadio, Radio)
	reg.MustRegister(KindHidden, Hidden)
	reg.MustRegister(KindSubmit, Submit)
	reg.MustRegister(KindButton, Button)
	reg.MustRegister(KindLabel, Label)
	return reg
}

// Register associates a factory with a kind. Existing entries are replaced.
func (r *Registry) Register(kind string, factory Factory) error {
	kind = strings.TrimSpace(strings.ToLower(kind))
	if kind == "" {
		return fmt.Errorf("controls: control kind is required")
	}
	if factory == nil {
		return fmt.Errorf("controls: factory for %q is nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[kind] = factory
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(kind string, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// Factory fetches a factory by kind.
func (r *Registry) Factory(kind string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[strings.TrimSpace(strings.ToLower(kind))]
	return factory, ok
}

// Clone returns a copy of the registry so callers can override entries
// without affecting the original.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for kind, factory := range r.factories {
		cloned.factories[kind] = factory
	}
	return cloned
}

// Kinds returns the sorted list of registered control kinds.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
