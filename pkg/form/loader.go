package form

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set stores parsed form definitions keyed by form name.
type Set struct {
	forms map[string]Form
}

// Form returns the definition registered under name.
func (s *Set) Form(name string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	f, ok := s.forms[name]
	return f, ok
}

// Empty reports whether the set holds any definitions.
func (s *Set) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// Names returns the registered form names in map order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.forms))
	for name := range s.forms {
		names = append(names, name)
	}
	return names
}

// Parse decodes a single form definition from YAML or JSON. yaml.v3
// handles both since JSON is a YAML subset, so the caller does not need to
// know which flavour it holds.
func Parse(data []byte) (Form, error) {
	var f Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Form{}, fmt.Errorf("form: parse definition: %w", err)
	}
	if err := validate(f); err != nil {
		return Form{}, err
	}
	return f, nil
}

// ParseJSON decodes a single form definition from strict JSON.
func ParseJSON(data []byte) (Form, error) {
	var f Form
	if err := json.Unmarshal(data, &f); err != nil {
		return Form{}, fmt.Errorf("form: parse definition: %w", err)
	}
	if err := validate(f); err != nil {
		return Form{}, err
	}
	return f, nil
}

// LoadFS walks the provided filesystem and parses every YAML/JSON form
// definition it finds. When fsys is nil or no definition files are
// present, the returned set is empty.
func LoadFS(fsys fs.FS) (*Set, error) {
	set := &Set{forms: make(map[string]Form)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("form: read %s: %w", path, err)
		}

		parsed, err := Parse(data)
		if err != nil {
			return fmt.Errorf("form: file %s: %w", path, err)
		}

		if _, exists := set.forms[parsed.Name]; exists {
			return fmt.Errorf("form: duplicate definition %q (file %s)", parsed.Name, path)
		}
		set.forms[parsed.Name] = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

func validate(f Form) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("form: definition is missing a name")
	}
	seen := make(map[string]struct{}, len(f.Fields))
	for _, field := range f.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("form %q: field name is required", f.Name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("form %q: duplicate field %q", f.Name, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
