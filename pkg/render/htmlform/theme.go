package htmlform

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/element"
)

// tokenPrefix namespaces manifest tokens when they are emitted as CSS
// custom properties.
const tokenPrefix = "--formkit-"

// applyTheme stamps the resolved theme onto the form element: name and
// variant as data attributes, tokens and CSS vars as an inline style of
// custom properties. The rest of the tree stays untouched so themes only
// ever add information.
func applyTheme(root element.Element, cfg *theme.RendererConfig) element.Element {
	if cfg == nil {
		return root
	}
	if root.Attrs == nil {
		root.Attrs = make(map[string]any, 3)
	}
	if cfg.Theme != "" {
		root.Attrs["data-theme"] = cfg.Theme
	}
	if cfg.Variant != "" {
		root.Attrs["data-theme-variant"] = cfg.Variant
	}
	if style := cssVarsStyle(cfg); style != "" {
		root.Attrs["style"] = style
	}
	return root
}

func cssVarsStyle(cfg *theme.RendererConfig) string {
	vars := make(map[string]string, len(cfg.Tokens)+len(cfg.CSSVars))
	for key, value := range cfg.Tokens {
		vars[cssVarName(key)] = value
	}
	for key, value := range cfg.CSSVars {
		vars[cssVarName(key)] = value
	}
	if len(vars) == 0 {
		return ""
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		builder.WriteString(name)
		builder.WriteString(": ")
		builder.WriteString(vars[name])
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

func cssVarName(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	return tokenPrefix + key
}

// ResolveTheme asks a go-theme selector for the named theme/variant and
// flattens the selection into the renderer configuration Render consumes.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	if selection == nil {
		return nil, nil
	}
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if selection.Manifest != nil && len(selection.Manifest.Tokens) > 0 {
		cfg.Tokens = make(map[string]string, len(selection.Manifest.Tokens))
		for key, value := range selection.Manifest.Tokens {
			cfg.Tokens[key] = value
		}
	}
	return cfg, nil
}
