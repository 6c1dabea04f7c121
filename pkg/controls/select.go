package controls

import "fmt"

// SelectOption is the normalized shape of one select entry: a value, a
// human-facing label, and an optional disabled flag.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// Normalize coerces a heterogeneous entry sequence into SelectOption
// values. Structured entries exposing a value pass through, with the label
// falling back to the value text and the disabled flag defaulting to
// unset. Bare scalars become options whose value and label are both the
// scalar's string form. Output order matches input order; nothing is
// deduplicated or sorted.
func Normalize(entries []any) []SelectOption {
	if len(entries) == 0 {
		return nil
	}
	out := make([]SelectOption, 0, len(entries))
	for _, entry := range entries {
		out = append(out, normalizeEntry(entry))
	}
	return out
}

func normalizeEntry(entry any) SelectOption {
	switch v := entry.(type) {
	case SelectOption:
		if v.Label == "" {
			v.Label = v.Value
		}
		return v
	case *SelectOption:
		if v == nil {
			return SelectOption{}
		}
		return normalizeEntry(*v)
	case map[string]any:
		if raw, ok := v["value"]; ok {
			opt := SelectOption{Value: scalarText(raw)}
			if label, ok := v["label"]; ok {
				opt.Label = scalarText(label)
			}
			if opt.Label == "" {
				opt.Label = opt.Value
			}
			if disabled, ok := v["disabled"].(bool); ok {
				opt.Disabled = disabled
			}
			return opt
		}
		// No value member: treat the whole entry as a scalar.
		text := scalarText(v)
		return SelectOption{Value: text, Label: text}
	default:
		text := scalarText(entry)
		return SelectOption{Value: text, Label: text}
	}
}

func scalarText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
