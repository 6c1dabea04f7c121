package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formkit/pkg/controls"
	"github.com/goliatone/go-formkit/pkg/form"
)

// Fill walks the definition's fields and collects a value for each one
// through the driver. Hidden fields keep their declared default without
// prompting; submit, button, and label kinds carry no data and are
// skipped. The returned map is keyed by field name.
func Fill(ctx context.Context, driver Driver, def form.Form) (map[string]any, error) {
	if driver == nil {
		driver = NewDriver()
	}

	values := make(map[string]any, len(def.Fields))
	for _, field := range def.Fields {
		value, prompted, err := fillField(ctx, driver, field)
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
		if prompted {
			values[field.Name] = value
		}
	}
	return values, nil
}

func fillField(ctx context.Context, driver Driver, field form.Field) (any, bool, error) {
	kind := field.Kind
	if kind == "" {
		kind = controls.KindInput
	}

	message := field.Label
	if message == "" {
		message = form.Labelize(field.Name)
	}

	switch kind {
	case controls.KindSubmit, controls.KindButton, controls.KindLabel:
		return nil, false, nil

	case controls.KindHidden:
		return field.Default, field.Default != nil, nil

	case controls.KindCheckbox, controls.KindRadio:
		checked, err := driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: defaultBool(field.Default),
			Help:    field.Help,
		})
		if err != nil {
			return nil, false, err
		}
		return checked, true, nil

	case controls.KindSelect:
		normalized := controls.Normalize(field.Options)
		if len(normalized) == 0 {
			return nil, false, nil
		}
		labels := make([]string, 0, len(normalized))
		defaultIndex := -1
		defaultValue := defaultText(field.Default)
		for i, opt := range normalized {
			labels = append(labels, opt.Label)
			if defaultValue != "" && opt.Value == defaultValue {
				defaultIndex = i
			}
		}
		chosen, err := driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         field.Help,
		})
		if err != nil {
			return nil, false, err
		}
		if chosen < 0 || chosen >= len(normalized) {
			return nil, false, nil
		}
		return normalized[chosen].Value, true, nil

	case controls.KindTextarea:
		text, err := driver.Multiline(ctx, InputConfig{
			Message: message,
			Default: defaultText(field.Default),
			Help:    field.Help,
		})
		if err != nil {
			return nil, false, err
		}
		return text, true, nil

	default:
		cfg := InputConfig{
			Message: message,
			Default: defaultText(field.Default),
			Help:    field.Help,
		}
		if field.Type == "password" {
			text, err := driver.Password(ctx, cfg)
			if err != nil {
				return nil, false, err
			}
			return text, true, nil
		}
		text, err := driver.Input(ctx, cfg)
		if err != nil {
			return nil, false, err
		}
		return text, true, nil
	}
}

func defaultText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func defaultBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes", "checked":
			return true
		}
		return false
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}
