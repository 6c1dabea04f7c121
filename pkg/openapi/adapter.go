// Package openapi derives form definitions from OpenAPI 3 documents: the
// request-body schema of an operation maps onto control kinds so a handler
// can serve an edit form straight from its API contract.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formkit/pkg/controls"
	"github.com/goliatone/go-formkit/pkg/form"
)

// Media types probed for a request-body schema, in preference order.
var preferredMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// LoadFile reads and parses an OpenAPI document from disk.
func LoadFile(ctx context.Context, path string) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	return doc, nil
}

// LoadData parses an OpenAPI document from raw bytes.
func LoadData(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// FormForOperation locates an operation by id and converts its request
// schema into a form definition. Properties are emitted in name order so
// repeated runs produce the same form.
func FormForOperation(doc *openapi3.T, operationID string) (form.Form, error) {
	if doc == nil {
		return form.Form{}, errors.New("openapi: document is nil")
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return form.Form{}, errors.New("openapi: operation id is required")
	}

	method, path, op := findOperation(doc, operationID)
	if op == nil {
		return form.Form{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	out := form.Form{
		Name:   operationID,
		Action: path,
		Method: method,
	}

	schema := requestSchema(op)
	if schema == nil {
		return out, nil
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field := fieldFromSchema(name, ref.Value)
		_, field.Required = required[name]
		out.Fields = append(out.Fields, field)
	}

	return out, nil
}

func findOperation(doc *openapi3.T, operationID string) (method, path string, op *openapi3.Operation) {
	if doc.Paths == nil {
		return "", "", nil
	}
	for candidatePath, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		candidates := []struct {
			method string
			op     *openapi3.Operation
		}{
			{"GET", item.Get},
			{"PUT", item.Put},
			{"POST", item.Post},
			{"DELETE", item.Delete},
			{"PATCH", item.Patch},
		}
		for _, candidate := range candidates {
			if candidate.op != nil && candidate.op.OperationID == operationID {
				return candidate.method, candidatePath, candidate.op
			}
		}
	}
	return "", "", nil
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromSchema(name string, schema *openapi3.Schema) form.Field {
	field := form.Field{
		Name:    name,
		Label:   schema.Title,
		Help:    schema.Description,
		Default: schema.Default,
	}
	if field.Label == "" {
		field.Label = form.Labelize(name)
	}

	switch {
	case len(schema.Enum) > 0:
		field.Kind = controls.KindSelect
		field.Options = append([]any(nil), schema.Enum...)
	case schemaType(schema) == "boolean":
		field.Kind = controls.KindCheckbox
	case schemaType(schema) == "integer":
		field.Kind = controls.KindInput
		field.Type = "number"
		field.Step = 1
		applyBounds(&field, schema)
	case schemaType(schema) == "number":
		field.Kind = controls.KindInput
		field.Type = "number"
		field.Step = "any"
		applyBounds(&field, schema)
	default:
		applyStringShape(&field, schema)
	}

	return field
}

func applyBounds(field *form.Field, schema *openapi3.Schema) {
	if schema.Min != nil {
		field.Min = *schema.Min
	}
	if schema.Max != nil {
		field.Max = *schema.Max
	}
}

func applyStringShape(field *form.Field, schema *openapi3.Schema) {
	field.Kind = controls.KindInput

	switch schema.Format {
	case "textarea":
		field.Kind = controls.KindTextarea
	case "password":
		field.Type = "password"
	case "email":
		field.Type = "email"
	case "uri", "url":
		field.Type = "url"
	case "date":
		field.Type = "date"
	case "date-time":
		field.Type = "datetime-local"
	case "hidden":
		field.Kind = controls.KindHidden
	}

	if schema.MaxLength != nil {
		field.MaxLength = int(*schema.MaxLength)
	}
	if schema.MinLength != 0 {
		field.Attrs = map[string]any{"minlength": int(schema.MinLength)}
	}
	if schema.Pattern != "" {
		field.Pattern = schema.Pattern
	}
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
