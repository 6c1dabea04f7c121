package openapi

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formkit/pkg/controls"
	"github.com/goliatone/go-formkit/pkg/form"
)

const articleSpec = `{
  "openapi": "3.0.3",
  "info": {"title": "articles", "version": "1.0.0"},
  "paths": {
    "/articles": {
      "post": {
        "operationId": "createArticle",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["title"],
                "properties": {
                  "title": {"type": "string", "maxLength": 120, "pattern": "^[A-Z]"},
                  "body": {"type": "string", "format": "textarea", "description": "Main content"},
                  "status": {"type": "string", "enum": ["draft", "published"], "default": "draft"},
                  "published": {"type": "boolean", "title": "Published?"},
                  "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                  "authorEmail": {"type": "string", "format": "email"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func loadArticleForm(t *testing.T) form.Form {
	t.Helper()
	doc, err := LoadData(context.Background(), []byte(articleSpec))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	def, err := FormForOperation(doc, "createArticle")
	if err != nil {
		t.Fatalf("derive form: %v", err)
	}
	return def
}

func TestFormForOperation_Header(t *testing.T) {
	def := loadArticleForm(t)

	if def.Name != "createArticle" {
		t.Fatalf("expected operation id as form name, got %q", def.Name)
	}
	if def.Action != "/articles" || def.Method != "POST" {
		t.Fatalf("endpoint mismatch: %+v", def)
	}
}

func TestFormForOperation_FieldsSortedByName(t *testing.T) {
	def := loadArticleForm(t)

	var names []string
	for _, field := range def.Fields {
		names = append(names, field.Name)
	}
	want := []string{"authorEmail", "body", "published", "rating", "status", "title"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("field order mismatch: got %v, want %v", names, want)
	}
}

func TestFormForOperation_KindMapping(t *testing.T) {
	def := loadArticleForm(t)

	fields := make(map[string]form.Field, len(def.Fields))
	for _, field := range def.Fields {
		fields[field.Name] = field
	}

	title := fields["title"]
	if title.Kind != controls.KindInput || !title.Required {
		t.Fatalf("title mapping wrong: %+v", title)
	}
	if title.MaxLength != 120 || title.Pattern != "^[A-Z]" {
		t.Fatalf("title constraints lost: %+v", title)
	}

	body := fields["body"]
	if body.Kind != controls.KindTextarea {
		t.Fatalf("expected textarea for textarea format, got %+v", body)
	}
	if body.Help != "Main content" {
		t.Fatalf("description should become help text, got %q", body.Help)
	}

	status := fields["status"]
	if status.Kind != controls.KindSelect || len(status.Options) != 2 {
		t.Fatalf("enum should map to select, got %+v", status)
	}
	if status.Default != "draft" {
		t.Fatalf("schema default lost: %v", status.Default)
	}

	published := fields["published"]
	if published.Kind != controls.KindCheckbox {
		t.Fatalf("boolean should map to checkbox, got %+v", published)
	}
	if published.Label != "Published?" {
		t.Fatalf("schema title should win over derived label, got %q", published.Label)
	}

	rating := fields["rating"]
	if rating.Kind != controls.KindInput || rating.Type != "number" {
		t.Fatalf("integer should map to number input, got %+v", rating)
	}
	if rating.Min != 1.0 || rating.Max != 5.0 {
		t.Fatalf("bounds lost: %+v", rating)
	}
	if rating.Step != 1 {
		t.Fatalf("integer step should be 1, got %v", rating.Step)
	}

	email := fields["authorEmail"]
	if email.Type != "email" {
		t.Fatalf("email format should map to email input, got %+v", email)
	}
	if email.Label != "Author Email" {
		t.Fatalf("expected derived label, got %q", email.Label)
	}
}

func TestFormForOperation_UnknownOperation(t *testing.T) {
	doc, err := LoadData(context.Background(), []byte(articleSpec))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if _, err := FormForOperation(doc, "missing"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func TestLoadData_Empty(t *testing.T) {
	if _, err := LoadData(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
