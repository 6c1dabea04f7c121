// Command formkit renders form definitions to HTML from the command line.
// Definitions come from a YAML/JSON file or an OpenAPI document, and the
// -fill flag collects values interactively before rendering.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/openapi"
	"github.com/goliatone/go-formkit/pkg/prompt"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/render/htmlform"
	"github.com/goliatone/go-formkit/pkg/render/template"
)

func main() {
	definition := flag.String("definition", "", "form definition path (YAML or JSON)")
	openapiDoc := flag.String("openapi", "", "OpenAPI document path")
	operation := flag.String("operation", "", "operation ID to derive the form from")
	output := flag.String("output", "", "output file (stdout if empty)")
	page := flag.Bool("page", false, "wrap the fragment in the built-in page layout")
	title := flag.String("title", "", "page title when -page is set")
	fill := flag.Bool("fill", false, "collect values interactively and print them as JSON")
	flag.Parse()

	ctx := context.Background()

	def, err := loadForm(ctx, *definition, *openapiDoc, *operation)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	options := render.Options{}
	if *fill {
		values, err := prompt.Fill(ctx, prompt.NewDriver(), def)
		if err != nil {
			log.Fatalf("Failed to collect values: %v", err)
		}
		payload, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode values: %v", err)
		}
		fmt.Fprintln(os.Stderr, string(payload))
		options.Values = values
	}

	outputHTML, err := htmlform.New().Render(ctx, def, options)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *page {
		engine, err := template.Builtin()
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
		pageTitle := *title
		if pageTitle == "" {
			pageTitle = def.Name
		}
		rendered, err := engine.RenderTemplate(template.LayoutTemplate, map[string]any{
			"title":   pageTitle,
			"content": string(outputHTML),
		})
		if err != nil {
			log.Fatalf("Failed to render layout: %v", err)
		}
		outputHTML = []byte(rendered)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	fmt.Println(string(outputHTML))
}

func loadForm(ctx context.Context, definition, openapiDoc, operation string) (form.Form, error) {
	switch {
	case openapiDoc != "":
		if operation == "" {
			return form.Form{}, fmt.Errorf("-operation is required with -openapi")
		}
		doc, err := openapi.LoadFile(ctx, openapiDoc)
		if err != nil {
			return form.Form{}, err
		}
		return openapi.FormForOperation(doc, operation)
	case definition != "":
		data, err := os.ReadFile(definition)
		if err != nil {
			return form.Form{}, err
		}
		return form.Parse(data)
	default:
		return form.Form{}, fmt.Errorf("either -definition or -openapi is required")
	}
}
