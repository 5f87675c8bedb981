package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://cardiosim/bank.json"

// documentSchema describes the question bank document.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"visual", "multiple_choice", "open"},
	"properties": map[string]any{
		"visual": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "correct_ms", "tolerance_ms"},
				"properties": map[string]any{
					"id":              map[string]any{"type": "string", "minLength": 1},
					"topic":           map[string]any{"type": "string"},
					"image":           map[string]any{"type": "string"},
					"instruction":     map[string]any{"type": "string"},
					"correct_ms":      map[string]any{"type": "integer", "minimum": 0},
					"tolerance_ms":    map[string]any{"type": "integer", "minimum": 0},
					"corrected_image": map[string]any{"type": "string"},
					"valid_zone_pairs": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"x_min", "x_max"},
							"properties": map[string]any{
								"x_min": map[string]any{"type": "number"},
								"x_max": map[string]any{"type": "number"},
							},
						},
					},
				},
			},
		},
		"multiple_choice": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "question", "options", "correct_answer"},
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"topic":    map[string]any{"type": "string"},
					"question": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":                 "object",
						"minProperties":        2,
						"additionalProperties": map[string]any{"type": "string"},
					},
					"correct_answer": map[string]any{"type": "string", "minLength": 1},
				},
			},
		},
		"open": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "correct_diagnosis", "key_features"},
				"properties": map[string]any{
					"id":                map[string]any{"type": "string", "minLength": 1},
					"topic":             map[string]any{"type": "string"},
					"image":             map[string]any{"type": "string"},
					"question":          map[string]any{"type": "string"},
					"correct_diagnosis": map[string]any{"type": "string", "minLength": 1},
					"key_features": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the document schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain decoded values.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument checks a decoded bank document against the schema.
func validateDocument(doc any) error {
	sch, err := compiled()
	if err != nil {
		return err
	}
	return sch.Validate(doc)
}
