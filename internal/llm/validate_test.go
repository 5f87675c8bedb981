package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func verdictTestSchema() *Schema {
	return &Schema{
		Name: "test-verdict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"verdict":  map[string]any{"type": "string", "enum": []any{"correct", "incorrect"}},
				"feedback": map[string]any{"type": "string"},
				"score":    map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"verdict", "feedback"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "complete", raw: `{"verdict":"correct","feedback":"Sinus rhythm.","score":3}`},
		{name: "optional omitted", raw: `{"verdict":"incorrect","feedback":"Axis missed."}`},
		{name: "missing required", raw: `{"verdict":"correct"}`, wantErr: true},
		{name: "wrong type", raw: `{"verdict":"correct","feedback":"ok","score":"three"}`, wantErr: true},
		{name: "outside enum", raw: `{"verdict":"maybe","feedback":"ok"}`, wantErr: true},
		{name: "malformed", raw: `{verdict}`, wantErr: true},
		{name: "empty", raw: ``, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateResponse(verdictTestSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want *ErrInvalidResponse", err)
			}
			if string(invalid.Content) != tt.raw {
				t.Errorf("Content = %q, want the raw output", invalid.Content)
			}
		})
	}
}

func TestValidateResponse_ErrorNamesSchema(t *testing.T) {
	_, err := validateResponse(verdictTestSchema(), json.RawMessage(`{}`))
	if err == nil || !strings.Contains(err.Error(), "test-verdict") {
		t.Fatalf("err = %v, want it to mention the schema name", err)
	}
}

func TestValidateResponse_StripsCodeFence(t *testing.T) {
	raw := json.RawMessage("```json\n{\"verdict\":\"correct\",\"feedback\":\"Good.\"}\n```\n")
	got, err := validateResponse(verdictTestSchema(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"verdict":"correct","feedback":"Good."}` {
		t.Fatalf("got %s", got)
	}
}

func TestValidateResponse_NilSchemaPassesThrough(t *testing.T) {
	raw := json.RawMessage("Start the caliper at the P wave onset.")
	got, err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(raw) {
		t.Fatalf("got %q, want input unchanged", got)
	}
}

func TestStripFences(t *testing.T) {
	tests := map[string]string{
		`{"a":1}`:              `{"a":1}`,
		"  {\"a\":1}\n":        `{"a":1}`,
		"```\n{\"a\":1}\n```":  `{"a":1}`,
		"```json\n[1,2]\n```":  `[1,2]`,
		"```":                  "```",
	}
	for in, want := range tests {
		if got := string(stripFences([]byte(in))); got != want {
			t.Errorf("stripFences(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateResponse_NestedArray(t *testing.T) {
	schema := &Schema{
		Name: "test-marks",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"marks": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number"},
				},
			},
			"required": []any{"marks"},
		},
	}
	if _, err := validateResponse(schema, json.RawMessage(`{"marks":[12.5,40]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := validateResponse(schema, json.RawMessage(`{"marks":["a"]}`)); err == nil {
		t.Fatal("expected error for non-numeric mark")
	}
}
