package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds one compiled validator per Schema.Name.
var compiledSchemas = &schemaSet{byName: make(map[string]*jsonschema.Schema)}

type schemaSet struct {
	mu     sync.Mutex
	byName map[string]*jsonschema.Schema
}

func (s *schemaSet) get(schema *Schema) (*jsonschema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.byName[schema.Name]; ok {
		return c, nil
	}

	// The compiler wants decoded JSON values, not Go maps with typed slices.
	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	s.byName[schema.Name] = compiled
	return compiled, nil
}

// stripFences removes a Markdown code fence some models wrap JSON in.
func stripFences(raw []byte) []byte {
	t := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(t, []byte("```")) {
		return t
	}
	if nl := bytes.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	} else {
		return t
	}
	t = bytes.TrimSuffix(bytes.TrimSpace(t), []byte("```"))
	return bytes.TrimSpace(t)
}

// validateResponse checks raw against schema and returns the cleaned JSON.
// With no schema raw is returned untouched.
func validateResponse(schema *Schema, raw json.RawMessage) (json.RawMessage, error) {
	if schema == nil {
		return raw, nil
	}
	body := json.RawMessage(stripFences(raw))

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("%s: not JSON: %w", schema.Name, err)}
	}
	compiled, err := compiledSchemas.get(schema)
	if err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("%s: compile schema: %w", schema.Name, err)}
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("%s: %w", schema.Name, err)}
	}
	return body, nil
}
