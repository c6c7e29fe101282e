// internal/providers/openai/parse.go
package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"glossgen/internal/providers"
)

// Models return prose around their JSON payloads often enough that both
// parsers cut the payload out by bracket matching before validating it
// against a schema, the same way tool-call arguments are validated.

var termListSchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var definitionSchema = map[string]any{
	"type":     "object",
	"required": []string{"definition"},
	"properties": map[string]any{
		"definition":   map[string]any{"type": "string"},
		"context_note": map[string]any{"type": "string"},
	},
}

// parseTermList extracts the JSON array of terms from a raw model response,
// truncating to maxTerms.
func parseTermList(raw string, maxTerms int) ([]string, error) {
	payload, err := jsonSlice(raw, '[', ']')
	if err != nil {
		return nil, err
	}
	if err := validate(termListSchema, payload); err != nil {
		return nil, err
	}

	var terms []string
	if err := json.Unmarshal(payload, &terms); err != nil {
		return nil, fmt.Errorf("unmarshal term list: %w", err)
	}
	if maxTerms > 0 && len(terms) > maxTerms {
		terms = terms[:maxTerms]
	}
	return terms, nil
}

// parseDefinition extracts the definition object from a raw model response.
func parseDefinition(raw string) (providers.Definition, error) {
	payload, err := jsonSlice(raw, '{', '}')
	if err != nil {
		return providers.Definition{}, err
	}
	if err := validate(definitionSchema, payload); err != nil {
		return providers.Definition{}, err
	}

	var parsed struct {
		Definition  string `json:"definition"`
		ContextNote string `json:"context_note"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return providers.Definition{}, fmt.Errorf("unmarshal definition: %w", err)
	}
	if strings.TrimSpace(parsed.Definition) == "" {
		return providers.Definition{}, fmt.Errorf("model returned an empty definition")
	}
	return providers.Definition{
		Definition:  strings.TrimSpace(parsed.Definition),
		ContextNote: strings.TrimSpace(parsed.ContextNote),
	}, nil
}

// jsonSlice cuts the outermost opening..closing span out of raw.
func jsonSlice(raw string, opening, closing byte) ([]byte, error) {
	start := strings.IndexByte(raw, opening)
	end := strings.LastIndexByte(raw, closing)
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON payload delimited by %q..%q in response", opening, closing)
	}
	return []byte(raw[start : end+1]), nil
}

// validate checks a JSON payload against a schema definition.
func validate(schema map[string]any, payload []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("response payload failed schema validation: %s", strings.Join(details, "; "))
	}
	return nil
}
