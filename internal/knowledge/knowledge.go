// internal/knowledge/knowledge.go
// Package knowledge loads the discovery knowledge base and computes
// aggregate statistics over it.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Discovery is one record in the knowledge base: a claimed finding with a
// confidence score and lifecycle status.
type Discovery struct {
	Title      string  `json:"title"`
	Confidence float64 `json:"confidence"`
	Status     string  `json:"status"`
	Timestamp  string  `json:"timestamp"`
}

// Base is the knowledge base document as loaded from disk. It is read once
// per run and never written back.
type Base struct {
	Discoveries []Discovery `json:"discoveries"`
}

// baseSchema describes the expected shape of the knowledge base document.
// Every discovery must carry all four keys; confidence must be numeric so
// that averaging is well-defined.
var baseSchema = map[string]any{
	"type":     "object",
	"required": []string{"discoveries"},
	"properties": map[string]any{
		"discoveries": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"title", "confidence", "status", "timestamp"},
				"properties": map[string]any{
					"title":      map[string]any{"type": "string"},
					"confidence": map[string]any{"type": "number"},
					"status":     map[string]any{"type": "string"},
					"timestamp":  map[string]any{"type": "string"},
				},
			},
		},
	},
}

// Load reads and validates the knowledge base at path. A missing file,
// malformed JSON, or a document that fails schema validation is fatal for
// the report run.
func Load(path string) (Base, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Base{}, fmt.Errorf("error reading knowledge base: %w", err)
	}

	schemaLoader := gojsonschema.NewGoLoader(baseSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return Base{}, fmt.Errorf("error parsing knowledge base: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return Base{}, fmt.Errorf("knowledge base validation failed: %s", strings.Join(errs, ", "))
	}

	var base Base
	if err := json.Unmarshal(raw, &base); err != nil {
		return Base{}, fmt.Errorf("error parsing knowledge base: %w", err)
	}

	return base, nil
}
