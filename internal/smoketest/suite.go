// internal/smoketest/suite.go
// Package smoketest exercises a prediction endpoint with a fixed set of
// inputs and classifies each case as PASS, FAIL, or ERROR.
package smoketest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Case is one smoke-test input. Expected is the category the prediction
// service should return for the text; it only affects the verdict when
// strict mode is enabled.
type Case struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	Expected string `json:"expected"`
}

// Suite is an externally supplied list of smoke-test cases.
type Suite struct {
	Cases []Case `json:"cases"`
}

// DefaultSuite returns the built-in medical triage cases, in run order.
func DefaultSuite() []Case {
	return []Case{
		{
			Name:     "Cardiac Emergency",
			Text:     "Severe chest pain, shortness of breath, sweating, pain radiating to jaw",
			Expected: "cardiac",
		},
		{
			Name:     "Stroke Symptoms",
			Text:     "Sudden facial drooping, arm weakness, speech difficulty, confusion",
			Expected: "neurological",
		},
		{
			Name:     "Appendicitis",
			Text:     "Right lower quadrant pain, nausea, vomiting, fever, rebound tenderness",
			Expected: "gastrointestinal",
		},
		{
			Name:     "Pneumonia",
			Text:     "High fever, productive cough, chest pain on breathing, fatigue",
			Expected: "respiratory",
		},
		{
			Name:     "Diabetic Emergency",
			Text:     "Excessive thirst, frequent urination, blurred vision, fruity breath odor",
			Expected: "endocrine",
		},
	}
}

// suiteSchema describes the expected shape of an external case suite file.
var suiteSchema = map[string]any{
	"type":     "object",
	"required": []string{"cases"},
	"properties": map[string]any{
		"cases": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"name", "text"},
				"properties": map[string]any{
					"name":     map[string]any{"type": "string"},
					"text":     map[string]any{"type": "string"},
					"expected": map[string]any{"type": "string"},
				},
			},
		},
	},
}

// LoadSuite reads an external case suite from path.
func LoadSuite(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading case suite: %w", err)
	}

	schemaLoader := gojsonschema.NewGoLoader(suiteSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("error parsing case suite: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return nil, fmt.Errorf("case suite validation failed: %s", strings.Join(errs, ", "))
	}

	var suite Suite
	if err := json.Unmarshal(raw, &suite); err != nil {
		return nil, fmt.Errorf("error parsing case suite: %w", err)
	}
	if len(suite.Cases) == 0 {
		return nil, fmt.Errorf("case suite contains no cases")
	}

	return suite.Cases, nil
}
