// internal/smoketest/runner.go
package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwiater/medcheck/internal/appconfig"
	"github.com/mwiater/medcheck/internal/logging"
	"github.com/mwiater/medcheck/internal/util"
	"github.com/xeipuuv/gojsonschema"
)

const inputPreviewRunes = 60

// Outcome classifies a single case. Every case resolves to exactly one of
// these; a case never aborts the batch.
type Outcome string

const (
	// OutcomePass means the endpoint returned 200 with a valid analysis.
	OutcomePass Outcome = "PASS"
	// OutcomeFail means the endpoint answered with a non-200 status (or, in
	// strict mode, a condition that does not match the expected category).
	OutcomeFail Outcome = "FAIL"
	// OutcomeError means the request failed in transit, timed out, or the
	// 200 response body did not have the expected shape.
	OutcomeError Outcome = "ERROR"
)

// Result records the verdict for one case, in run order.
type Result struct {
	Case    string  `json:"case"`
	Outcome Outcome `json:"status"`
}

// predictRequest is the body posted to the prediction endpoint.
type predictRequest struct {
	Text string `json:"text"`
}

// predictionResponse is the success shape the prediction endpoint returns.
type predictionResponse struct {
	Analysis struct {
		Condition       string   `json:"condition"`
		Urgency         string   `json:"urgency"`
		Recommendations []string `json:"recommendations"`
	} `json:"analysis"`
}

// responseSchema gates 200 responses before any field access. A body that
// fails validation classifies the case as ERROR instead of aborting the run.
var responseSchema = map[string]any{
	"type":     "object",
	"required": []string{"analysis"},
	"properties": map[string]any{
		"analysis": map[string]any{
			"type":     "object",
			"required": []string{"condition", "urgency", "recommendations"},
			"properties": map[string]any{
				"condition":       map[string]any{"type": "string"},
				"urgency":         map[string]any{"type": "string"},
				"recommendations": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
	},
}

// Runner issues one prediction request per case against a fixed endpoint.
type Runner struct {
	client  *http.Client
	url     string
	timeout time.Duration
	strict  bool
	debug   bool
}

// NewRunner constructs a Runner configured with the application's endpoint
// and request timeout.
func NewRunner(cfg *appconfig.Config) *Runner {
	timeout := cfg.RequestTimeout()
	return &Runner{
		client:  &http.Client{Timeout: timeout},
		url:     cfg.Endpoint(),
		timeout: timeout,
		strict:  cfg.Strict,
		debug:   cfg.Debug,
	}
}

// Run executes the cases sequentially and returns one Result per case. A
// transport failure, timeout, or malformed response never stops the batch;
// the loop continues to the next case unconditionally.
func (r *Runner) Run(ctx context.Context, w io.Writer, cases []Case) []Result {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "🧪 MEDICAL AI TEST SUITE")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "⏰ Started: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	results := make([]Result, 0, len(cases))
	for i, c := range cases {
		fmt.Fprintf(w, "\n📋 Test %d/%d: %s\n", i+1, len(cases), c.Name)
		fmt.Fprintf(w, "   Input: %s\n", util.TruncateRunes(c.Text, inputPreviewRunes))

		outcome := r.check(ctx, w, c)
		results = append(results, Result{Case: c.Name, Outcome: outcome})
	}

	return results
}

// check classifies one case. Everything past request construction sits
// inside the per-case failure boundary: any error downgrades to ERROR.
func (r *Runner) check(ctx context.Context, w io.Writer, c Case) Outcome {
	body, err := json.Marshal(predictRequest{Text: c.Text})
	if err != nil {
		fmt.Fprintf(w, "   ❌ Error: %v\n", err)
		return OutcomeError
	}
	if r.debug {
		logging.LogRequest("MEDCHECK->API", r.url, c.Name, body)
	}

	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(w, "   ❌ Error: %v\n", err)
		return OutcomeError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		fmt.Fprintf(w, "   ❌ Error: %v\n", err)
		return OutcomeError
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(w, "   ❌ Error: %v\n", err)
		return OutcomeError
	}
	if r.debug {
		logging.LogRequest("API->MEDCHECK", r.url, c.Name, respBody)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(w, "   ❌ Status: Failed (%d)\n", resp.StatusCode)
		return OutcomeFail
	}

	prediction, err := parsePrediction(respBody)
	if err != nil {
		fmt.Fprintf(w, "   ❌ Error: %v\n", err)
		return OutcomeError
	}

	fmt.Fprintf(w, "   ✅ Status: Success\n")
	fmt.Fprintf(w, "   🎯 Condition: %s\n", prediction.Analysis.Condition)
	fmt.Fprintf(w, "   ⚠️  Urgency: %s\n", prediction.Analysis.Urgency)
	fmt.Fprintf(w, "   💊 Recommendations: %d\n", len(prediction.Analysis.Recommendations))

	if r.strict && c.Expected != "" && !strings.EqualFold(prediction.Analysis.Condition, c.Expected) {
		fmt.Fprintf(w, "   ❌ Condition mismatch: expected %q, got %q\n", c.Expected, prediction.Analysis.Condition)
		return OutcomeFail
	}

	return OutcomePass
}

// parsePrediction validates the 200 response body against the expected shape
// and decodes it.
func parsePrediction(body []byte) (predictionResponse, error) {
	schemaLoader := gojsonschema.NewGoLoader(responseSchema)
	documentLoader := gojsonschema.NewBytesLoader(body)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return predictionResponse{}, fmt.Errorf("could not parse response: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return predictionResponse{}, fmt.Errorf("unexpected response shape: %s", strings.Join(errs, ", "))
	}

	var prediction predictionResponse
	if err := json.Unmarshal(body, &prediction); err != nil {
		return predictionResponse{}, fmt.Errorf("could not parse response: %w", err)
	}
	return prediction, nil
}
