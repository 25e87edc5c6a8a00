// internal/smoketest/summary.go
package smoketest

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	passMark  = color.New(color.FgGreen).SprintFunc()
	failMark  = color.New(color.FgRed).SprintFunc()
	errorMark = color.New(color.FgYellow).SprintFunc()
)

// mark returns the presentation glyph for an outcome. The underlying
// semantic value stays one of exactly three outcomes.
func mark(o Outcome) string {
	switch o {
	case OutcomePass:
		return passMark("✅ PASS")
	case OutcomeFail:
		return failMark("❌ FAIL")
	default:
		return errorMark("❌ ERROR")
	}
}

// Passed counts the PASS entries in results.
func Passed(results []Result) int {
	passed := 0
	for _, r := range results {
		if r.Outcome == OutcomePass {
			passed++
		}
	}
	return passed
}

// WriteSummary renders the per-case verdicts in run order followed by the
// aggregate pass line.
func WriteSummary(w io.Writer, results []Result) {
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "📊 TEST RESULTS SUMMARY")
	fmt.Fprintln(w, rule)
	for _, r := range results {
		fmt.Fprintf(w, "%s %s\n", mark(r.Outcome), r.Case)
	}

	passed := Passed(results)
	total := len(results)
	percent := 0.0
	if total > 0 {
		percent = float64(passed) / float64(total) * 100
	}
	fmt.Fprintf(w, "\n✅ Passed: %d/%d (%.0f%%)\n", passed, total, percent)
	fmt.Fprintln(w, rule)
}
