// internal/knowledge/report.go
package knowledge

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mwiater/medcheck/internal/util"
)

const latestCount = 5

// StatusCount is one entry in the status breakdown. Entries are ordered by
// first occurrence in the discovery sequence, not sorted.
type StatusCount struct {
	Status string
	Count  int
}

// Summary holds the aggregate statistics for one report run.
type Summary struct {
	Total         int
	AvgConfidence float64
	StatusCounts  []StatusCount
	Latest        []Discovery
}

// Summarize computes the report statistics over the discovery sequence.
func Summarize(discoveries []Discovery) Summary {
	summary := Summary{Total: len(discoveries)}
	if summary.Total == 0 {
		return summary
	}

	var sum float64
	index := make(map[string]int)
	for _, d := range discoveries {
		sum += d.Confidence
		if i, seen := index[d.Status]; seen {
			summary.StatusCounts[i].Count++
			continue
		}
		index[d.Status] = len(summary.StatusCounts)
		summary.StatusCounts = append(summary.StatusCounts, StatusCount{Status: d.Status, Count: 1})
	}
	summary.AvgConfidence = sum / float64(summary.Total)

	tail := util.Min(summary.Total, latestCount)
	summary.Latest = discoveries[summary.Total-tail:]

	return summary
}

// WriteReport renders the knowledge base analysis to w. The confidence and
// status sections are omitted entirely for an empty knowledge base; the
// header timestamp reflects when the report was generated, not any record.
func WriteReport(w io.Writer, summary Summary, generatedAt time.Time) {
	rule := strings.Repeat("=", 70)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "🧠 KNOWLEDGE BASE ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "⏰ %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(w, "📚 Total Discoveries: %d\n", summary.Total)

	if summary.Total > 0 {
		fmt.Fprintf(w, "📊 Average Confidence: %s\n", formatPercent(summary.AvgConfidence))

		fmt.Fprintf(w, "\n📈 Status Breakdown:\n")
		for _, sc := range summary.StatusCounts {
			fmt.Fprintf(w, "   %s: %d\n", sc.Status, sc.Count)
		}

		fmt.Fprintf(w, "\n🔬 Latest %d Discoveries:\n", latestCount)
		for i, d := range summary.Latest {
			fmt.Fprintf(w, "\n   %d. %s\n", i+1, d.Title)
			fmt.Fprintf(w, "      Confidence: %s\n", formatPercent(d.Confidence))
			fmt.Fprintf(w, "      Status: %s\n", d.Status)
			fmt.Fprintf(w, "      Time: %s\n", d.Timestamp)
		}
	}

	fmt.Fprintf(w, "\n%s\n", rule)
}

// formatPercent renders a [0,1] confidence as a percentage with one decimal
// place, relying on fmt's default float64 rounding.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
