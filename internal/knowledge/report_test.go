// internal/knowledge/report_test.go
package knowledge

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func discovery(title string, confidence float64, status string) Discovery {
	return Discovery{Title: title, Confidence: confidence, Status: status, Timestamp: "2024-01-01T00:00:00"}
}

// TestSummarizeEmpty verifies the empty knowledge base yields a zero total
// with no confidence, status, or latest data.
func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil)
	if summary.Total != 0 {
		t.Fatalf("expected total 0, got %d", summary.Total)
	}
	if summary.StatusCounts != nil || summary.Latest != nil {
		t.Fatalf("expected no sections for empty base, got %+v", summary)
	}
}

// TestSummarizeAverage verifies the arithmetic mean over all confidences.
func TestSummarizeAverage(t *testing.T) {
	t.Parallel()

	summary := Summarize([]Discovery{
		discovery("A", 0.8, "verified"),
		discovery("B", 0.6, "pending"),
	})
	if summary.Total != 2 {
		t.Fatalf("expected total 2, got %d", summary.Total)
	}
	if got := fmt.Sprintf("%.1f%%", summary.AvgConfidence*100); got != "70.0%" {
		t.Fatalf("expected average 70.0%%, got %s", got)
	}
}

// TestSummarizeStatusOrder verifies the status breakdown keeps
// first-occurrence order and its counts sum to the total.
func TestSummarizeStatusOrder(t *testing.T) {
	t.Parallel()

	summary := Summarize([]Discovery{
		discovery("A", 0.9, "pending"),
		discovery("B", 0.8, "verified"),
		discovery("C", 0.7, "pending"),
		discovery("D", 0.6, "rejected"),
		discovery("E", 0.5, "verified"),
	})

	wantOrder := []string{"pending", "verified", "rejected"}
	if len(summary.StatusCounts) != len(wantOrder) {
		t.Fatalf("expected %d statuses, got %d", len(wantOrder), len(summary.StatusCounts))
	}
	sum := 0
	for i, sc := range summary.StatusCounts {
		if sc.Status != wantOrder[i] {
			t.Fatalf("status %d: got %q want %q", i, sc.Status, wantOrder[i])
		}
		sum += sc.Count
	}
	if sum != summary.Total {
		t.Fatalf("status counts sum to %d, want %d", sum, summary.Total)
	}
}

// TestSummarizeLatest verifies the latest section holds min(N, 5) entries in
// original sequence order.
func TestSummarizeLatest(t *testing.T) {
	t.Parallel()

	var discoveries []Discovery
	for i := 1; i <= 7; i++ {
		discoveries = append(discoveries, discovery(fmt.Sprintf("D%d", i), 0.5, "pending"))
	}
	summary := Summarize(discoveries)
	if len(summary.Latest) != 5 {
		t.Fatalf("expected 5 latest entries, got %d", len(summary.Latest))
	}
	for i, want := range []string{"D3", "D4", "D5", "D6", "D7"} {
		if summary.Latest[i].Title != want {
			t.Fatalf("latest %d: got %q want %q", i, summary.Latest[i].Title, want)
		}
	}

	short := Summarize(discoveries[:3])
	if len(short.Latest) != 3 {
		t.Fatalf("expected 3 latest entries, got %d", len(short.Latest))
	}
}

// TestWriteReportEmpty verifies only the header, total, and footer appear
// for an empty knowledge base.
func TestWriteReportEmpty(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	WriteReport(&b, Summarize(nil), time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	out := b.String()

	if !strings.Contains(out, "Total Discoveries: 0") {
		t.Fatalf("expected zero total, got:\n%s", out)
	}
	if !strings.Contains(out, "2024-06-01 12:00:00") {
		t.Fatalf("expected generation timestamp, got:\n%s", out)
	}
	for _, absent := range []string{"Average Confidence", "Status Breakdown", "Latest 5 Discoveries"} {
		if strings.Contains(out, absent) {
			t.Fatalf("section %q should be omitted for an empty base:\n%s", absent, out)
		}
	}
}

// TestWriteReportSingle verifies the end-to-end single-record report: total
// 1, average 90.0%, one verified status, and entry 1 in the latest section.
func TestWriteReportSingle(t *testing.T) {
	t.Parallel()

	summary := Summarize([]Discovery{discovery("A", 0.9, "verified")})

	var b strings.Builder
	WriteReport(&b, summary, time.Now())
	out := b.String()

	if !strings.Contains(out, "Total Discoveries: 1") {
		t.Fatalf("expected total 1, got:\n%s", out)
	}
	if !strings.Contains(out, "Average Confidence: 90.0%") {
		t.Fatalf("expected average 90.0%%, got:\n%s", out)
	}
	if !strings.Contains(out, "verified: 1") {
		t.Fatalf("expected status breakdown, got:\n%s", out)
	}
	if !strings.Contains(out, "1. A") {
		t.Fatalf("expected latest entry re-indexed from 1, got:\n%s", out)
	}
}

// TestWriteReportReindexesLatest verifies latest entries are numbered from 1
// regardless of their position in the full sequence.
func TestWriteReportReindexesLatest(t *testing.T) {
	t.Parallel()

	var discoveries []Discovery
	for i := 1; i <= 8; i++ {
		discoveries = append(discoveries, discovery(fmt.Sprintf("D%d", i), 0.5, "pending"))
	}

	var b strings.Builder
	WriteReport(&b, Summarize(discoveries), time.Now())
	out := b.String()

	if !strings.Contains(out, "1. D4") {
		t.Fatalf("expected first latest entry to be D4 numbered 1, got:\n%s", out)
	}
	if !strings.Contains(out, "5. D8") {
		t.Fatalf("expected last latest entry to be D8 numbered 5, got:\n%s", out)
	}
}
