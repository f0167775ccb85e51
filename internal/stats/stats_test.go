package stats

import (
	"strings"
	"testing"

	"github.com/verte-zerg/numdrill/internal/model"
)

func TestAccuracy(t *testing.T) {
	cases := []struct {
		firstTry, started, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 8, 13},
	}
	for _, tc := range cases {
		if got := Accuracy(tc.firstTry, tc.started); got != tc.want {
			t.Fatalf("Accuracy(%d, %d) = %d, want %d", tc.firstTry, tc.started, got, tc.want)
		}
	}
}

func TestSessionMetrics(t *testing.T) {
	records := []model.TrialRecord{
		{Target: "47", Response: "57", Correct: false, ElapsedMs: 900},
		{Target: "47", Response: "47", Correct: true, ElapsedMs: 1500},
		{Target: "82", Response: "82", Correct: true, ElapsedMs: 1100},
	}
	avg, best, attempts := SessionMetrics(records)
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
	if avg != 1300 {
		t.Fatalf("avg = %d, want 1300 (failed attempts excluded)", avg)
	}
	if best != 1100 {
		t.Fatalf("best = %d, want 1100", best)
	}
}

func TestSessionMetricsEmpty(t *testing.T) {
	avg, best, attempts := SessionMetrics(nil)
	if avg != 0 || best != 0 || attempts != 0 {
		t.Fatalf("expected zero metrics, got avg=%d best=%d attempts=%d", avg, best, attempts)
	}
}

func TestDigitRowsSortsWorstFirst(t *testing.T) {
	aggs := map[byte]model.DigitAggregate{
		'4': {Correct: 4, Incorrect: 0, LatencySumMs: 2000, LatencyCount: 4},
		'7': {Correct: 1, Incorrect: 3, LatencySumMs: 3000, LatencyCount: 4},
		'9': {Correct: 2, Incorrect: 2, LatencySumMs: 1000, LatencyCount: 4},
	}
	rows := DigitRows(aggs)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "7" || rows[1][0] != "9" || rows[2][0] != "4" {
		t.Fatalf("unexpected order: %v %v %v", rows[0][0], rows[1][0], rows[2][0])
	}
	if rows[0][1] != "25%" {
		t.Fatalf("accuracy cell = %q, want 25%%", rows[0][1])
	}
	if rows[0][2] != "750" {
		t.Fatalf("latency cell = %q, want 750", rows[0][2])
	}
}

func TestFormatDigitTableAligns(t *testing.T) {
	aggs := map[byte]model.DigitAggregate{
		'1': {Correct: 10, Incorrect: 1, LatencySumMs: 5000, LatencyCount: 10},
	}
	lines := FormatDigitTable(aggs)
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Digit") {
		t.Fatalf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "91%") {
		t.Fatalf("row missing accuracy: %q", lines[1])
	}
}

func TestFormatDigitTableEmpty(t *testing.T) {
	if lines := FormatDigitTable(nil); lines != nil {
		t.Fatalf("expected nil for empty aggregates, got %v", lines)
	}
}
