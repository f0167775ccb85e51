// Package stats contains session metrics and reporting helpers.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/verte-zerg/numdrill/internal/model"
)

// Accuracy returns the first-try accuracy as a rounded percent.
// Defined as 0 when no trials have started.
func Accuracy(firstTry, started int) int {
	if started <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(firstTry) / float64(started)))
}

// SessionMetrics summarizes attempt timings over the record history.
// Averages and best cover correct attempts only.
func SessionMetrics(records []model.TrialRecord) (avgMs, bestMs int64, attempts int) {
	attempts = len(records)
	var sum int64
	correct := 0
	for _, rec := range records {
		if !rec.Correct {
			continue
		}
		sum += rec.ElapsedMs
		if correct == 0 || rec.ElapsedMs < bestMs {
			bestMs = rec.ElapsedMs
		}
		correct++
	}
	if correct > 0 {
		avgMs = sum / int64(correct)
	}
	return avgMs, bestMs, attempts
}

// DigitRows renders per-digit aggregates as table rows sorted by lowest
// accuracy first, then by digit.
func DigitRows(aggs map[byte]model.DigitAggregate) [][]string {
	type row struct {
		digit byte
		acc   float64
		lat   float64
		agg   model.DigitAggregate
	}
	rows := make([]row, 0, len(aggs))
	for d, agg := range aggs {
		total := agg.Correct + agg.Incorrect
		acc := 0.0
		if total > 0 {
			acc = float64(agg.Correct) / float64(total)
		}
		lat := 0.0
		if agg.LatencyCount > 0 {
			lat = float64(agg.LatencySumMs) / float64(agg.LatencyCount)
		}
		rows = append(rows, row{digit: d, acc: acc, lat: lat, agg: agg})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].acc == rows[j].acc {
			return rows[i].digit < rows[j].digit
		}
		return rows[i].acc < rows[j].acc
	})

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			string(r.digit),
			fmt.Sprintf("%.0f%%", r.acc*100),
			fmt.Sprintf("%.0f", r.lat),
			fmt.Sprintf("%d", r.agg.Correct),
			fmt.Sprintf("%d", r.agg.Incorrect),
		})
	}
	return out
}

// DigitTableHeaders are the column headers matching DigitRows.
var DigitTableHeaders = []string{"Digit", "Accuracy", "Avg Latency (ms)", "Correct", "Incorrect"}

// DigitTableAlignment right-aligns the numeric columns.
var DigitTableAlignment = map[int]bool{1: true, 2: true, 3: true, 4: true}

// FormatDigitTable renders the per-digit report lines.
func FormatDigitTable(aggs map[byte]model.DigitAggregate) []string {
	rows := DigitRows(aggs)
	if len(rows) == 0 {
		return nil
	}
	return formatTable(DigitTableHeaders, rows, DigitTableAlignment)
}
