// Package aggregate derives summary views over normalized records. Every
// view is recomputed in full on each request; nothing is cached.
package aggregate

import (
	"math"
	"sort"
	"time"

	"admin-service/internal/models"
)

// Revenue sums normalized purchase amounts over the inclusive window
// [start, end], partitioned by purchase type. Purchases with no purchase
// date, or with an unrecognised type, still count toward the totals when
// dated inside the window; the typed partitions only see known types.
func Revenue(purchases []models.Purchase, start, end time.Time) models.RevenueMetrics {
	var m models.RevenueMetrics
	for _, p := range purchases {
		if p.PurchaseDate == nil {
			continue
		}
		d := *p.PurchaseDate
		if d.Before(start) || d.After(end) {
			continue
		}
		m.TotalRevenue += p.Amount
		m.TotalPurchases++
		switch p.Type {
		case models.PurchaseTypeTest:
			m.TestRevenue += p.Amount
			m.TestPurchases++
		case models.PurchaseTypeInterview:
			m.InterviewRevenue += p.Amount
			m.InterviewPurchases++
		}
	}
	return m
}

// CategoryPerformance groups results by testId and rolls each group up.
// Two source quirks are kept deliberately: lowestScore starts at 100 (a
// zero-attempt group reports 100), and the pass match on resultStatus is
// exact and case-sensitive, so "Pass" counts as a fail.
func CategoryPerformance(results []models.TestResult) []models.CategorySummary {
	groups := map[string]*models.CategorySummary{}
	totals := map[string]struct {
		score float64
		time  int
	}{}

	for _, res := range results {
		testID := res.TestID
		if testID == "" {
			testID = "unknown"
		}
		cat, ok := groups[testID]
		if !ok {
			name := res.TestName
			if name == "" {
				name = "Unknown Test"
			}
			cat = &models.CategorySummary{TestID: testID, TestName: name, LowestScore: 100}
			groups[testID] = cat
		}
		cat.Attempts++
		if res.Percentage > cat.HighestScore {
			cat.HighestScore = res.Percentage
		}
		if res.Percentage < cat.LowestScore {
			cat.LowestScore = res.Percentage
		}
		if res.ResultStatus == models.ResultStatusPass {
			cat.PassCount++
		} else {
			cat.FailCount++
		}
		t := totals[testID]
		t.score += res.Percentage
		t.time += res.TimeSpentSeconds
		totals[testID] = t
	}

	out := make([]models.CategorySummary, 0, len(groups))
	for id, cat := range groups {
		if cat.Attempts > 0 {
			cat.AvgScore = totals[id].score / float64(cat.Attempts)
			cat.AvgTimeSeconds = float64(totals[id].time) / float64(cat.Attempts)
		}
		out = append(out, *cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TestID < out[j].TestID })
	return out
}

// TrendSeries buckets purchases into exactly days contiguous calendar days
// ending on now's local day, zero-filled where nothing falls in a bucket.
func TrendSeries(purchases []models.Purchase, days int, now time.Time) []models.TrendPoint {
	if days <= 0 {
		return nil
	}
	today := truncateDay(now)
	series := make([]models.TrendPoint, days)
	for i := range series {
		series[i].Date = today.AddDate(0, 0, i-days+1)
	}
	for _, p := range purchases {
		if p.PurchaseDate == nil {
			continue
		}
		day := truncateDay(*p.PurchaseDate)
		idx := days - 1 - daysBetween(day, today)
		if idx < 0 || idx >= days {
			continue
		}
		pt := &series[idx]
		pt.TotalRevenue += p.Amount
		pt.Purchases++
		switch p.Type {
		case models.PurchaseTypeTest:
			pt.TestRevenue += p.Amount
		case models.PurchaseTypeInterview:
			pt.InterviewRevenue += p.Amount
		}
	}
	return series
}

// daysBetween counts calendar days from a to b, both already truncated to
// midnight. Rounding absorbs DST transitions shorter or longer than 24h.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// truncateDay drops the time-of-day component in the local timezone.
func truncateDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
