package service

import (
	"math"
	"sort"

	"marketing-performance-service/internal/model"
)

// Performance tier thresholds, in engagement-rate percentage points. Fixed
// constants, not configurable per request.
const (
	tierHighThreshold = 6.0
	tierGoodThreshold = 3.0

	tierHigh     = "high"
	tierGood     = "good"
	tierStandard = "standard"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentOf is the canonical rate formula: summed numerator over summed
// denominator, as a percentage rounded to two decimals. A zero or negative
// denominator yields 0, never NaN.
func percentOf(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}

// meanOfRates averages already-derived rates. This is deliberately a
// different metric from the canonical percentOf formula: it exists for
// cross-section aggregation where raw impressions are no longer available,
// and it is only ever exposed under the name meanEngagementRate. The two are
// never swapped.
func meanOfRates(rates []float64) float64 {
	if len(rates) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rates {
		sum += r
	}
	return round2(sum / float64(len(rates)))
}

func performanceTier(rate float64) string {
	switch {
	case rate >= tierHighThreshold:
		return tierHigh
	case rate >= tierGoodThreshold:
		return tierGood
	default:
		return tierStandard
	}
}

// applyMetrics fills the derived fields on every summary with the one fixed
// formula set, regardless of which dimension produced it. The same group must
// score identically wherever it appears.
func applyMetrics(summaries []model.DimensionSummary) []model.DimensionSummary {
	for i := range summaries {
		s := &summaries[i]
		s.AvgEngagementRate = percentOf(s.Engagement, s.Impressions)
		s.ClickRate = percentOf(s.LinkClicks, s.Impressions)
		s.DeliveryRate = percentOf(s.Reach, s.Impressions)
		s.PerformanceTier = performanceTier(s.AvgEngagementRate)
	}
	return summaries
}

// assignRanks sets 1-based ranks by descending engagement rate. The sort is
// stable: tied rows keep their insertion order. Row order in the slice is
// left untouched so chronological sections keep their sequence.
func assignRanks(summaries []model.DimensionSummary) []model.DimensionSummary {
	order := make([]int, len(summaries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return summaries[order[a]].AvgEngagementRate > summaries[order[b]].AvgEngagementRate
	})
	for rank, idx := range order {
		summaries[idx].Rank = rank + 1
	}
	return summaries
}

// sortByRank reorders rows into rank order for sections presented as
// leaderboards.
func sortByRank(summaries []model.DimensionSummary) []model.DimensionSummary {
	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[a].Rank < summaries[b].Rank
	})
	return summaries
}

// shareRows decomposes group record counts into whole-number percentages.
// Each share is rounded independently; the total may drift from an exact 100
// and the drift is accepted, not hidden by adjusting values.
func shareRows(summaries []model.DimensionSummary) []model.ShareRow {
	var total int
	for _, s := range summaries {
		total += s.RecordCount
	}

	rows := make([]model.ShareRow, 0, len(summaries))
	for _, s := range summaries {
		share := 0
		if total > 0 {
			share = int(math.Round(float64(s.RecordCount) / float64(total) * 100))
		}
		rows = append(rows, model.ShareRow{Key: s.Key, Count: s.RecordCount, Share: share})
	}
	return rows
}

// overviewFrom computes the canonical scalar totals from the union of raw
// rows behind the platform breakdown.
func overviewFrom(records []model.AnalyticsRecord) model.OverviewSummary {
	var o model.OverviewSummary
	for _, rec := range records {
		o.TotalImpressions += rec.Impressions
		o.TotalReach += rec.Reach
		o.TotalEngagement += rec.Engagement
		o.TotalLinkClicks += rec.LinkClicks
		o.NewFollowers += rec.NewFollowers
		o.PostCount++
	}
	o.AvgEngagementRate = percentOf(o.TotalEngagement, o.TotalImpressions)
	o.PerformanceTier = performanceTier(o.AvgEngagementRate)
	return o
}
