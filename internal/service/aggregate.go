package service

import (
	"marketing-performance-service/internal/model"
)

// groupKeyFunc extracts one dimension's grouping key from a record.
type groupKeyFunc func(model.AnalyticsRecord) string

// aggregateRecords rolls a flat row set into one DimensionSummary per
// distinct key value, in first-encounter order. Single linear pass: look up
// or create the group, add every additive field, bump the record count. Rows
// whose key is empty carry no value on this dimension and are skipped.
func aggregateRecords(records []model.AnalyticsRecord, key groupKeyFunc) []model.DimensionSummary {
	index := make(map[string]int, 8)
	summaries := make([]model.DimensionSummary, 0, 8)

	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}

		i, ok := index[k]
		if !ok {
			i = len(summaries)
			index[k] = i
			summaries = append(summaries, model.DimensionSummary{Key: k})
		}

		s := &summaries[i]
		s.Impressions += rec.Impressions
		s.Reach += rec.Reach
		s.Engagement += rec.Engagement
		s.Likes += rec.Likes
		s.Comments += rec.Comments
		s.Shares += rec.Shares
		s.LinkClicks += rec.LinkClicks
		s.NewFollowers += rec.NewFollowers
		s.RecordCount++
	}

	return summaries
}

func keyByPlatform(rec model.AnalyticsRecord) string { return string(rec.Platform) }

func keyByRetailer(rec model.AnalyticsRecord) string { return rec.RetailerID }

func keyByCampaign(rec model.AnalyticsRecord) string { return rec.CampaignID }

func keyByPostType(rec model.AnalyticsRecord) string { return rec.PostType }

func keyByCampaignType(rec model.AnalyticsRecord) string { return rec.CampaignType }

func keyByDay(rec model.AnalyticsRecord) string { return rec.Date.Format(dateLayout) }
