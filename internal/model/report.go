package model

// DimensionSummary is one aggregated row for a single group value. Additive
// fields are accumulated by the dimension aggregator; the derived fields are
// filled by the metric calculator and never mutated afterwards.
type DimensionSummary struct {
	Key          string `json:"key"`
	Impressions  int64  `json:"impressions"`
	Reach        int64  `json:"reach"`
	Engagement   int64  `json:"engagement"`
	Likes        int64  `json:"likes,omitempty"`
	Comments     int64  `json:"comments,omitempty"`
	Shares       int64  `json:"shares,omitempty"`
	LinkClicks   int64  `json:"linkClicks"`
	NewFollowers int64  `json:"newFollowers"`
	RecordCount  int    `json:"recordCount"`

	AvgEngagementRate float64 `json:"avgEngagementRate"`
	ClickRate         float64 `json:"clickRate"`
	DeliveryRate      float64 `json:"deliveryRate"`
	PerformanceTier   string  `json:"performanceTier"`
	Rank              int     `json:"rank"`
}

// Breakdown is a named collection of DimensionSummary rows sharing one
// grouping key.
type Breakdown []DimensionSummary

// ShareRow is one slice of a percentage decomposition. Shares are rounded
// independently; rounding drift away from an exact 100 is accepted, never
// hidden by adjustment.
type ShareRow struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	Share int    `json:"share"`
}

// OverviewSummary holds the canonical scalar totals, computed from the union
// of raw rows behind the platform breakdown.
type OverviewSummary struct {
	TotalImpressions  int64   `json:"totalImpressions"`
	TotalReach        int64   `json:"totalReach"`
	TotalEngagement   int64   `json:"totalEngagement"`
	TotalLinkClicks   int64   `json:"totalLinkClicks"`
	NewFollowers      int64   `json:"newFollowers"`
	PostCount         int     `json:"postCount"`
	AvgEngagementRate float64 `json:"avgEngagementRate"`
	PerformanceTier   string  `json:"performanceTier"`
}

// CrossChannelSummary aggregates across already-summarized sections where raw
// impressions are no longer available. Its meanEngagementRate is the mean of
// section-level rates, a deliberately distinct metric from the canonical
// avgEngagementRate.
type CrossChannelSummary struct {
	Sections           int     `json:"sections"`
	MeanEngagementRate float64 `json:"meanEngagementRate"`
	TopPlatform        string  `json:"topPlatform,omitempty"`
	TopRetailer        string  `json:"topRetailer,omitempty"`
	TopCampaign        string  `json:"topCampaign,omitempty"`
}

// SecondaryBreakdowns groups the type-level decompositions and the
// cross-channel summary.
type SecondaryBreakdowns struct {
	PostType     []ShareRow          `json:"postType"`
	CampaignType []ShareRow          `json:"campaignType"`
	Platform     []ShareRow          `json:"platform"`
	Summary      CrossChannelSummary `json:"summary"`
}

// PerformanceData is the data section of a successful report envelope. Every
// field is always populated, live or from fallback fixtures.
type PerformanceData struct {
	Overview   OverviewSummary     `json:"overview"`
	Platforms  Breakdown           `json:"platforms"`
	Retailers  Breakdown           `json:"retailers"`
	Campaigns  Breakdown           `json:"campaigns"`
	Trends     Breakdown           `json:"trends"`
	Breakdowns SecondaryBreakdowns `json:"breakdowns"`
	Filters    FilterSummary       `json:"filters"`
}

// PerformanceResponse is the response envelope. Success is false only when
// the filter itself was rejected; degraded sections still report success.
type PerformanceResponse struct {
	Success bool             `json:"success"`
	Data    *PerformanceData `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}
