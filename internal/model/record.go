package model

import (
	"time"
)

// Platform identifies a marketing channel.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformEmail     Platform = "email"
	PlatformOther     Platform = "other"

	// PlatformAll is a filter-only sentinel, never stored on a record.
	PlatformAll Platform = "all"
)

// KnownPlatform reports whether p is a storable platform value.
func KnownPlatform(p Platform) bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformTwitter, PlatformLinkedIn, PlatformEmail, PlatformOther:
		return true
	default:
		return false
	}
}

// RecordRequest represents an incoming analytics measurement payload.
type RecordRequest struct {
	Platform     string `json:"platform"`
	Date         string `json:"date"`
	CampaignID   string `json:"campaignId"`
	RetailerID   string `json:"retailerId"`
	PostType     string `json:"postType"`
	CampaignType string `json:"campaignType"`
	Impressions  int64  `json:"impressions"`
	Reach        int64  `json:"reach"`
	Engagement   int64  `json:"engagement"`
	Likes        int64  `json:"likes"`
	Comments     int64  `json:"comments"`
	Shares       int64  `json:"shares"`
	LinkClicks   int64  `json:"linkClicks"`
	NewFollowers int64  `json:"newFollowers"`
}

// AnalyticsRecord is one normalized measurement unit: a post, a daily
// platform snapshot, or a retailer/campaign rollup row. String absence is
// the empty string, numeric absence is zero; both are settled once at the
// repository boundary. Reach exceeding impressions is tolerated, never
// rejected.
type AnalyticsRecord struct {
	Platform     Platform
	Date         time.Time
	CampaignID   string
	RetailerID   string
	PostType     string
	CampaignType string
	Impressions  int64
	Reach        int64
	Engagement   int64
	Likes        int64
	Comments     int64
	Shares       int64
	LinkClicks   int64
	NewFollowers int64
}

// RecordResult is returned after an ingestion request is accepted.
type RecordResult struct {
	Status string `json:"status"`
}

// RecordQuery is the mechanical predicate handed to the record source. It is
// built from a resolved Filter and never carries request state beyond it.
type RecordQuery struct {
	From        time.Time
	To          time.Time
	Platform    Platform // empty or PlatformAll means no platform constraint
	CampaignID  string
	RetailerIDs []string
	Limit       int
}
