package model

import "time"

// Role is the requesting actor's visibility scope.
type Role string

const (
	RoleBrand    Role = "brand"
	RoleRetailer Role = "retailer"
)

// ReportParams carries the raw, string-keyed query parameters of a report
// request. Resolution into a Filter happens in the service layer.
type ReportParams struct {
	Role       string
	RetailerID string
	Platform   string
	CampaignID string
	StartDate  string
	EndDate    string
}

// Filter is the resolved request scope. Constructed once per request,
// immutable thereafter, passed by value downstream.
type Filter struct {
	Role       Role     `validate:"oneof=brand retailer"`
	RetailerID string   `validate:"required_if=Role retailer"`
	Platform   Platform `validate:"oneof=all facebook instagram twitter linkedin email other"`
	CampaignID string
	From       time.Time `validate:"required"`
	To         time.Time `validate:"required"`
}

// FilterSummary is the JSON echo of the resolved filter inside the response
// envelope.
type FilterSummary struct {
	Role       string `json:"role"`
	RetailerID string `json:"retailerId,omitempty"`
	Platform   string `json:"platform"`
	CampaignID string `json:"campaignId,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}
