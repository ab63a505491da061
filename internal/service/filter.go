package service

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"marketing-performance-service/internal/model"
)

const defaultRangeDays = 30

// resolveFilter normalizes raw report parameters into an immutable Filter.
// Absent fields take safe defaults; the single hard rule is that a retailer
// scope must name its retailer. Pure function of its input and the injected
// clock.
func (s *analyticsService) resolveFilter(params model.ReportParams) (model.Filter, error) {
	role := model.Role(params.Role)
	if params.Role == "" {
		role = model.RoleBrand
	}

	if role == model.RoleRetailer && params.RetailerID == "" {
		return model.Filter{}, &ScopeError{Message: "retailerId is required when role is retailer"}
	}

	platform := model.Platform(params.Platform)
	if params.Platform == "" {
		platform = model.PlatformAll
	}

	today := s.now().UTC().Truncate(24 * time.Hour)

	to := today
	if params.EndDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, params.EndDate, time.UTC)
		if err != nil {
			return model.Filter{}, &ValidationError{Message: "invalid endDate"}
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -defaultRangeDays)
	if params.StartDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, params.StartDate, time.UTC)
		if err != nil {
			return model.Filter{}, &ValidationError{Message: "invalid startDate"}
		}
		from = parsed
	}

	if from.After(to) {
		return model.Filter{}, &ValidationError{Message: "startDate must not be after endDate"}
	}

	filter := model.Filter{
		Role:       role,
		RetailerID: params.RetailerID,
		Platform:   platform,
		CampaignID: params.CampaignID,
		From:       from,
		To:         to,
	}

	if err := s.validate.Struct(filter); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "RetailerID":
				return model.Filter{}, &ScopeError{Message: "retailerId is required when role is retailer"}
			case "Platform":
				return model.Filter{}, &ValidationError{Message: "unsupported platform"}
			case "Role":
				return model.Filter{}, &ValidationError{Message: "unsupported role"}
			}
		}
		return model.Filter{}, &ValidationError{Message: "invalid filter parameters"}
	}

	return filter, nil
}

// buildRecordQuery translates a resolved Filter into the mechanical store
// predicate. Retailer scoping becomes retailer-set membership.
func buildRecordQuery(f model.Filter, limit int) model.RecordQuery {
	q := model.RecordQuery{
		From:       f.From,
		To:         f.To,
		Platform:   f.Platform,
		CampaignID: f.CampaignID,
		Limit:      limit,
	}
	if f.Role == model.RoleRetailer {
		q.RetailerIDs = []string{f.RetailerID}
	}
	return q
}

func filterSummary(f model.Filter) model.FilterSummary {
	return model.FilterSummary{
		Role:       string(f.Role),
		RetailerID: f.RetailerID,
		Platform:   string(f.Platform),
		CampaignID: f.CampaignID,
		StartDate:  f.From.Format(dateLayout),
		EndDate:    f.To.Format(dateLayout),
	}
}
