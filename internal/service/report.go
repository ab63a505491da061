package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"marketing-performance-service/internal/model"
)

// GetPerformanceReport resolves the filter and composes the full report
// envelope. Only a filter rejection is returned as an error; every store
// failure downstream is absorbed into per-section fallback substitution and
// the response still reports success.
func (s *analyticsService) GetPerformanceReport(ctx context.Context, params model.ReportParams) (model.PerformanceResponse, error) {
	filter, err := s.resolveFilter(params)
	if err != nil {
		return model.PerformanceResponse{}, err
	}

	data := s.compose(ctx, filter)
	data.Filters = filterSummary(filter)

	return model.PerformanceResponse{Success: true, Data: &data}, nil
}

// compose fans out one fetch-aggregate-derive pipeline per dimension. The
// branches are independent: each writes its own section, absorbs its own
// failure, and never blocks or aborts a sibling. The gather waits for all of
// them. No branch is retried; a failed or empty fetch is terminal for that
// dimension within the request and degrades it to its fixture.
func (s *analyticsService) compose(ctx context.Context, f model.Filter) model.PerformanceData {
	q := buildRecordQuery(f, s.fetchLimit)

	var data model.PerformanceData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.repo.FetchPostAnalytics(gctx, q)
		if s.degraded(sectionPlatforms, len(rows), err) {
			data.Platforms = fallbackBreakdown(sectionPlatforms)
			data.Overview = fallbackOverview()
			return nil
		}
		summaries := assignRanks(applyMetrics(aggregateRecords(rows, keyByPlatform)))
		data.Platforms = sortByRank(summaries)
		// Overview totals come from the same raw rows as the platform
		// breakdown, which keeps the two additively consistent.
		data.Overview = overviewFrom(rows)
		return nil
	})

	g.Go(func() error {
		rows, err := s.repo.FetchRetailerRollups(gctx, q)
		if s.degraded(sectionRetailers, len(rows), err) {
			data.Retailers = fallbackBreakdown(sectionRetailers)
			return nil
		}
		data.Retailers = sortByRank(assignRanks(applyMetrics(aggregateRecords(rows, keyByRetailer))))
		return nil
	})

	g.Go(func() error {
		rows, err := s.repo.FetchCampaignRollups(gctx, q)
		if s.degraded(sectionCampaigns, len(rows), err) {
			data.Campaigns = fallbackBreakdown(sectionCampaigns)
			return nil
		}
		data.Campaigns = sortByRank(assignRanks(applyMetrics(aggregateRecords(rows, keyByCampaign))))
		return nil
	})

	g.Go(func() error {
		rows, err := s.repo.FetchPlatformTrends(gctx, q)
		if s.degraded(sectionTrends, len(rows), err) {
			data.Trends = fallbackBreakdown(sectionTrends)
			return nil
		}
		// Trends stay chronological; ranks are assigned without reordering.
		data.Trends = assignRanks(applyMetrics(aggregateRecords(rows, keyByDay)))
		return nil
	})

	g.Go(func() error {
		rows, err := s.repo.FetchPostAnalytics(gctx, q)
		if s.degraded(sectionPostType, len(rows), err) {
			data.Breakdowns.PostType = fallbackShares(sectionPostType)
			return nil
		}
		data.Breakdowns.PostType = shareRows(aggregateRecords(rows, keyByPostType))
		return nil
	})

	g.Go(func() error {
		rows, err := s.repo.FetchCampaignRollups(gctx, q)
		if s.degraded(sectionCampaignType, len(rows), err) {
			data.Breakdowns.CampaignType = fallbackShares(sectionCampaignType)
			return nil
		}
		data.Breakdowns.CampaignType = shareRows(aggregateRecords(rows, keyByCampaignType))
		return nil
	})

	g.Go(func() error {
		rows, err := s.repo.FetchPostAnalytics(gctx, q)
		if s.degraded(sectionPlatformShare, len(rows), err) {
			data.Breakdowns.Platform = fallbackShares(sectionPlatformShare)
			return nil
		}
		data.Breakdowns.Platform = shareRows(aggregateRecords(rows, keyByPlatform))
		return nil
	})

	// Branches never return errors; Wait only synchronizes the gather.
	_ = g.Wait()

	data.Breakdowns.Summary = crossChannelSummary(data.Platforms, data.Retailers, data.Campaigns)

	return data
}

// degraded decides whether a section falls back. A fetch error is logged and
// masked; an empty result degrades identically but is not an error condition.
func (s *analyticsService) degraded(section string, rowCount int, err error) bool {
	if err != nil {
		s.log.WithError(err).WithField("section", section).Warn("record source unavailable, serving fallback")
		return true
	}
	return rowCount == 0
}

// crossChannelSummary aggregates across the finished sections. Raw
// impressions are gone at this point, so it uses the mean-of-rates metric,
// exposed under its own name.
func crossChannelSummary(platforms, retailers, campaigns model.Breakdown) model.CrossChannelSummary {
	var rates []float64
	for _, section := range []model.Breakdown{platforms, retailers, campaigns} {
		for _, row := range section {
			rates = append(rates, row.AvgEngagementRate)
		}
	}

	return model.CrossChannelSummary{
		Sections:           3,
		MeanEngagementRate: meanOfRates(rates),
		TopPlatform:        topKey(platforms),
		TopRetailer:        topKey(retailers),
		TopCampaign:        topKey(campaigns),
	}
}

func topKey(b model.Breakdown) string {
	for _, row := range b {
		if row.Rank == 1 {
			return row.Key
		}
	}
	return ""
}
