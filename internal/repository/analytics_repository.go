package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"marketing-performance-service/internal/model"
)

// AnalyticsRepository defines the read operations over the record store plus
// the batch ingestion path. Fetches are pure pass-throughs: no aggregation
// happens here, and this is the only place engine failures can originate.
type AnalyticsRepository interface {
	// InsertRecords writes measurement rows efficiently using a prepared batch.
	InsertRecords(ctx context.Context, records []model.AnalyticsRecord) error

	// FetchPostAnalytics returns per-account post rows matching the query.
	FetchPostAnalytics(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error)

	// FetchPlatformTrends returns daily platform snapshot rows.
	FetchPlatformTrends(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error)

	// FetchRetailerRollups returns per-retailer rollup rows.
	FetchRetailerRollups(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error)

	// FetchCampaignRollups returns per-campaign rollup rows.
	FetchCampaignRollups(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error)
}

type analyticsRepository struct {
	conn driver.Conn
}

// NewAnalyticsRepository creates an AnalyticsRepository backed by ClickHouse.
func NewAnalyticsRepository(conn driver.Conn) AnalyticsRepository {
	return &analyticsRepository{conn: conn}
}

const defaultFetchLimit = 10000

const recordColumns = "platform, day, campaign_id, retailer_id, post_type, campaign_type, impressions, reach, engagement, likes, comments, shares, link_clicks, new_followers"

const insertRecordQuery = "INSERT INTO post_analytics (" + recordColumns + ")"

func (r *analyticsRepository) InsertRecords(ctx context.Context, records []model.AnalyticsRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRecordQuery)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, rec := range records {
		err := batch.Append(
			string(rec.Platform),
			rec.Date,
			rec.CampaignID,
			rec.RetailerID,
			rec.PostType,
			rec.CampaignType,
			rec.Impressions,
			rec.Reach,
			rec.Engagement,
			rec.Likes,
			rec.Comments,
			rec.Shares,
			rec.LinkClicks,
			rec.NewFollowers,
		)
		if err != nil {
			return fmt.Errorf("append record: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

func (r *analyticsRepository) FetchPostAnalytics(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	return r.fetch(ctx, "post_analytics", q)
}

func (r *analyticsRepository) FetchPlatformTrends(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	return r.fetch(ctx, "platform_trends", q)
}

func (r *analyticsRepository) FetchRetailerRollups(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	return r.fetch(ctx, "retailer_rollups", q)
}

func (r *analyticsRepository) FetchCampaignRollups(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	return r.fetch(ctx, "campaign_rollups", q)
}

func (r *analyticsRepository) fetch(ctx context.Context, table string, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	where, args := buildPredicate(q)
	limit := q.Limit
	if limit <= 0 {
		limit = defaultFetchLimit
	}

	// Deterministic row order: identical queries over an unchanged store must
	// produce identical aggregation input.
	query := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY day, platform, retailer_id, campaign_id LIMIT %d",
		recordColumns, table, where, limit,
	)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var records []model.AnalyticsRecord
	for rows.Next() {
		var (
			rec      model.AnalyticsRecord
			platform string
		)
		err := rows.Scan(
			&platform,
			&rec.Date,
			&rec.CampaignID,
			&rec.RetailerID,
			&rec.PostType,
			&rec.CampaignType,
			&rec.Impressions,
			&rec.Reach,
			&rec.Engagement,
			&rec.Likes,
			&rec.Comments,
			&rec.Shares,
			&rec.LinkClicks,
			&rec.NewFollowers,
		)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		rec.Platform = model.Platform(platform)
		records = append(records, normalizeRecord(rec))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	return records, nil
}

// buildPredicate translates a RecordQuery into a WHERE clause mechanically:
// inclusive date bounds, platform equality when constrained, campaign
// equality when present, retailer-set membership when role scoping applies.
func buildPredicate(q model.RecordQuery) (string, []any) {
	clauses := []string{"day >= ?", "day <= ?"}
	args := []any{q.From, q.To}

	if q.Platform != "" && q.Platform != model.PlatformAll {
		clauses = append(clauses, "platform = ?")
		args = append(args, string(q.Platform))
	}

	if q.CampaignID != "" {
		clauses = append(clauses, "campaign_id = ?")
		args = append(args, q.CampaignID)
	}

	if len(q.RetailerIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(q.RetailerIDs)), ", ")
		clauses = append(clauses, fmt.Sprintf("retailer_id IN (%s)", placeholders))
		for _, id := range q.RetailerIDs {
			args = append(args, id)
		}
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

// normalizeRecord settles field absence once at the adapter boundary. An
// engagement total missing from the source row is reconstructed from its
// reaction parts when those are present.
func normalizeRecord(rec model.AnalyticsRecord) model.AnalyticsRecord {
	if rec.Engagement == 0 {
		rec.Engagement = rec.Likes + rec.Comments + rec.Shares
	}
	return rec
}
