package db

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Collection tables share one column set so records from any collection
// normalize through a single scan path.
var collectionTables = []string{
	"post_analytics",
	"platform_trends",
	"retailer_rollups",
	"campaign_rollups",
}

// RunMigrations ensures required tables exist. This keeps the service
// self-contained without an external migration step.
func RunMigrations(ctx context.Context, conn driver.Conn) error {
	for _, table := range collectionTables {
		err := conn.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s
(
	platform        String,
	day             Date,
	campaign_id     String DEFAULT '',
	retailer_id     String DEFAULT '',
	post_type       String DEFAULT '',
	campaign_type   String DEFAULT '',
	impressions     Int64 DEFAULT 0,
	reach           Int64 DEFAULT 0,
	engagement      Int64 DEFAULT 0,
	likes           Int64 DEFAULT 0,
	comments        Int64 DEFAULT 0,
	shares          Int64 DEFAULT 0,
	link_clicks     Int64 DEFAULT 0,
	new_followers   Int64 DEFAULT 0,
	ingested_at     DateTime DEFAULT now()
)
ENGINE = MergeTree
PARTITION BY toYYYYMM(day)
ORDER BY (day, platform, retailer_id, campaign_id)
SETTINGS index_granularity = 8192;
`, table))
		if err != nil {
			return fmt.Errorf("apply migrations for %s: %w", table, err)
		}
	}
	return nil
}
