package mockrepository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"marketing-performance-service/internal/model"
	"marketing-performance-service/internal/repository"
)

type Repository struct {
	mock.Mock
}

// Interface compliance check
var _ repository.AnalyticsRepository = &Repository{}

func (m *Repository) InsertRecords(ctx context.Context, records []model.AnalyticsRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *Repository) FetchPostAnalytics(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	args := m.Called(ctx, q)
	return records(args.Get(0)), args.Error(1)
}

func (m *Repository) FetchPlatformTrends(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	args := m.Called(ctx, q)
	return records(args.Get(0)), args.Error(1)
}

func (m *Repository) FetchRetailerRollups(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	args := m.Called(ctx, q)
	return records(args.Get(0)), args.Error(1)
}

func (m *Repository) FetchCampaignRollups(ctx context.Context, q model.RecordQuery) ([]model.AnalyticsRecord, error) {
	args := m.Called(ctx, q)
	return records(args.Get(0)), args.Error(1)
}

func records(v any) []model.AnalyticsRecord {
	if v == nil {
		return nil
	}
	return v.([]model.AnalyticsRecord)
}
