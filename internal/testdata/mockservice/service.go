package mockservice

import (
	"context"

	"github.com/stretchr/testify/mock"

	"marketing-performance-service/internal/model"
)

type Service struct {
	mock.Mock
}

func (m *Service) BuildRecord(req model.RecordRequest) (model.AnalyticsRecord, error) {
	args := m.Called(req)
	return args.Get(0).(model.AnalyticsRecord), args.Error(1)
}

func (m *Service) ProcessRecord(ctx context.Context, rec model.AnalyticsRecord) {
	m.Called(ctx, rec)
}

func (m *Service) GetPerformanceReport(ctx context.Context, params model.ReportParams) (model.PerformanceResponse, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.PerformanceResponse), args.Error(1)
}
