package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"marketing-performance-service/internal/model"
	"marketing-performance-service/internal/testdata/mockrepository"
	"marketing-performance-service/internal/testdata/mockworker"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite

	repo    *mockrepository.Repository
	worker  *mockworker.Worker
	service *analyticsService
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	log := logrus.New()
	log.SetOutput(io.Discard)

	s.repo = &mockrepository.Repository{}
	s.worker = &mockworker.Worker{}

	svc := NewAnalyticsService(s.repo, s.worker, log, 10000)
	s.service = svc.(*analyticsService)
	s.service.now = func() time.Time { return time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC) }
}

func (s *AnalyticsServiceTestSuite) TestBuildRecord_ValidationErrors() {
	tests := []struct {
		name   string
		req    model.RecordRequest
		errMsg string
	}{
		{
			name:   "Missing Platform",
			req:    model.RecordRequest{Date: "2025-07-01"},
			errMsg: "platform is required",
		},
		{
			name:   "Unknown Platform",
			req:    model.RecordRequest{Platform: "myspace", Date: "2025-07-01"},
			errMsg: "unsupported platform",
		},
		{
			name:   "Missing Date",
			req:    model.RecordRequest{Platform: "instagram"},
			errMsg: "date is required",
		},
		{
			name:   "Invalid Date",
			req:    model.RecordRequest{Platform: "instagram", Date: "01/07/2025"},
			errMsg: "invalid date",
		},
		{
			name:   "Future Date",
			req:    model.RecordRequest{Platform: "instagram", Date: "2025-07-16"},
			errMsg: "date cannot be in the future",
		},
		{
			name:   "Negative Count",
			req:    model.RecordRequest{Platform: "instagram", Date: "2025-07-01", Impressions: -5},
			errMsg: "counts must not be negative",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.BuildRecord(tt.req)

			s.Error(err)
			s.IsType(&ValidationError{}, err)
			s.EqualError(err, tt.errMsg)
		})
	}
}

func (s *AnalyticsServiceTestSuite) TestBuildRecord_NormalizesEngagement() {
	req := model.RecordRequest{
		Platform: "facebook",
		Date:     "2025-07-01",
		Likes:    70,
		Comments: 20,
		Shares:   10,
	}

	rec, err := s.service.BuildRecord(req)

	s.NoError(err)
	s.Equal(int64(100), rec.Engagement, "missing engagement total is rebuilt from reactions")
	s.Equal(model.PlatformFacebook, rec.Platform)
	s.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), rec.Date)
}

func (s *AnalyticsServiceTestSuite) TestBuildRecord_KeepsExplicitEngagement() {
	req := model.RecordRequest{
		Platform:   "email",
		Date:       "2025-07-01",
		Engagement: 250,
		Likes:      70,
	}

	rec, err := s.service.BuildRecord(req)

	s.NoError(err)
	s.Equal(int64(250), rec.Engagement)
}

func (s *AnalyticsServiceTestSuite) TestProcessRecord_Enqueues() {
	rec := model.AnalyticsRecord{Platform: model.PlatformTwitter}

	s.worker.On("Enqueue", rec).Return()

	s.service.ProcessRecord(context.Background(), rec)

	s.worker.AssertExpectations(s.T())
}
