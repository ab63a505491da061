package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"marketing-performance-service/internal/model"
	"marketing-performance-service/internal/repository"
)

// ValidationError represents user input issues.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ScopeError marks a role-scoping violation: the one condition that crosses
// the engine boundary as a failed request.
type ScopeError struct {
	Message string
}

func (e *ScopeError) Error() string {
	return e.Message
}

// AnalyticsService wires the ingestion path and the performance reporting
// engine.
type AnalyticsService interface {
	BuildRecord(req model.RecordRequest) (model.AnalyticsRecord, error)
	ProcessRecord(ctx context.Context, rec model.AnalyticsRecord)
	GetPerformanceReport(ctx context.Context, params model.ReportParams) (model.PerformanceResponse, error)
}

type analyticsService struct {
	repo       repository.AnalyticsRepository
	worker     BatchRecordWorker
	log        *logrus.Logger
	validate   *validator.Validate
	now        func() time.Time
	fetchLimit int
}

// NewAnalyticsService constructs an analyticsService.
func NewAnalyticsService(repo repository.AnalyticsRepository, worker BatchRecordWorker, log *logrus.Logger, fetchLimit int) AnalyticsService {
	return &analyticsService{
		repo:       repo,
		worker:     worker,
		log:        log,
		validate:   validator.New(),
		now:        time.Now,
		fetchLimit: fetchLimit,
	}
}

const dateLayout = "2006-01-02"

// BuildRecord validates and constructs an AnalyticsRecord from an incoming
// measurement payload.
func (s *analyticsService) BuildRecord(req model.RecordRequest) (model.AnalyticsRecord, error) {
	platform := model.Platform(req.Platform)
	if req.Platform == "" {
		return model.AnalyticsRecord{}, &ValidationError{Message: "platform is required"}
	}
	if !model.KnownPlatform(platform) {
		return model.AnalyticsRecord{}, &ValidationError{Message: "unsupported platform"}
	}

	if req.Date == "" {
		return model.AnalyticsRecord{}, &ValidationError{Message: "date is required"}
	}
	day, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return model.AnalyticsRecord{}, &ValidationError{Message: "invalid date"}
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if day.After(today) {
		return model.AnalyticsRecord{}, &ValidationError{Message: "date cannot be in the future"}
	}

	for _, count := range []int64{req.Impressions, req.Reach, req.Engagement, req.Likes, req.Comments, req.Shares, req.LinkClicks, req.NewFollowers} {
		if count < 0 {
			return model.AnalyticsRecord{}, &ValidationError{Message: "counts must not be negative"}
		}
	}

	rec := model.AnalyticsRecord{
		Platform:     platform,
		Date:         day,
		CampaignID:   req.CampaignID,
		RetailerID:   req.RetailerID,
		PostType:     req.PostType,
		CampaignType: req.CampaignType,
		Impressions:  req.Impressions,
		Reach:        req.Reach,
		Engagement:   req.Engagement,
		Likes:        req.Likes,
		Comments:     req.Comments,
		Shares:       req.Shares,
		LinkClicks:   req.LinkClicks,
		NewFollowers: req.NewFollowers,
	}
	if rec.Engagement == 0 {
		rec.Engagement = rec.Likes + rec.Comments + rec.Shares
	}

	return rec, nil
}

// ProcessRecord hands a validated record to the batch worker.
func (s *analyticsService) ProcessRecord(ctx context.Context, rec model.AnalyticsRecord) {
	s.worker.Enqueue(rec)
}
