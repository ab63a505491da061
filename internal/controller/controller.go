package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"marketing-performance-service/internal/model"
	"marketing-performance-service/internal/service"
)

type AnalyticsController interface {
	CreateRecord(c *fiber.Ctx) error
	GetPerformanceReport(c *fiber.Ctx) error
}

type analyticsController struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsController builds an AnalyticsController.
func NewAnalyticsController(svc service.AnalyticsService) AnalyticsController {
	return &analyticsController{analyticsService: svc}
}

// CreateRecord accepts single measurement payloads.
func (h *analyticsController) CreateRecord(c *fiber.Ctx) error {
	var req model.RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json payload")
	}

	rec, err := h.analyticsService.BuildRecord(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	h.analyticsService.ProcessRecord(c.Context(), rec)

	return c.Status(fiber.StatusAccepted).JSON(model.RecordResult{Status: "accepted"})
}

// GetPerformanceReport returns the multi-dimensional performance report. A
// rejected filter is the only client-visible failure; degraded sections still
// arrive as a successful envelope.
func (h *analyticsController) GetPerformanceReport(c *fiber.Ctx) error {
	params := buildReportParams(c)

	resp, err := h.analyticsService.GetPerformanceReport(c.Context(), params)
	if err != nil {
		var scopeErr *service.ScopeError
		var validationErr *service.ValidationError
		if errors.As(err, &scopeErr) || errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(model.PerformanceResponse{
				Success: false,
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(model.PerformanceResponse{
			Success: false,
			Error:   "failed to build performance report",
		})
	}

	return c.JSON(resp)
}

func buildReportParams(c *fiber.Ctx) model.ReportParams {
	return model.ReportParams{
		Role:       utils.Trim(c.Query("role"), ' '),
		RetailerID: utils.Trim(c.Query("retailerId"), ' '),
		Platform:   utils.Trim(c.Query("platform"), ' '),
		CampaignID: utils.Trim(c.Query("campaignId"), ' '),
		StartDate:  utils.Trim(c.Query("startDate"), ' '),
		EndDate:    utils.Trim(c.Query("endDate"), ' '),
	}
}
