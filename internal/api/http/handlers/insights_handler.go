package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/wellness-service/internal/api/dto"
	"github.com/spec-kit/wellness-service/internal/service"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// InsightsHandler serves the dashboard read models.
type InsightsHandler struct {
	insights *service.InsightsService
}

// NewInsightsHandler constructs handler.
func NewInsightsHandler(insightsService *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insightsService}
}

// Moods handles GET /moods/:user_id.
func (h *InsightsHandler) Moods(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return util.NewValidationError("user_id required", nil)
	}

	entries, err := h.insights.RecentMoods(c.Context(), userID)
	if err != nil {
		return err
	}

	items := make([]dto.MoodEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.MoodEntryResponseFrom(&entries[i]))
	}
	return c.JSON(items)
}

// Trend handles GET /trend/:user_id.
func (h *InsightsHandler) Trend(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return util.NewValidationError("user_id required", nil)
	}

	trend, err := h.insights.Trend(c.Context(), userID)
	if err != nil {
		return err
	}

	resp := dto.TrendResponse{
		StressTrend:      make([]dto.TrendPointResponse, 0, len(trend.StressTrend)),
		EmotionFrequency: trend.EmotionFrequency,
	}
	for _, p := range trend.StressTrend {
		resp.StressTrend = append(resp.StressTrend, dto.TrendPointResponse{Time: p.RecordedAt, Stress: p.Stress})
	}
	return c.JSON(resp)
}
