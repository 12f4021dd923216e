package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/wellness-service/internal/api/dto"
	"github.com/spec-kit/wellness-service/internal/domain"
	"github.com/spec-kit/wellness-service/internal/service"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// alertStatusBanner is the historical wire form of the alert outcome.
const alertStatusBanner = "🚨 ALERT GENERATED"

// RiskHandler exposes risk evaluation and alert queries.
type RiskHandler struct {
	risk *service.RiskService
}

// NewRiskHandler constructs handler.
func NewRiskHandler(riskService *service.RiskService) *RiskHandler {
	return &RiskHandler{risk: riskService}
}

// Analyze handles GET /analyze/:user_id.
func (h *RiskHandler) Analyze(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return util.NewValidationError("user_id required", nil)
	}

	result, err := h.risk.Evaluate(c.Context(), userID)
	if err != nil {
		return err
	}

	status := string(result.Outcome)
	if result.Outcome == domain.EvaluationAlertGenerated {
		status = alertStatusBanner
	}
	return c.JSON(dto.AnalyzeResponse{Status: status})
}

// Alerts handles GET /alerts/:user_id.
func (h *RiskHandler) Alerts(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return util.NewValidationError("user_id required", nil)
	}

	alerts, err := h.risk.AlertsFor(c.Context(), userID)
	if err != nil {
		return err
	}

	items := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		items = append(items, dto.AlertResponseFrom(&alerts[i]))
	}
	return c.JSON(items)
}
