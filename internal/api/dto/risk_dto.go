package dto

import (
	"time"

	"github.com/spec-kit/wellness-service/internal/domain"
)

// AnalyzeResponse reports the evaluation status string.
type AnalyzeResponse struct {
	Status string `json:"status"`
}

// AlertResponse renders one alert with identifiers as strings.
type AlertResponse struct {
	ID        string                `json:"id"`
	UserID    string                `json:"userId"`
	RiskLevel domain.AlertRiskLevel `json:"riskLevel"`
	Reason    string                `json:"reason"`
	CreatedAt time.Time             `json:"createdAt"`
}

// AlertResponseFrom maps a domain alert.
func AlertResponseFrom(a *domain.Alert) AlertResponse {
	return AlertResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		RiskLevel: a.RiskLevel,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt,
	}
}
