package events

import (
	"time"

	"github.com/spec-kit/wellness-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMoodLogged          EventType = "mood_logged"
	EventAlertRaised         EventType = "alert_raised"
	EventAssessmentsImported EventType = "assessments_imported"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MoodLoggedPayload payload.
type MoodLoggedPayload struct {
	Emotion      string              `json:"emotion"`
	Stress       int                 `json:"stress"`
	Pressure     string              `json:"pressure"`
	BurnoutLevel domain.BurnoutLevel `json:"burnout_level"`
}

// AlertRaisedPayload payload.
type AlertRaisedPayload struct {
	AlertID   string                `json:"alert_id"`
	RiskLevel domain.AlertRiskLevel `json:"risk_level"`
	Reason    string                `json:"reason"`
}

// AssessmentsImportedPayload payload.
type AssessmentsImportedPayload struct {
	BatchID string `json:"batch_id"`
	Rows    int    `json:"rows"`
}
