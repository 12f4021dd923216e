package domain

import "time"

// AlertRiskLevel enumerates alert severities. The risk engine currently
// only ever produces AlertRiskHigh.
type AlertRiskLevel string

const AlertRiskHigh AlertRiskLevel = "High"

// Alert records a qualifying risk evaluation for a user. Alerts are
// created exclusively by the risk engine and never updated or deleted.
type Alert struct {
	ID        string
	UserID    string
	RiskLevel AlertRiskLevel
	Reason    string
	CreatedAt time.Time
}
