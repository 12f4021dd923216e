package domain

// EvaluationOutcome is the caller-visible result of a risk evaluation.
// The accumulated rule score itself is never exposed.
type EvaluationOutcome string

const (
	EvaluationNoData         EvaluationOutcome = "No data"
	EvaluationUserStable     EvaluationOutcome = "User Stable"
	EvaluationAlertGenerated EvaluationOutcome = "Alert Generated"
)

// RiskState is the coarse per-user state tracked for transition-based
// alert deduplication.
type RiskState string

const (
	RiskStateStable RiskState = "stable"
	RiskStateHigh   RiskState = "high"
)

// BurnoutLevel is the trailing-window burnout classification.
type BurnoutLevel string

const (
	BurnoutLow      BurnoutLevel = "Low"
	BurnoutModerate BurnoutLevel = "Moderate"
	BurnoutHigh     BurnoutLevel = "High"
)
