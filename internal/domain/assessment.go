package domain

import "time"

// BurnoutFlag is the categorical burnout-risk marker carried by survey
// assessments. Only "High" is significant to the risk rules.
type BurnoutFlag string

const BurnoutFlagHigh BurnoutFlag = "High"

// Assessment is a survey-derived stress record for a user. The scale of
// StressScore (ten-point or hundred-point) is declared by configuration,
// not by the record itself.
type Assessment struct {
	ID          string
	UserID      string
	StressScore float64
	BurnoutRisk BurnoutFlag
	Source      string
	CreatedAt   time.Time
}
