package dto

import (
	"time"

	"github.com/spec-kit/wellness-service/internal/domain"
)

// MoodEntryResponse is one row of the mood log table.
type MoodEntryResponse struct {
	Time       time.Time `json:"time"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	Stress     int       `json:"stress"`
}

// MoodEntryResponseFrom maps a domain mood entry.
func MoodEntryResponseFrom(e *domain.MoodEntry) MoodEntryResponse {
	return MoodEntryResponse{
		Time:       e.RecordedAt,
		Emotion:    e.Emotion,
		Confidence: e.Confidence,
		Stress:     e.Stress,
	}
}

// TrendPointResponse is one point of the stress trend chart.
type TrendPointResponse struct {
	Time   time.Time `json:"time"`
	Stress int       `json:"stress"`
}

// TrendResponse feeds the two dashboard charts.
type TrendResponse struct {
	StressTrend      []TrendPointResponse `json:"stressTrend"`
	EmotionFrequency map[string]int       `json:"emotionFrequency"`
}

// ImportResponse summarizes a bulk import.
type ImportResponse struct {
	Message string `json:"message"`
	BatchID string `json:"batch_id"`
	Rows    int    `json:"rows"`
}
