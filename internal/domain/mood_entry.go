package domain

import "time"

// MoodEntry is one append-only row of the per-user mood log, produced by
// each chat interaction. Confidence and Stress are both on the 0-100 scale.
type MoodEntry struct {
	ID         string
	UserID     string
	Emotion    string
	Confidence float64
	Stress     int
	RecordedAt time.Time
}
