package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/wellness-service/internal/domain"
	"github.com/spec-kit/wellness-service/internal/repository"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// defaultMoodHistory caps how many log rows feed the dashboard views.
const defaultMoodHistory = 50

// InsightsService serves the dashboard read models: the mood log table,
// the stress trend line and the emotion frequency chart.
type InsightsService struct {
	users repository.UserRepository
	moods repository.MoodLogRepository
}

// TrendPoint is one point on the stress trend line.
type TrendPoint struct {
	RecordedAt time.Time
	Stress     int
}

// MoodTrend aggregates both chart views.
type MoodTrend struct {
	StressTrend      []TrendPoint
	EmotionFrequency map[string]int
}

// NewInsightsService constructs the service.
func NewInsightsService(users repository.UserRepository, moods repository.MoodLogRepository) *InsightsService {
	return &InsightsService{users: users, moods: moods}
}

// RecentMoods returns the user's recent mood log rows, newest first.
func (s *InsightsService) RecentMoods(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.moods.ListRecent(ctx, userID, defaultMoodHistory)
}

// Trend returns the stress trend in chronological order plus emotion
// frequency counts over the same window.
func (s *InsightsService) Trend(ctx context.Context, userID string) (*MoodTrend, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.moods.ListRecent(ctx, userID, defaultMoodHistory)
	if err != nil {
		return nil, err
	}

	trend := &MoodTrend{
		StressTrend:      make([]TrendPoint, 0, len(entries)),
		EmotionFrequency: make(map[string]int),
	}
	// entries arrive newest first; the line chart reads left to right.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		trend.StressTrend = append(trend.StressTrend, TrendPoint{RecordedAt: e.RecordedAt, Stress: e.Stress})
		trend.EmotionFrequency[e.Emotion]++
	}
	return trend, nil
}

func (s *InsightsService) checkUser(ctx context.Context, userID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return err
	}
	return nil
}
