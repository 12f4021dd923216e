package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/wellness-service/internal/classifier"
	"github.com/spec-kit/wellness-service/internal/domain"
	"github.com/spec-kit/wellness-service/internal/events"
	"github.com/spec-kit/wellness-service/internal/observability"
	"github.com/spec-kit/wellness-service/internal/repository"
	"github.com/spec-kit/wellness-service/internal/scoring"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// ChatService runs the interactive mood pipeline: classify the statement,
// derive stress and work-pressure signals, append to the mood log and
// refresh the trailing-window burnout prediction.
type ChatService struct {
	users      repository.UserRepository
	moods      repository.MoodLogRepository
	classifier classifier.Classifier
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// ChatDependencies bundles collaborators for the chat service.
type ChatDependencies struct {
	UserRepo   repository.UserRepository
	MoodRepo   repository.MoodLogRepository
	Classifier classifier.Classifier
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
}

// ChatAnalysis is the full derived view of one mood statement.
type ChatAnalysis struct {
	Entry        domain.MoodEntry
	Pressure     string
	BurnoutLevel domain.BurnoutLevel
}

// NewChatService constructs the service.
func NewChatService(deps ChatDependencies, logger *zap.Logger) *ChatService {
	return &ChatService{
		users:      deps.UserRepo,
		moods:      deps.MoodRepo,
		classifier: deps.Classifier,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// Record processes one mood statement for a registered user.
func (s *ChatService) Record(ctx context.Context, userID, message string) (*ChatAnalysis, error) {
	if strings.TrimSpace(message) == "" {
		return nil, util.NewValidationError("message required", nil)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, err
	}

	pred, err := s.classifier.Classify(ctx, message)
	if err != nil {
		return nil, util.NewUpstreamError(err)
	}
	s.metrics.RecordClassification(pred.Label)

	entry := domain.MoodEntry{
		UserID:     userID,
		Emotion:    pred.Label,
		Confidence: pred.Confidence * 100,
		Stress:     scoring.StressForEmotion(pred.Label),
	}
	if err := s.moods.Append(ctx, &entry); err != nil {
		return nil, err
	}

	recent, err := s.moods.ListRecent(ctx, userID, scoring.BurnoutWindow)
	if err != nil {
		return nil, err
	}
	scores := make([]int, 0, len(recent))
	for _, e := range recent {
		scores = append(scores, e.Stress)
	}

	analysis := &ChatAnalysis{
		Entry:        entry,
		Pressure:     scoring.PressureForText(message),
		BurnoutLevel: scoring.PredictBurnout(scores),
	}

	s.logger.Debug("mood recorded",
		zap.String("user_id", userID),
		zap.String("emotion", entry.Emotion),
		zap.Int("stress", entry.Stress),
	)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:   events.EventMoodLogged,
			UserID: userID,
			Payload: events.MoodLoggedPayload{
				Emotion:      entry.Emotion,
				Stress:       entry.Stress,
				Pressure:     analysis.Pressure,
				BurnoutLevel: analysis.BurnoutLevel,
			},
		})
	}

	return analysis, nil
}
