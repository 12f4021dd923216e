package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/wellness-service/internal/config"
	"github.com/spec-kit/wellness-service/internal/domain"
	"github.com/spec-kit/wellness-service/internal/events"
	"github.com/spec-kit/wellness-service/internal/repository"
	"github.com/spec-kit/wellness-service/internal/riskstate"
)

// RiskService evaluates a user's profile and latest assessment against the
// alerting rules and owns all alert writes.
type RiskService struct {
	users       repository.UserRepository
	assessments repository.AssessmentRepository
	alerts      repository.AlertRepository
	states      riskstate.Store
	dispatcher  events.Dispatcher
	cfg         config.RiskConfig
	logger      *zap.Logger
}

// RiskDependencies bundles collaborators for the risk service.
type RiskDependencies struct {
	UserRepo       repository.UserRepository
	AssessmentRepo repository.AssessmentRepository
	AlertRepo      repository.AlertRepository
	StateStore     riskstate.Store
	Dispatcher     events.Dispatcher
}

// EvaluationResult is the caller-visible outcome of one evaluation. Alert
// is set only when a record was written.
type EvaluationResult struct {
	Outcome domain.EvaluationOutcome
	Alert   *domain.Alert
}

// NewRiskService constructs the service.
func NewRiskService(cfg config.RiskConfig, deps RiskDependencies, logger *zap.Logger) *RiskService {
	return &RiskService{
		users:       deps.UserRepo,
		assessments: deps.AssessmentRepo,
		alerts:      deps.AlertRepo,
		states:      deps.StateStore,
		dispatcher:  deps.Dispatcher,
		cfg:         cfg,
		logger:      logger,
	}
}

// Evaluate scores the user's current signals. Three rules contribute one
// point each; two or more points raise an alert. A missing user or
// assessment is a soft "No data" result with no side effect.
//
// In DedupOff mode concurrent evaluations for the same user can both
// qualify and both write an alert; there is no lock or uniqueness
// constraint guarding the write. Load is assumed low-volume interactive.
func (s *RiskService) Evaluate(ctx context.Context, userID string) (EvaluationResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return EvaluationResult{Outcome: domain.EvaluationNoData}, nil
		}
		return EvaluationResult{}, err
	}

	assessment, err := s.assessments.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return EvaluationResult{Outcome: domain.EvaluationNoData}, nil
		}
		return EvaluationResult{}, err
	}

	score := 0
	reasons := make([]string, 0, 3)

	if assessment.StressScore >= s.cfg.ScoreScale.HighStressThreshold() {
		score++
		reasons = append(reasons, "High Stress")
	}
	if user.SleepOrDefault() < 6 {
		score++
		reasons = append(reasons, "Low Sleep")
	}
	if assessment.BurnoutRisk == domain.BurnoutFlagHigh {
		score++
		reasons = append(reasons, "Burnout Risk")
	}

	if score < 2 {
		s.recordState(ctx, userID, domain.RiskStateStable)
		return EvaluationResult{Outcome: domain.EvaluationUserStable}, nil
	}

	if s.cfg.DedupMode == config.DedupTransition {
		last, known, err := s.states.Last(ctx, userID)
		if err != nil {
			return EvaluationResult{}, err
		}
		if known && last == domain.RiskStateHigh {
			// Already alerted for this high phase; no new record.
			return EvaluationResult{Outcome: domain.EvaluationUserStable}, nil
		}
	}

	alert := &domain.Alert{
		UserID:    userID,
		RiskLevel: domain.AlertRiskHigh,
		Reason:    strings.Join(reasons, ", "),
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return EvaluationResult{}, err
	}
	s.recordState(ctx, userID, domain.RiskStateHigh)

	s.logger.Info("alert raised",
		zap.String("user_id", userID),
		zap.String("reason", alert.Reason),
	)
	s.publish(ctx, events.Event{
		Type:   events.EventAlertRaised,
		UserID: userID,
		Payload: events.AlertRaisedPayload{
			AlertID:   alert.ID,
			RiskLevel: alert.RiskLevel,
			Reason:    alert.Reason,
		},
	})

	return EvaluationResult{Outcome: domain.EvaluationAlertGenerated, Alert: alert}, nil
}

// AlertsFor returns all alerts recorded for the user, newest first. An
// empty slice is not an error.
func (s *RiskService) AlertsFor(ctx context.Context, userID string) ([]domain.Alert, error) {
	return s.alerts.ListByUser(ctx, userID)
}

func (s *RiskService) recordState(ctx context.Context, userID string, state domain.RiskState) {
	if s.cfg.DedupMode != config.DedupTransition || s.states == nil {
		return
	}
	if err := s.states.Set(ctx, userID, state); err != nil {
		s.logger.Warn("failed to record risk state", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *RiskService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
