package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/wellness-service/internal/classifier"
	"github.com/spec-kit/wellness-service/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
	next  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.next++
	user.ID = fmt.Sprintf("user-%d", f.next)
	user.CreatedAt = time.Now()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) add(user domain.User) {
	f.users[user.ID] = &user
}

type fakeAssessmentRepo struct {
	byUser map[string]domain.Assessment
	stored []domain.Assessment
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{byUser: make(map[string]domain.Assessment)}
}

func (f *fakeAssessmentRepo) GetLatestByUser(_ context.Context, userID string) (*domain.Assessment, error) {
	a, ok := f.byUser[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &a, nil
}

func (f *fakeAssessmentRepo) ReplaceAll(_ context.Context, assessments []domain.Assessment) error {
	f.stored = append([]domain.Assessment{}, assessments...)
	f.byUser = make(map[string]domain.Assessment)
	for _, a := range assessments {
		if a.UserID != "" {
			f.byUser[a.UserID] = a
		}
	}
	return nil
}

func (f *fakeAssessmentRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.stored)), nil
}

type fakeMoodRepo struct {
	entries []domain.MoodEntry
	next    int
}

func (f *fakeMoodRepo) Append(_ context.Context, entry *domain.MoodEntry) error {
	f.next++
	entry.ID = fmt.Sprintf("mood-%d", f.next)
	entry.RecordedAt = time.Now().Add(time.Duration(f.next) * time.Second)
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeMoodRepo) ListRecent(_ context.Context, userID string, n int) ([]domain.MoodEntry, error) {
	var out []domain.MoodEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < n; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	alerts []domain.Alert
	next   int
}

func (f *fakeAlertRepo) Create(_ context.Context, alert *domain.Alert) error {
	f.next++
	alert.ID = fmt.Sprintf("alert-%d", f.next)
	alert.CreatedAt = time.Now()
	f.alerts = append(f.alerts, *alert)
	return nil
}

func (f *fakeAlertRepo) ListByUser(_ context.Context, userID string) ([]domain.Alert, error) {
	out := make([]domain.Alert, 0)
	for _, a := range f.alerts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubClassifier struct {
	prediction classifier.Prediction
	err        error
	calls      int
}

func (s *stubClassifier) Classify(context.Context, string) (classifier.Prediction, error) {
	s.calls++
	return s.prediction, s.err
}

func floatPtr(v float64) *float64 { return &v }
