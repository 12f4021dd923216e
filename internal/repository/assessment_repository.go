package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/wellness-service/internal/domain"
)

// AssessmentRepository encapsulates survey assessment persistence.
type AssessmentRepository interface {
	GetLatestByUser(ctx context.Context, userID string) (*domain.Assessment, error)
	// ReplaceAll clears the assessment collection and inserts the given
	// records in a single transaction. Bulk import is a full-replace
	// operation, never incremental.
	ReplaceAll(ctx context.Context, assessments []domain.Assessment) error
	CountAll(ctx context.Context) (int64, error)
}

type assessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository returns a Postgres-backed implementation.
func NewAssessmentRepository(pool *pgxpool.Pool) AssessmentRepository {
	return &assessmentRepository{pool: pool}
}

func (r *assessmentRepository) GetLatestByUser(ctx context.Context, userID string) (*domain.Assessment, error) {
	const query = `
        SELECT id, user_id, stress_score, burnout_risk, source, created_at
        FROM assessments WHERE user_id=$1
        ORDER BY created_at DESC LIMIT 1`

	var a domain.Assessment
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&a.ID,
		&a.UserID,
		&a.StressScore,
		&a.BurnoutRisk,
		&a.Source,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepository) ReplaceAll(ctx context.Context, assessments []domain.Assessment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM assessments`); err != nil {
		return err
	}

	const insert = `
        INSERT INTO assessments (user_id, stress_score, burnout_risk, source)
        VALUES ($1,$2,$3,$4)`

	batch := &pgx.Batch{}
	for i := range assessments {
		a := &assessments[i]
		var userID *string
		if a.UserID != "" {
			userID = &a.UserID
		}
		batch.Queue(insert, userID, a.StressScore, a.BurnoutRisk, a.Source)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *assessmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
