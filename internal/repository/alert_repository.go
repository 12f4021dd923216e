package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/wellness-service/internal/domain"
)

// AlertRepository encapsulates alert persistence. Alerts are append-only.
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	ListByUser(ctx context.Context, userID string) ([]domain.Alert, error)
}

type alertRepository struct {
	pool *pgxpool.Pool
}

// NewAlertRepository returns a Postgres-backed implementation.
func NewAlertRepository(pool *pgxpool.Pool) AlertRepository {
	return &alertRepository{pool: pool}
}

func (r *alertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	const query = `
        INSERT INTO alerts (user_id, risk_level, reason)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		alert.UserID,
		alert.RiskLevel,
		alert.Reason,
	).Scan(&alert.ID, &alert.CreatedAt)
}

func (r *alertRepository) ListByUser(ctx context.Context, userID string) ([]domain.Alert, error) {
	const query = `
        SELECT id, user_id, risk_level, reason, created_at
        FROM alerts WHERE user_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]domain.Alert, 0)
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(&a.ID, &a.UserID, &a.RiskLevel, &a.Reason, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
