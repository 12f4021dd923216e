package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/wellness-service/internal/domain"
)

// MoodLogRepository encapsulates the append-only mood log.
type MoodLogRepository interface {
	Append(ctx context.Context, entry *domain.MoodEntry) error
	// ListRecent returns up to n entries for the user, newest first.
	ListRecent(ctx context.Context, userID string, n int) ([]domain.MoodEntry, error)
}

type moodLogRepository struct {
	pool *pgxpool.Pool
}

// NewMoodLogRepository returns a Postgres-backed implementation.
func NewMoodLogRepository(pool *pgxpool.Pool) MoodLogRepository {
	return &moodLogRepository{pool: pool}
}

func (r *moodLogRepository) Append(ctx context.Context, entry *domain.MoodEntry) error {
	const query = `
        INSERT INTO mood_entries (user_id, emotion, confidence, stress)
        VALUES ($1,$2,$3,$4)
        RETURNING id, recorded_at`

	return r.pool.QueryRow(ctx, query,
		entry.UserID,
		entry.Emotion,
		entry.Confidence,
		entry.Stress,
	).Scan(&entry.ID, &entry.RecordedAt)
}

func (r *moodLogRepository) ListRecent(ctx context.Context, userID string, n int) ([]domain.MoodEntry, error) {
	const query = `
        SELECT id, user_id, emotion, confidence, stress, recorded_at
        FROM mood_entries WHERE user_id=$1
        ORDER BY recorded_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.MoodEntry, 0, n)
	for rows.Next() {
		var e domain.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Emotion, &e.Confidence, &e.Stress, &e.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
