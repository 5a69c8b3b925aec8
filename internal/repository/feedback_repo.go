package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnpath-backend/internal/models"
)

type FeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

// Upsert stores a student's feedback for a resource. The unique constraint on
// (student_id, resource_id) makes a resubmission overwrite rating, text and
// timestamp in place; it is also the serialization point for concurrent
// submissions on the same pair.
func (r *FeedbackRepo) Upsert(ctx context.Context, f *models.ResourceFeedback) error {
	query := `
		INSERT INTO resource_feedback (id, resource_id, student_id, rating, feedback, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (student_id, resource_id) DO UPDATE
		SET rating = EXCLUDED.rating,
			feedback = EXCLUDED.feedback,
			submitted_at = EXCLUDED.submitted_at
		RETURNING id`

	f.Timestamp = time.Now().UTC()

	return r.pool.QueryRow(ctx, query,
		uuid.New(), f.ResourceID, f.StudentID, f.Rating, f.Feedback, f.Timestamp,
	).Scan(&f.ID)
}

// ListByResource returns every feedback row for one resource; the rating
// aggregator consumes this set.
func (r *FeedbackRepo) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]models.ResourceFeedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, resource_id, student_id, rating, feedback, submitted_at
		FROM resource_feedback
		WHERE resource_id = $1
		ORDER BY submitted_at
	`, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := make([]models.ResourceFeedback, 0)
	for rows.Next() {
		var f models.ResourceFeedback
		if err := rows.Scan(&f.ID, &f.ResourceID, &f.StudentID, &f.Rating, &f.Feedback, &f.Timestamp); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}
