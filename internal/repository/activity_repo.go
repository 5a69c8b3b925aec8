package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnpath-backend/internal/models"
)

type ActivityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepo(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

func (r *ActivityRepo) Create(ctx context.Context, a *models.Activity) error {
	query := `
		INSERT INTO activities (id, student_id, activity_name, activity_type, start_time, end_time, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	a.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		a.ID, a.StudentID, a.ActivityName, a.ActivityType, a.StartTime, a.EndTime, a.Description,
	).Scan(&a.CreatedAt)
}

func (r *ActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	a := &models.Activity{}
	query := `SELECT id, student_id, activity_name, activity_type, start_time, end_time, description, created_at
		FROM activities WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StudentID, &a.ActivityName, &a.ActivityType, &a.StartTime, &a.EndTime, &a.Description, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByStudent returns all of a student's activities, newest start first.
func (r *ActivityRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Activity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, student_id, activity_name, activity_type, start_time, end_time, description, created_at
		FROM activities
		WHERE student_id = $1
		ORDER BY start_time DESC
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// ListRecentByStudent returns the student's most recent activities by start
// time, capped at limit. This is the interest profiler's input, so ordering
// matters.
func (r *ActivityRepo) ListRecentByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]models.Activity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, student_id, activity_name, activity_type, start_time, end_time, description, created_at
		FROM activities
		WHERE student_id = $1
		ORDER BY start_time DESC
		LIMIT $2
	`, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (r *ActivityRepo) Update(ctx context.Context, a *models.Activity) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE activities
		SET activity_name = $1, activity_type = $2, start_time = $3, end_time = $4, description = $5
		WHERE id = $6
	`, a.ActivityName, a.ActivityType, a.StartTime, a.EndTime, a.Description, a.ID)
	return err
}

func (r *ActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM activities WHERE id = $1", id)
	return err
}

func scanActivities(rows pgx.Rows) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.ActivityName, &a.ActivityType, &a.StartTime, &a.EndTime, &a.Description, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
