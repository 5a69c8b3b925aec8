package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnpath-backend/internal/models"
)

type RecommendationRepo struct {
	pool *pgxpool.Pool
}

func NewRecommendationRepo(pool *pgxpool.Pool) *RecommendationRepo {
	return &RecommendationRepo{pool: pool}
}

// Insert records a teacher recommendation. Re-recommending the same
// (teacher, student, resource) triple is a no-op thanks to the unique
// constraint, which is what makes the operation idempotent.
func (r *RecommendationRepo) Insert(ctx context.Context, rec *models.TeacherRecommendation) error {
	query := `
		INSERT INTO teacher_recommendations (id, teacher_id, student_id, resource_id, recommended_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (teacher_id, student_id, resource_id) DO NOTHING`

	rec.ID = uuid.New()
	rec.Timestamp = time.Now().UTC()

	_, err := r.pool.Exec(ctx, query, rec.ID, rec.TeacherID, rec.StudentID, rec.ResourceID, rec.Timestamp)
	return err
}

// ListByStudent returns all recommendation rows for a student across every
// teacher, oldest first. Duplicate resource ids across teachers are possible
// here; the engine dedupes them.
func (r *RecommendationRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.TeacherRecommendation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, teacher_id, student_id, resource_id, recommended_at
		FROM teacher_recommendations
		WHERE student_id = $1
		ORDER BY recommended_at, id
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]models.TeacherRecommendation, 0)
	for rows.Next() {
		var rec models.TeacherRecommendation
		if err := rows.Scan(&rec.ID, &rec.TeacherID, &rec.StudentID, &rec.ResourceID, &rec.Timestamp); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
