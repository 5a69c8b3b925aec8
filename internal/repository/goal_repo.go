package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnpath-backend/internal/models"
)

type GoalRepo struct {
	pool *pgxpool.Pool
}

func NewGoalRepo(pool *pgxpool.Pool) *GoalRepo {
	return &GoalRepo{pool: pool}
}

func (r *GoalRepo) Create(ctx context.Context, g *models.Goal) error {
	query := `
		INSERT INTO goals (id, student_id, goal_name, goal_description, due_date, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	g.ID = uuid.New()
	g.Status = models.GoalPending

	return r.pool.QueryRow(ctx, query,
		g.ID, g.StudentID, g.GoalName, g.GoalDescription, g.DueDate, g.Priority, g.Status,
	).Scan(&g.CreatedAt)
}

func (r *GoalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Goal, error) {
	g := &models.Goal{}
	query := `SELECT id, student_id, goal_name, goal_description, due_date, priority, status, created_at
		FROM goals WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.StudentID, &g.GoalName, &g.GoalDescription, &g.DueDate, &g.Priority, &g.Status, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *GoalRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Goal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, student_id, goal_name, goal_description, due_date, priority, status, created_at
		FROM goals
		WHERE student_id = $1
		ORDER BY created_at
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(
			&g.ID, &g.StudentID, &g.GoalName, &g.GoalDescription, &g.DueDate, &g.Priority, &g.Status, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *GoalRepo) Update(ctx context.Context, g *models.Goal) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE goals
		SET goal_name = $1, goal_description = $2, due_date = $3, priority = $4
		WHERE id = $5
	`, g.GoalName, g.GoalDescription, g.DueDate, g.Priority, g.ID)
	return err
}

func (r *GoalRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, "UPDATE goals SET status = $1 WHERE id = $2", status, id)
	return err
}

func (r *GoalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM goals WHERE id = $1", id)
	return err
}
