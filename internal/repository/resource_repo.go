package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnpath-backend/internal/models"
)

type ResourceRepo struct {
	pool *pgxpool.Pool
}

func NewResourceRepo(pool *pgxpool.Pool) *ResourceRepo {
	return &ResourceRepo{pool: pool}
}

func (r *ResourceRepo) Create(ctx context.Context, res *models.Resource) error {
	query := `
		INSERT INTO resources (id, resource_name, resource_type, description, resource_url, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	res.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		res.ID, res.ResourceName, res.ResourceType, res.Description, res.ResourceURL, res.CreatedBy,
	).Scan(&res.CreatedAt)
}

func (r *ResourceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	res := &models.Resource{}
	query := `SELECT id, resource_name, resource_type, description, resource_url, created_by, average_rating, created_at
		FROM resources WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.ResourceName, &res.ResourceType, &res.Description,
		&res.ResourceURL, &res.CreatedBy, &res.AverageRating, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ListAll returns the full catalog in insertion order. The engine's fill and
// ranking rules depend on this order being repeatable.
func (r *ResourceRepo) ListAll(ctx context.Context) ([]models.Resource, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, resource_name, resource_type, description, resource_url, created_by, average_rating, created_at
		FROM resources
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resources := make([]models.Resource, 0)
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(
			&res.ID, &res.ResourceName, &res.ResourceType, &res.Description,
			&res.ResourceURL, &res.CreatedBy, &res.AverageRating, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *ResourceRepo) Update(ctx context.Context, res *models.Resource) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE resources
		SET resource_name = $1, resource_type = $2, description = $3, resource_url = $4
		WHERE id = $5
	`, res.ResourceName, res.ResourceType, res.Description, res.ResourceURL, res.ID)
	return err
}

// UpdateAverageRating persists the cached average the rating aggregator
// produced.
func (r *ResourceRepo) UpdateAverageRating(ctx context.Context, id uuid.UUID, average float64) error {
	_, err := r.pool.Exec(ctx, "UPDATE resources SET average_rating = $1 WHERE id = $2", average, id)
	return err
}

func (r *ResourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM resources WHERE id = $1", id)
	return err
}
