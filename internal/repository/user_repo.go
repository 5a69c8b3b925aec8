package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"learnpath-backend/internal/models"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

// DigestRecipient is the slim projection the weekly digest scheduler works on.
type DigestRecipient struct {
	ID               uuid.UUID
	Email            string
	FullName         string
	DigestLastSentAt *time.Time
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	user.ID = uuid.New()
	user.IsActive = true

	return r.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role, user.IsVerified,
	).Scan(&user.CreatedAt)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, full_name, role, is_verified, is_active, digest_enabled, created_at, last_login_at
		FROM users WHERE email = $1`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Role,
		&user.IsVerified, &user.IsActive, &user.DigestEnabled, &user.CreatedAt, &user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, full_name, role, is_verified, is_active, digest_enabled, created_at, last_login_at
		FROM users WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Role,
		&user.IsVerified, &user.IsActive, &user.DigestEnabled, &user.CreatedAt, &user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) VerifyEmail(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "UPDATE users SET is_verified = TRUE WHERE id = $1", userID)
	return err
}

func (r *UserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "UPDATE users SET last_login_at = $1 WHERE id = $2", time.Now(), userID)
	return err
}

func (r *UserRepo) SetDigestEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error {
	_, err := r.pool.Exec(ctx, "UPDATE users SET digest_enabled = $1 WHERE id = $2", enabled, userID)
	return err
}

func (r *UserRepo) SetDigestSentAt(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx, "UPDATE users SET digest_last_sent_at = $1 WHERE id = $2", at, userID)
	return err
}

// ListDigestRecipients returns active, verified students who opted into the
// weekly progress digest.
func (r *UserRepo) ListDigestRecipients(ctx context.Context) ([]DigestRecipient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, full_name, digest_last_sent_at
		FROM users
		WHERE is_active = TRUE
		  AND is_verified = TRUE
		  AND digest_enabled = TRUE
		  AND role = 'student'
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipients := make([]DigestRecipient, 0)
	for rows.Next() {
		var recipient DigestRecipient
		if scanErr := rows.Scan(
			&recipient.ID,
			&recipient.Email,
			&recipient.FullName,
			&recipient.DigestLastSentAt,
		); scanErr != nil {
			return nil, scanErr
		}
		recipients = append(recipients, recipient)
	}

	return recipients, rows.Err()
}
