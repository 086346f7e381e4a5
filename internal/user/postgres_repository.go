package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new user record.
func (r *PostgresRepository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (google_id, email, name, picture, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, u.GoogleID, u.Email, u.Name, u.Picture, u.IsAdmin).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// GetByID retrieves a single user by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, google_id, email, name, picture, is_admin, created_at
		FROM users
		WHERE id = $1`

	var u User
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &u, nil
}

// GetByGoogleID retrieves a single user by its external OAuth subject id.
func (r *PostgresRepository) GetByGoogleID(ctx context.Context, googleID string) (*User, error) {
	query := `
		SELECT id, google_id, email, name, picture, is_admin, created_at
		FROM users
		WHERE google_id = $1`

	var u User
	err := r.pool.QueryRow(ctx, query, googleID).
		Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user by google id: %w", err)
	}

	return &u, nil
}

// List retrieves every user ordered by creation time descending, each with
// the number of profiles they own.
func (r *PostgresRepository) List(ctx context.Context) ([]WithProfileCount, error) {
	query := `
		SELECT u.id, u.google_id, u.email, u.name, u.picture, u.is_admin, u.created_at,
			COUNT(p.id) AS profile_count
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []WithProfileCount
	for rows.Next() {
		var u WithProfileCount
		err := rows.Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.IsAdmin, &u.CreatedAt, &u.ProfileCount)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	if users == nil {
		users = []WithProfileCount{}
	}

	return users, nil
}

// SetAdmin updates the administrator flag for a user.
func (r *PostgresRepository) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	result, err := r.pool.Exec(ctx, `UPDATE users SET is_admin = $1 WHERE id = $2`, isAdmin, id)
	if err != nil {
		return fmt.Errorf("updating admin flag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes the user's profiles and then the user itself. Both deletes
// run in one transaction so a crash cannot orphan profiles.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("deleting user profiles: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing delete transaction: %w", err)
	}

	return nil
}

// Stats computes the admin dashboard aggregates in a single round trip.
func (r *PostgresRepository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM profiles),
			(SELECT COUNT(*) FROM users WHERE is_admin),
			(SELECT COUNT(*) FROM users WHERE created_at >= now() - interval '7 days')`

	var s Stats
	err := r.pool.QueryRow(ctx, query).
		Scan(&s.TotalUsers, &s.TotalProfiles, &s.AdminUsers, &s.RecentUsers)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}

	return &s, nil
}
