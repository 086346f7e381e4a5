package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const profileColumns = `id, user_id, name,
	merah, jingga, kuning, hijau, biru, nila, ungu,
	minigames_cleared, created_at, last_used`

func scanProfile(row pgx.Row, p *Profile) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Name,
		&p.Achievements.Merah, &p.Achievements.Jingga, &p.Achievements.Kuning,
		&p.Achievements.Hijau, &p.Achievements.Biru, &p.Achievements.Nila,
		&p.Achievements.Ungu,
		&p.MinigamesCleared, &p.CreatedAt, &p.LastUsed,
	)
}

// ListByUser retrieves all profiles owned by the user, most recently used first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1
		ORDER BY last_used DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile rows: %w", err)
	}

	if profiles == nil {
		profiles = []Profile{}
	}

	return profiles, nil
}

// Create inserts a new profile record with zeroed achievements and counter.
func (r *PostgresRepository) Create(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO profiles (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, last_used`

	err := r.pool.QueryRow(ctx, query, p.UserID, p.Name).Scan(&p.ID, &p.CreatedAt, &p.LastUsed)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateProfileName
		}
		return fmt.Errorf("inserting profile: %w", err)
	}

	return nil
}

// Get retrieves a single profile scoped to its owner. A profile owned by a
// different user is reported as not found.
func (r *PostgresRepository) Get(ctx context.Context, userID, id uuid.UUID) (*Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = $1 AND user_id = $2`

	var p Profile
	err := scanProfile(r.pool.QueryRow(ctx, query, id, userID), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	return &p, nil
}

// Update persists the mutable fields of a profile, again scoped to the owner.
func (r *PostgresRepository) Update(ctx context.Context, p *Profile) error {
	query := `
		UPDATE profiles
		SET name = $1,
			merah = $2, jingga = $3, kuning = $4, hijau = $5,
			biru = $6, nila = $7, ungu = $8,
			minigames_cleared = $9, last_used = $10
		WHERE id = $11 AND user_id = $12`

	result, err := r.pool.Exec(ctx, query,
		p.Name,
		p.Achievements.Merah, p.Achievements.Jingga, p.Achievements.Kuning,
		p.Achievements.Hijau, p.Achievements.Biru, p.Achievements.Nila,
		p.Achievements.Ungu,
		p.MinigamesCleared, p.LastUsed,
		p.ID, p.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateProfileName
		}
		return fmt.Errorf("updating profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// Delete removes a profile scoped to its owner.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM profiles WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}
