package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foodiet/backend/pkg/profile"
)

// ProfileRepository implements profile.Repository backed by PostgreSQL (pgx).
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	repo := &ProfileRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			lastname TEXT NOT NULL,
			picture TEXT NOT NULL,
			location TEXT NOT NULL,
			age INT NOT NULL,
			gender TEXT NOT NULL,
			height DOUBLE PRECISION NOT NULL,
			weight DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

// Create inserts the eight profile attributes and returns the identifier the
// database generated for the row.
func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) (uuid.UUID, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (name, lastname, picture, location, age, gender, height, weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, p.Name, p.Lastname, p.Picture, p.Location, p.Age, p.Gender, p.Height, p.Weight)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, lastname, picture, location, age, gender, height, weight, created_at
		FROM profiles WHERE id = $1
	`, id)
	var p profile.Profile
	var createdAt time.Time
	if err := row.Scan(&p.ID, &p.Name, &p.Lastname, &p.Picture, &p.Location, &p.Age, &p.Gender, &p.Height, &p.Weight, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.CreatedAt = createdAt.UTC()
	return p, nil
}
