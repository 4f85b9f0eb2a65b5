package repository

import (
	"context"
	"errors"
	"fmt"

	"careercortex/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO profiles (user_id, industry, sub_industry, bio, experience, skills, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (user_id) DO UPDATE SET industry = EXCLUDED.industry, sub_industry = EXCLUDED.sub_industry,
			bio = EXCLUDED.bio, experience = EXCLUDED.experience, skills = EXCLUDED.skills, updated_at = EXCLUDED.updated_at`,
		p.UserID, p.Industry, p.SubIndustry, p.Bio, p.Experience, p.Skills, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if r.pool == nil {
		return nil, domain.ErrNotFound
	}
	p := &domain.Profile{UserID: userID}
	err := r.pool.QueryRow(ctx, `SELECT industry, sub_industry, bio, experience, skills, updated_at
		FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.Industry, &p.SubIndustry, &p.Bio, &p.Experience, &p.Skills, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}
