package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// UserDataRepo answers questions across every table that holds user
// data.
type UserDataRepo struct {
	pool *pgxpool.Pool
}

func NewUserDataRepo(pool *pgxpool.Pool) *UserDataRepo {
	return &UserDataRepo{pool: pool}
}

// HasData reports whether the user has saved a résumé, a cover letter, an
// assessment or any onboarding answer.
func (r *UserDataRepo) HasData(ctx context.Context, userID uuid.UUID) (bool, error) {
	if r.pool == nil {
		return false, nil
	}
	var has bool
	err := r.pool.QueryRow(ctx, `SELECT
		EXISTS (SELECT 1 FROM resumes WHERE user_id = $1)
		OR EXISTS (SELECT 1 FROM cover_letters WHERE user_id = $1)
		OR EXISTS (SELECT 1 FROM assessments WHERE user_id = $1)
		OR EXISTS (SELECT 1 FROM profiles WHERE user_id = $1
			AND (industry <> '' OR bio <> '' OR experience IS NOT NULL OR cardinality(skills) > 0))`, userID).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("check user data: %w", err)
	}
	return has, nil
}

var clearStatements = []string{
	`DELETE FROM assessments WHERE user_id = $1`,
	`DELETE FROM cover_letters WHERE user_id = $1`,
	`DELETE FROM resumes WHERE user_id = $1`,
	`UPDATE profiles SET industry = '', sub_industry = '', bio = '', experience = NULL, skills = '{}', updated_at = now()
		WHERE user_id = $1`,
}

// Clear deletes the user's documents and assessments and resets their
// profile, all in one transaction.
func (r *UserDataRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	if r.pool == nil {
		return nil
	}
	err := r.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		for _, stmt := range clearStatements {
			if _, err := tx.Exec(ctx, stmt, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear user data: %w", err)
	}
	return nil
}
