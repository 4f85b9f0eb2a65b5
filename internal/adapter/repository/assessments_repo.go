package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"careercortex/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// AssessmentRepo stores quiz results. Questions are kept as a JSONB array.
type AssessmentRepo struct {
	pool *pgxpool.Pool
}

func NewAssessmentRepo(pool *pgxpool.Pool) *AssessmentRepo {
	return &AssessmentRepo{pool: pool}
}

func (r *AssessmentRepo) Save(ctx context.Context, a *domain.Assessment) error {
	if r.pool == nil {
		return nil
	}
	questions, err := json.Marshal(a.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO assessments (id, user_id, category, quiz_score, questions, improvement_tip, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.UserID, a.Category, a.QuizScore, questions, a.ImprovementTip, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

// ListByUser returns the user's assessments, oldest first.
func (r *AssessmentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assessment, error) {
	out := make([]domain.Assessment, 0)
	if r.pool == nil {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT id, category, quiz_score, questions, improvement_tip, created_at
		FROM assessments WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a := domain.Assessment{UserID: userID}
		var questions []byte
		if err := rows.Scan(&a.ID, &a.Category, &a.QuizScore, &questions, &a.ImprovementTip, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		if err := json.Unmarshal(questions, &a.Questions); err != nil {
			return nil, fmt.Errorf("decode questions for %s: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
