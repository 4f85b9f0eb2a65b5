package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careercortex/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResumeRepo stores one Markdown résumé per user.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

// Upsert creates the user's résumé or replaces its content.
func (r *ResumeRepo) Upsert(ctx context.Context, userID uuid.UUID, content string) (*domain.Document, error) {
	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      domain.KindResume,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if r.pool == nil {
		return doc, nil
	}

	err := r.pool.QueryRow(ctx, `INSERT INTO resumes (id, user_id, content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$4)
		ON CONFLICT (user_id) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`,
		doc.ID, userID, content, now).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert resume: %w", err)
	}
	return doc, nil
}

func (r *ResumeRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.Document, error) {
	if r.pool == nil {
		return nil, domain.ErrNotFound
	}
	doc := &domain.Document{UserID: userID, Kind: domain.KindResume}
	err := r.pool.QueryRow(ctx, `SELECT id, content, created_at, updated_at FROM resumes WHERE user_id = $1`, userID).
		Scan(&doc.ID, &doc.Content, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get resume: %w", err)
	}
	return doc, nil
}
