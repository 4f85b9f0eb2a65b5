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

type CoverLetterRepo struct {
	pool *pgxpool.Pool
}

func NewCoverLetterRepo(pool *pgxpool.Pool) *CoverLetterRepo {
	return &CoverLetterRepo{pool: pool}
}

func (r *CoverLetterRepo) Save(ctx context.Context, d *domain.Document) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO cover_letters (id, user_id, title, content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`,
		d.ID, d.UserID, d.Title, d.Content, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save cover letter: %w", err)
	}
	return nil
}

func (r *CoverLetterRepo) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error) {
	if r.pool == nil {
		return nil, domain.ErrNotFound
	}
	d := &domain.Document{ID: id, UserID: userID, Kind: domain.KindCoverLetter}
	err := r.pool.QueryRow(ctx, `SELECT title, content, created_at, updated_at FROM cover_letters WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cover letter: %w", err)
	}
	return d, nil
}

// UpdateContent replaces the Markdown of a letter owned by userID.
func (r *CoverLetterRepo) UpdateContent(ctx context.Context, userID, id uuid.UUID, content string) (*domain.Document, error) {
	if r.pool == nil {
		return nil, domain.ErrNotFound
	}
	d := &domain.Document{ID: id, UserID: userID, Kind: domain.KindCoverLetter, Content: content}
	err := r.pool.QueryRow(ctx, `UPDATE cover_letters SET content = $3, updated_at = $4
		WHERE id = $1 AND user_id = $2
		RETURNING title, created_at, updated_at`,
		id, userID, content, time.Now().UTC()).Scan(&d.Title, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update cover letter: %w", err)
	}
	return d, nil
}

// ListByUser returns the user's letters, newest first, without content.
func (r *CoverLetterRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	out := make([]domain.Document, 0)
	if r.pool == nil {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT id, title, created_at, updated_at FROM cover_letters
		WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cover letters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		d := domain.Document{UserID: userID, Kind: domain.KindCoverLetter}
		if err := rows.Scan(&d.ID, &d.Title, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cover letter: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
