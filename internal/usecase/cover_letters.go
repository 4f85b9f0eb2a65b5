package usecase

import (
	"context"
	"strings"
	"time"

	"careercortex/internal/domain"

	"github.com/google/uuid"
)

// SaveCoverLetter stores a new letter for the user.
func (s *Service) SaveCoverLetter(ctx context.Context, userID uuid.UUID, title, content string) (*domain.Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrNoContent
	}
	now := time.Now().UTC()
	d := &domain.Document{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      domain.KindCoverLetter,
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.coverLetters.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) UpdateCoverLetter(ctx context.Context, userID, id uuid.UUID, content string) (*domain.Document, error) {
	return s.coverLetters.UpdateContent(ctx, userID, id, content)
}

func (s *Service) GetCoverLetter(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error) {
	return s.coverLetters.Get(ctx, userID, id)
}

func (s *Service) ListCoverLetters(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	return s.coverLetters.ListByUser(ctx, userID)
}
