package usecase

import (
	"context"
	"errors"
	"time"

	"careercortex/internal/domain"
	"careercortex/internal/model"

	"github.com/google/uuid"
)

// SaveProfile validates the onboarding form and stores it.
func (s *Service) SaveProfile(ctx context.Context, userID uuid.UUID, o model.Onboarding) (*domain.Profile, error) {
	v, err := model.ParseProfile(o)
	if err != nil {
		return nil, err
	}
	p := &domain.Profile{
		UserID:      userID,
		Industry:    v.Industry,
		SubIndustry: v.SubIndustry,
		Bio:         v.Bio,
		Experience:  &v.Experience,
		Skills:      v.Skills,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProfile returns an empty profile for users who never onboarded.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Profile{UserID: userID, Skills: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}
