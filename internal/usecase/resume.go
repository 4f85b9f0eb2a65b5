package usecase

import (
	"context"
	"errors"

	"careercortex/internal/domain"
	"careercortex/internal/model"
	"careercortex/internal/transcoder"

	"github.com/google/uuid"
)

// ResumeView is what the builder loads: the stored Markdown and the form
// decoded from it.
type ResumeView struct {
	Markdown string       `json:"markdown"`
	Form     model.Resume `json:"form"`
	Saved    bool         `json:"saved"`
}

// Preview encodes the form without saving it.
func (s *Service) Preview(r model.Resume, displayName string) string {
	return transcoder.Encode(r, transcoder.EncodeOptions{DisplayName: displayName})
}

// Parse decodes Markdown into the form. It never fails.
func (s *Service) Parse(markdown string) model.Resume {
	return transcoder.Decode(markdown)
}

// SaveResumeForm validates the form, encodes it and stores the Markdown.
func (s *Service) SaveResumeForm(ctx context.Context, userID uuid.UUID, displayName string, r model.Resume) (*domain.Document, error) {
	if err := model.Validate(r); err != nil {
		return nil, err
	}
	return s.resumes.Upsert(ctx, userID, s.Preview(r, displayName))
}

// SaveResumeMarkdown stores Markdown edited directly in the editor.
func (s *Service) SaveResumeMarkdown(ctx context.Context, userID uuid.UUID, markdown string) (*domain.Document, error) {
	return s.resumes.Upsert(ctx, userID, markdown)
}

// LoadResume returns the user's résumé. A user without one gets an empty
// view rather than an error.
func (s *Service) LoadResume(ctx context.Context, userID uuid.UUID) (*ResumeView, error) {
	doc, err := s.resumes.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &ResumeView{Form: model.Empty()}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ResumeView{Markdown: doc.Content, Form: transcoder.Decode(doc.Content), Saved: true}, nil
}
