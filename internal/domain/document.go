package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what a stored Markdown document is.
type Kind string

const (
	KindResume      Kind = "resume"
	KindCoverLetter Kind = "cover-letter"
)

// ParseKind maps a request value to a Kind, defaulting to a résumé.
func ParseKind(s string) Kind {
	if Kind(s) == KindCoverLetter {
		return KindCoverLetter
	}
	return KindResume
}

var ErrNotFound = errors.New("document not found")

// Document is the persisted unit: a Markdown string keyed by its owner.
type Document struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
