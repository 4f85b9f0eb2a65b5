package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"careercortex/internal/domain"
	"careercortex/internal/render"
	infra "careercortex/pkg/infrastructure"

	"github.com/google/uuid"
)

// ErrNoContent is returned when a render request carries nothing to print.
var ErrNoContent = errors.New("no content provided")

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string, opts infra.PDFOptions) ([]byte, error)
}

type PDFCache interface {
	Get(ctx context.Context, kind, html string) ([]byte, bool)
	Put(ctx context.Context, kind, html string, pdf []byte)
}

type ResumeStore interface {
	Upsert(ctx context.Context, userID uuid.UUID, content string) (*domain.Document, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.Document, error)
}

type CoverLetterStore interface {
	Save(ctx context.Context, d *domain.Document) error
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error)
	UpdateContent(ctx context.Context, userID, id uuid.UUID, content string) (*domain.Document, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error)
}

type ProfileStore interface {
	Upsert(ctx context.Context, p *domain.Profile) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type AssessmentStore interface {
	Save(ctx context.Context, a *domain.Assessment) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assessment, error)
}

type UserDataStore interface {
	HasData(ctx context.Context, userID uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// Deps are the collaborators a Service is built from. Cache may be nil.
type Deps struct {
	Renderer     Renderer
	Cache        PDFCache
	Resumes      ResumeStore
	CoverLetters CoverLetterStore
	Profiles     ProfileStore
	Assessments  AssessmentStore
	UserData     UserDataStore
}

type Options struct {
	// RenderAttempts bounds how often a failed or malformed print is retried.
	RenderAttempts int
	// RetryDelay is the pause between render attempts.
	RetryDelay time.Duration
}

type Service struct {
	renderer     Renderer
	cache        PDFCache
	resumes      ResumeStore
	coverLetters CoverLetterStore
	profiles     ProfileStore
	assessments  AssessmentStore
	userData     UserDataStore
	opts         Options
}

func NewService(d Deps, opts Options) *Service {
	if opts.RenderAttempts < 1 {
		opts.RenderAttempts = 3
	}
	return &Service{
		renderer:     d.Renderer,
		cache:        d.Cache,
		resumes:      d.Resumes,
		coverLetters: d.CoverLetters,
		profiles:     d.Profiles,
		assessments:  d.Assessments,
		userData:     d.UserData,
		opts:         opts,
	}
}

// PDFRequest describes one document to print. HTML wins over Markdown when
// both are set.
type PDFRequest struct {
	Kind     domain.Kind
	Markdown string
	HTML     string
	Filename string
}

type PDFResult struct {
	PDF      []byte
	Filename string
	Cached   bool
}

// RenderPDF turns a stored document or an HTML fragment into a PDF.
func (s *Service) RenderPDF(ctx context.Context, req PDFRequest) (*PDFResult, error) {
	body := req.HTML
	if strings.TrimSpace(body) == "" {
		if strings.TrimSpace(req.Markdown) == "" {
			return nil, ErrNoContent
		}
		html, err := render.MarkdownToHTML(req.Markdown)
		if err != nil {
			return nil, err
		}
		body = html
	}

	page := render.Document(req.Kind, body)
	result := &PDFResult{Filename: render.Filename(req.Kind, req.Filename)}

	if s.cache != nil {
		if pdf, ok := s.cache.Get(ctx, string(req.Kind), page); ok {
			result.PDF = pdf
			result.Cached = true
			return result, nil
		}
	}

	m := render.MarginsFor(req.Kind)
	opts := infra.PDFOptions{MarginTop: m.Top, MarginRight: m.Right, MarginBottom: m.Bottom, MarginLeft: m.Left}

	// produce PDF with retry and validation
	var pdfBytes []byte
	var renderErr error
	for attempt := 1; attempt <= s.opts.RenderAttempts; attempt++ {
		pdfBytes, renderErr = s.renderer.RenderHTMLToPDF(ctx, page, opts)
		if renderErr == nil {
			// validate basic PDF signature
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		slog.Warn("pdf render attempt failed", "attempt", attempt, "kind", req.Kind, "err", renderErr)
		if attempt < s.opts.RenderAttempts {
			select {
			case <-time.After(s.opts.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, fmt.Errorf("render pdf: %w", renderErr)
	}

	if s.cache != nil {
		s.cache.Put(ctx, string(req.Kind), page, pdfBytes)
	}
	result.PDF = pdfBytes
	return result, nil
}

// HasUserData reports whether the user has saved any document, assessment
// or profile answer.
func (s *Service) HasUserData(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.userData.HasData(ctx, userID)
}

// ClearUserData removes the user's résumé, cover letters and assessments and
// resets their profile.
func (s *Service) ClearUserData(ctx context.Context, userID uuid.UUID) error {
	if err := s.userData.Clear(ctx, userID); err != nil {
		return err
	}
	slog.Info("user data cleared", "user_id", userID)
	return nil
}
