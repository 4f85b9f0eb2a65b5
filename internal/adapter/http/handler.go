package http

import (
	"errors"
	"log/slog"
	"strings"

	"careercortex/internal/domain"
	"careercortex/internal/model"
	"careercortex/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserHeader carries the caller's id, set by the identity proxy in front of
// the service.
const UserHeader = "X-User-ID"

var errNoIdentity = errors.New("missing or invalid user id")

type Handler struct {
	svc *usecase.Service
}

func NewHandler(svc *usecase.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts every route on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Post("/resume/preview", h.PreviewResume)
	api.Post("/resume/parse", h.ParseResume)
	api.Get("/resume", h.GetResume)
	api.Put("/resume", h.SaveResume)
	api.Post("/generate-pdf", h.GeneratePDF)

	api.Post("/cover-letters", h.CreateCoverLetter)
	api.Get("/cover-letters", h.ListCoverLetters)
	api.Get("/cover-letters/:id", h.GetCoverLetter)
	api.Put("/cover-letters/:id", h.UpdateCoverLetter)

	api.Get("/profile", h.GetProfile)
	api.Put("/profile", h.SaveProfile)

	api.Post("/assessments", h.CreateAssessment)
	api.Get("/assessments", h.ListAssessments)
	api.Get("/assessments/stats", h.AssessmentStats)

	api.Get("/check-user-data", h.CheckUserData)
	api.Delete("/clear-data", h.ClearData)
}

func userFromHeader(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Get(UserHeader))
	if raw == "" {
		return uuid.Nil, errNoIdentity
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errNoIdentity
	}
	return id, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type formReq struct {
	DisplayName string        `json:"displayName"`
	Resume      *model.Resume `json:"resume"`
	Markdown    *string       `json:"markdown"`
}

func (h *Handler) PreviewResume(c *fiber.Ctx) error {
	var req formReq
	if err := c.BodyParser(&req); err != nil || req.Resume == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return c.JSON(fiber.Map{"markdown": h.svc.Preview(*req.Resume, req.DisplayName)})
}

func (h *Handler) ParseResume(c *fiber.Ctx) error {
	var req formReq
	if err := c.BodyParser(&req); err != nil || req.Markdown == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return c.JSON(h.svc.Parse(*req.Markdown))
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	view, err := h.svc.LoadResume(c.UserContext(), uid)
	if err != nil {
		slog.Error("load resume failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load resume"})
	}
	return c.JSON(view)
}

// SaveResume accepts either raw Markdown from the editor or the form.
func (h *Handler) SaveResume(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	var req formReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	var doc *domain.Document
	switch {
	case req.Markdown != nil:
		doc, err = h.svc.SaveResumeMarkdown(c.UserContext(), uid, *req.Markdown)
	case req.Resume != nil:
		doc, err = h.svc.SaveResumeForm(c.UserContext(), uid, req.DisplayName, *req.Resume)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if errors.Is(err, model.ErrInvalid) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		slog.Error("save resume failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save resume"})
	}
	return c.JSON(doc)
}

type pdfReq struct {
	HTMLContent string `json:"htmlContent"`
	Markdown    string `json:"markdown"`
	Type        string `json:"type"`
	Filename    string `json:"filename"`
}

func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	var req pdfReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := h.svc.RenderPDF(c.UserContext(), usecase.PDFRequest{
		Kind:     domain.ParseKind(req.Type),
		HTML:     req.HTMLContent,
		Markdown: req.Markdown,
		Filename: req.Filename,
	})
	if errors.Is(err, usecase.ErrNoContent) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No content provided"})
	}
	if err != nil {
		slog.Error("pdf generation failed", "type", req.Type, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	// Attachment sets the content type from the .pdf extension and escapes
	// the name inside the quoted filename parameter.
	c.Attachment(res.Filename)
	if res.Cached {
		c.Set("X-PDF-Cache", "hit")
	}
	return c.Send(res.PDF)
}

type coverLetterReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) CreateCoverLetter(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	var req coverLetterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	doc, err := h.svc.SaveCoverLetter(c.UserContext(), uid, req.Title, req.Content)
	if errors.Is(err, usecase.ErrNoContent) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No content provided"})
	}
	if err != nil {
		slog.Error("save cover letter failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save cover letter"})
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *Handler) ListCoverLetters(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	docs, err := h.svc.ListCoverLetters(c.UserContext(), uid)
	if err != nil {
		slog.Error("list cover letters failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list cover letters"})
	}
	return c.JSON(docs)
}

func (h *Handler) GetCoverLetter(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	doc, err := h.svc.GetCoverLetter(c.UserContext(), uid, id)
	return h.documentResponse(c, doc, err)
}

func (h *Handler) UpdateCoverLetter(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var req coverLetterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	doc, err := h.svc.UpdateCoverLetter(c.UserContext(), uid, id, req.Content)
	return h.documentResponse(c, doc, err)
}

func (h *Handler) documentResponse(c *fiber.Ctx, doc *domain.Document, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if err != nil {
		slog.Error("cover letter request failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(doc)
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	p, err := h.svc.GetProfile(c.UserContext(), uid)
	if err != nil {
		slog.Error("load profile failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}
	return c.JSON(p)
}

func (h *Handler) SaveProfile(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	var req model.Onboarding
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	p, err := h.svc.SaveProfile(c.UserContext(), uid, req)
	if errors.Is(err, model.ErrInvalid) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		slog.Error("save profile failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}
	return c.JSON(p)
}

type questionReq struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	UserAnswer  string `json:"userAnswer"`
	Explanation string `json:"explanation"`
}

type assessmentReq struct {
	Category       string        `json:"category"`
	Questions      []questionReq `json:"questions"`
	ImprovementTip string        `json:"improvementTip"`
}

// CreateAssessment stores a finished quiz; the score is computed here, not
// taken from the client.
func (h *Handler) CreateAssessment(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	var req assessmentReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	in := usecase.AssessmentInput{Category: req.Category, ImprovementTip: req.ImprovementTip}
	for _, q := range req.Questions {
		in.Questions = append(in.Questions, domain.QuestionResult{
			Question:    q.Question,
			Answer:      q.Answer,
			UserAnswer:  q.UserAnswer,
			Explanation: q.Explanation,
		})
	}
	a, err := h.svc.SaveAssessment(c.UserContext(), uid, in)
	if errors.Is(err, usecase.ErrNoQuestions) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No questions provided"})
	}
	if err != nil {
		slog.Error("save assessment failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save assessment"})
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *Handler) ListAssessments(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	list, err := h.svc.ListAssessments(c.UserContext(), uid)
	if err != nil {
		slog.Error("list assessments failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list assessments"})
	}
	return c.JSON(list)
}

func (h *Handler) AssessmentStats(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	stats, err := h.svc.AssessmentStats(c.UserContext(), uid)
	if err != nil {
		slog.Error("assessment stats failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load assessment stats"})
	}
	return c.JSON(stats)
}

// CheckUserData never fails the request: anonymous callers and store errors
// both report no data.
func (h *Handler) CheckUserData(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return c.JSON(fiber.Map{"hasData": false})
	}
	has, err := h.svc.HasUserData(c.UserContext(), uid)
	if err != nil {
		slog.Warn("check user data failed", "user_id", uid, "err", err)
		return c.JSON(fiber.Map{"hasData": false})
	}
	return c.JSON(fiber.Map{"hasData": has})
}

func (h *Handler) ClearData(c *fiber.Ctx) error {
	uid, err := userFromHeader(c)
	if err != nil {
		return unauthorized(c)
	}
	if err := h.svc.ClearUserData(c.UserContext(), uid); err != nil {
		slog.Error("clear data failed", "user_id", uid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to clear data"})
	}
	return c.JSON(fiber.Map{"message": "All data cleared successfully"})
}
