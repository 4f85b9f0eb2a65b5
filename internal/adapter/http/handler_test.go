package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "careercortex/internal/adapter/http"
	"careercortex/internal/adapter/repository"
	"careercortex/internal/domain"
	"careercortex/internal/usecase"
	infra "careercortex/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	err  error
	html string
}

func (s *stubRenderer) RenderHTMLToPDF(ctx context.Context, html string, opts infra.PDFOptions) ([]byte, error) {
	s.html = html
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.7 stub"), nil
}

type letterStore struct {
	docs map[uuid.UUID]domain.Document
}

func (l *letterStore) Save(ctx context.Context, d *domain.Document) error {
	l.docs[d.ID] = *d
	return nil
}

func (l *letterStore) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error) {
	d, ok := l.docs[id]
	if !ok || d.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (l *letterStore) UpdateContent(ctx context.Context, userID, id uuid.UUID, content string) (*domain.Document, error) {
	d, ok := l.docs[id]
	if !ok || d.UserID != userID {
		return nil, domain.ErrNotFound
	}
	d.Content = content
	l.docs[id] = d
	return &d, nil
}

func (l *letterStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	out := []domain.Document{}
	for _, d := range l.docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func newApp(r *stubRenderer) *fiber.App {
	svc := usecase.NewService(usecase.Deps{
		Renderer:     r,
		Resumes:      repository.NewResumeRepo(nil),
		CoverLetters: &letterStore{docs: map[uuid.UUID]domain.Document{}},
		Profiles:     repository.NewProfileRepo(nil),
		Assessments:  repository.NewAssessmentRepo(nil),
		UserData:     repository.NewUserDataRepo(nil),
	}, usecase.Options{RenderAttempts: 2})
	app := fiber.New()
	httpadapter.NewHandler(svc).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body, user string) (int, []byte, map[string][]string) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(httpadapter.UserHeader, user)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b, resp.Header
}

func decodeMap(t *testing.T, b []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestHealth(t *testing.T) {
	code, body, _ := do(t, newApp(&stubRenderer{}), "GET", "/healthz", "", "")
	assert.Equal(t, 200, code)
	assert.Equal(t, "ok", decodeMap(t, body)["status"])
}

func TestPreviewAndParse(t *testing.T) {
	app := newApp(&stubRenderer{})

	code, body, _ := do(t, app, "POST", "/api/resume/preview",
		`{"displayName":"Jane","resume":{"contactInfo":{"email":"j@x.io"},"summary":"Hi","skills":"","experience":[],"education":[],"projects":[]}}`, "")
	require.Equal(t, 200, code)
	md := decodeMap(t, body)["markdown"].(string)
	assert.Contains(t, md, "Jane")
	assert.Contains(t, md, "## Professional Summary\n\nHi")

	payload, _ := json.Marshal(map[string]string{"markdown": md})
	code, body, _ = do(t, app, "POST", "/api/resume/parse", string(payload), "")
	require.Equal(t, 200, code)
	form := decodeMap(t, body)
	assert.Equal(t, "Hi", form["summary"])
	assert.Equal(t, "j@x.io", form["contactInfo"].(map[string]interface{})["email"])
}

func TestPreview_BadPayload(t *testing.T) {
	code, body, _ := do(t, newApp(&stubRenderer{}), "POST", "/api/resume/preview", `{"displayName":"x"}`, "")
	assert.Equal(t, 400, code)
	assert.Equal(t, "invalid payload", decodeMap(t, body)["error"])
}

func TestResume_RequiresIdentity(t *testing.T) {
	app := newApp(&stubRenderer{})
	code, _, _ := do(t, app, "GET", "/api/resume", "", "")
	assert.Equal(t, 401, code)
	code, _, _ = do(t, app, "PUT", "/api/resume", `{"markdown":"x"}`, "not-a-uuid")
	assert.Equal(t, 401, code)
}

func TestGetResume_EmptyForNewUser(t *testing.T) {
	code, body, _ := do(t, newApp(&stubRenderer{}), "GET", "/api/resume", "", uuid.NewString())
	require.Equal(t, 200, code)
	m := decodeMap(t, body)
	assert.Equal(t, false, m["saved"])
	assert.Equal(t, "", m["markdown"])
}

func TestSaveResume(t *testing.T) {
	app := newApp(&stubRenderer{})
	user := uuid.NewString()

	code, body, _ := do(t, app, "PUT", "/api/resume", `{"markdown":"## Skills\n\nGo"}`, user)
	require.Equal(t, 200, code)
	assert.Equal(t, "## Skills\n\nGo", decodeMap(t, body)["content"])

	code, _, _ = do(t, app, "PUT", "/api/resume",
		`{"resume":{"contactInfo":{"email":"nope"},"summary":"","skills":""}}`, user)
	assert.Equal(t, 422, code)

	code, _, _ = do(t, app, "PUT", "/api/resume", `{}`, user)
	assert.Equal(t, 400, code)
}

func TestGeneratePDF(t *testing.T) {
	r := &stubRenderer{}
	app := newApp(r)

	code, body, hdr := do(t, app, "POST", "/api/generate-pdf",
		`{"htmlContent":"<p>Dear team</p>","type":"cover-letter","filename":"acme"}`, "")
	require.Equal(t, 200, code)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
	assert.Equal(t, "application/pdf", hdr["Content-Type"][0])
	assert.Equal(t, `attachment; filename="acme.pdf"`, hdr["Content-Disposition"][0])
	assert.Contains(t, r.html, "Times New Roman")
}

func TestGeneratePDF_FromMarkdown(t *testing.T) {
	r := &stubRenderer{}
	code, _, hdr := do(t, newApp(r), "POST", "/api/generate-pdf", `{"markdown":"## Skills\n\nGo"}`, "")
	require.Equal(t, 200, code)
	assert.Equal(t, `attachment; filename="resume.pdf"`, hdr["Content-Disposition"][0])
	assert.Contains(t, r.html, "<h2>Skills</h2>")
}

func TestGeneratePDF_UnsafeFilename(t *testing.T) {
	code, _, hdr := do(t, newApp(&stubRenderer{}), "POST", "/api/generate-pdf",
		`{"htmlContent":"<p>x</p>","filename":"ac\"me\r\nX-Evil: 1"}`, "")
	require.Equal(t, 200, code)
	assert.Equal(t, "application/pdf", hdr["Content-Type"][0])
	cd := hdr["Content-Disposition"][0]
	assert.True(t, strings.HasPrefix(cd, `attachment; filename="acmeX-Evil`), cd)
	assert.Equal(t, 2, strings.Count(cd, `"`), cd)
	assert.Empty(t, hdr["X-Evil"])
}

func TestGeneratePDF_NoContent(t *testing.T) {
	code, body, _ := do(t, newApp(&stubRenderer{}), "POST", "/api/generate-pdf", `{"type":"resume"}`, "")
	assert.Equal(t, 400, code)
	assert.Equal(t, "No content provided", decodeMap(t, body)["error"])
}

func TestGeneratePDF_RendererFails(t *testing.T) {
	code, body, _ := do(t, newApp(&stubRenderer{err: errors.New("chrome gone")}), "POST", "/api/generate-pdf", `{"htmlContent":"<p>x</p>"}`, "")
	assert.Equal(t, 500, code)
	assert.Equal(t, "Failed to generate PDF", decodeMap(t, body)["error"])
}

func TestCoverLetters(t *testing.T) {
	app := newApp(&stubRenderer{})
	user := uuid.NewString()

	code, _, _ := do(t, app, "POST", "/api/cover-letters", `{"title":"Acme","content":"  "}`, user)
	assert.Equal(t, 400, code)

	code, body, _ := do(t, app, "POST", "/api/cover-letters", `{"title":"Acme","content":"Dear team"}`, user)
	require.Equal(t, 201, code)
	id := decodeMap(t, body)["id"].(string)

	code, body, _ = do(t, app, "GET", "/api/cover-letters/"+id, "", user)
	require.Equal(t, 200, code)
	assert.Equal(t, "Dear team", decodeMap(t, body)["content"])

	code, _, _ = do(t, app, "GET", "/api/cover-letters/"+id, "", uuid.NewString())
	assert.Equal(t, 404, code)

	code, _, _ = do(t, app, "GET", "/api/cover-letters/not-an-id", "", user)
	assert.Equal(t, 400, code)

	code, body, _ = do(t, app, "PUT", "/api/cover-letters/"+id, `{"content":"Dear hiring team"}`, user)
	require.Equal(t, 200, code)
	assert.Equal(t, "Dear hiring team", decodeMap(t, body)["content"])

	code, body, _ = do(t, app, "GET", "/api/cover-letters", "", user)
	require.Equal(t, 200, code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)
}

func TestCheckUserData(t *testing.T) {
	app := newApp(&stubRenderer{})

	code, body, _ := do(t, app, "GET", "/api/check-user-data", "", "")
	require.Equal(t, 200, code)
	assert.Equal(t, false, decodeMap(t, body)["hasData"])

	code, body, _ = do(t, app, "GET", "/api/check-user-data", "", uuid.NewString())
	require.Equal(t, 200, code)
	assert.Equal(t, false, decodeMap(t, body)["hasData"])
}

func TestClearData(t *testing.T) {
	app := newApp(&stubRenderer{})

	code, _, _ := do(t, app, "DELETE", "/api/clear-data", "", "")
	assert.Equal(t, 401, code)

	code, body, _ := do(t, app, "DELETE", "/api/clear-data", "", uuid.NewString())
	require.Equal(t, 200, code)
	assert.Equal(t, "All data cleared successfully", decodeMap(t, body)["message"])
}

func TestProfile(t *testing.T) {
	app := newApp(&stubRenderer{})
	user := uuid.NewString()

	code, _, _ := do(t, app, "GET", "/api/profile", "", "")
	assert.Equal(t, 401, code)

	code, body, _ := do(t, app, "GET", "/api/profile", "", user)
	require.Equal(t, 200, code)
	m := decodeMap(t, body)
	assert.Equal(t, "", m["industry"])
	assert.Equal(t, []interface{}{}, m["skills"])

	code, body, _ = do(t, app, "PUT", "/api/profile",
		`{"industry":"tech","subIndustry":"Software Development","bio":"Hi","experience":"4","skills":"Go, SQL"}`, user)
	require.Equal(t, 200, code)
	m = decodeMap(t, body)
	assert.Equal(t, 4.0, m["experience"])
	assert.Equal(t, []interface{}{"Go", "SQL"}, m["skills"])

	code, body, _ = do(t, app, "PUT", "/api/profile",
		`{"industry":"tech","subIndustry":"Software Development","experience":"99","skills":""}`, user)
	assert.Equal(t, 422, code)
	assert.Contains(t, decodeMap(t, body)["error"], "experience")
}

func TestAssessments(t *testing.T) {
	app := newApp(&stubRenderer{})
	user := uuid.NewString()

	code, _, _ := do(t, app, "POST", "/api/assessments", `{"category":"Technical","questions":[]}`, user)
	assert.Equal(t, 400, code)

	code, body, _ := do(t, app, "POST", "/api/assessments", `{"category":"Technical","questions":[
		{"question":"q1","answer":"A","userAnswer":"A"},
		{"question":"q2","answer":"B","userAnswer":"C"}]}`, user)
	require.Equal(t, 201, code)
	m := decodeMap(t, body)
	assert.Equal(t, 50.0, m["quiz_score"])
	assert.Len(t, m["questions"], 2)

	code, body, _ = do(t, app, "GET", "/api/assessments/stats", "", user)
	require.Equal(t, 200, code)
	m = decodeMap(t, body)
	assert.Equal(t, 0.0, m["average_score"])
	assert.Nil(t, m["latest"])
	assert.Equal(t, []interface{}{}, m["trend"])

	code, body, _ = do(t, app, "GET", "/api/assessments", "", user)
	require.Equal(t, 200, code)
	assert.JSONEq(t, `[]`, string(body))

	code, _, _ = do(t, app, "GET", "/api/assessments/stats", "", "")
	assert.Equal(t, 401, code)
}
