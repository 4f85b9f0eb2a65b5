package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"careercortex/internal/domain"
	infra "careercortex/pkg/infrastructure"

	"github.com/google/uuid"
)

// fakeRenderer returns outputs in order; the last one repeats.
type fakeRenderer struct {
	mu      sync.Mutex
	outputs [][]byte
	errs    []error
	calls   int
	html    string
	opts    infra.PDFOptions
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string, opts infra.PDFOptions) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	f.html = html
	f.opts = opts
	var err error
	if len(f.errs) > 0 {
		err = f.errs[min(i, len(f.errs)-1)]
	}
	if err != nil {
		return nil, err
	}
	if len(f.outputs) == 0 {
		return []byte("%PDF-1.7 fake"), nil
	}
	return f.outputs[min(i, len(f.outputs)-1)], nil
}

type fakeCache struct {
	store map[string][]byte
	puts  int
}

func newFakeCache() *fakeCache { return &fakeCache{store: map[string][]byte{}} }

func (c *fakeCache) Get(ctx context.Context, kind, html string) ([]byte, bool) {
	b, ok := c.store[infra.CacheKey(kind, html)]
	return b, ok
}

func (c *fakeCache) Put(ctx context.Context, kind, html string, pdf []byte) {
	c.puts++
	c.store[infra.CacheKey(kind, html)] = pdf
}

type memResumes struct {
	docs map[uuid.UUID]*domain.Document
	err  error
}

func newMemResumes() *memResumes { return &memResumes{docs: map[uuid.UUID]*domain.Document{}} }

func (m *memResumes) Upsert(ctx context.Context, userID uuid.UUID, content string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now()
	d, ok := m.docs[userID]
	if !ok {
		d = &domain.Document{ID: uuid.New(), UserID: userID, Kind: domain.KindResume, CreatedAt: now}
		m.docs[userID] = d
	}
	d.Content = content
	d.UpdatedAt = now
	cp := *d
	return &cp, nil
}

func (m *memResumes) Get(ctx context.Context, userID uuid.UUID) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.docs[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

type memLetters struct {
	docs map[uuid.UUID]*domain.Document
}

func newMemLetters() *memLetters { return &memLetters{docs: map[uuid.UUID]*domain.Document{}} }

func (m *memLetters) Save(ctx context.Context, d *domain.Document) error {
	cp := *d
	m.docs[d.ID] = &cp
	return nil
}

func (m *memLetters) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Document, error) {
	d, ok := m.docs[id]
	if !ok || d.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memLetters) UpdateContent(ctx context.Context, userID, id uuid.UUID, content string) (*domain.Document, error) {
	d, ok := m.docs[id]
	if !ok || d.UserID != userID {
		return nil, domain.ErrNotFound
	}
	d.Content = content
	d.UpdatedAt = time.Now()
	cp := *d
	return &cp, nil
}

func (m *memLetters) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	out := []domain.Document{}
	for _, d := range m.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

type memProfiles struct {
	byUser map[uuid.UUID]domain.Profile
	err    error
}

func newMemProfiles() *memProfiles { return &memProfiles{byUser: map[uuid.UUID]domain.Profile{}} }

func (m *memProfiles) Upsert(ctx context.Context, p *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.byUser[p.UserID] = *p
	return nil
}

func (m *memProfiles) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.byUser[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

type memAssessments struct {
	list []domain.Assessment
	err  error
}

func (m *memAssessments) Save(ctx context.Context, a *domain.Assessment) error {
	if m.err != nil {
		return m.err
	}
	m.list = append(m.list, *a)
	return nil
}

func (m *memAssessments) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.Assessment{}
	for _, a := range m.list {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// memUserData reports and clears across the in-memory stores.
type memUserData struct {
	resumes     *memResumes
	letters     *memLetters
	profiles    *memProfiles
	assessments *memAssessments
	failErr     error
}

func (m *memUserData) HasData(ctx context.Context, userID uuid.UUID) (bool, error) {
	if m.failErr != nil {
		return false, m.failErr
	}
	if _, ok := m.resumes.docs[userID]; ok {
		return true, nil
	}
	for _, d := range m.letters.docs {
		if d.UserID == userID {
			return true, nil
		}
	}
	for _, a := range m.assessments.list {
		if a.UserID == userID {
			return true, nil
		}
	}
	if p, ok := m.profiles.byUser[userID]; ok && !p.IsEmpty() {
		return true, nil
	}
	return false, nil
}

func (m *memUserData) Clear(ctx context.Context, userID uuid.UUID) error {
	if m.failErr != nil {
		return m.failErr
	}
	delete(m.resumes.docs, userID)
	for id, d := range m.letters.docs {
		if d.UserID == userID {
			delete(m.letters.docs, id)
		}
	}
	kept := m.assessments.list[:0]
	for _, a := range m.assessments.list {
		if a.UserID != userID {
			kept = append(kept, a)
		}
	}
	m.assessments.list = kept
	if _, ok := m.profiles.byUser[userID]; ok {
		m.profiles.byUser[userID] = domain.Profile{UserID: userID, Skills: []string{}}
	}
	return nil
}

var errBoom = errors.New("boom")
