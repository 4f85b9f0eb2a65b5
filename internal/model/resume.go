package model

// Go models for the résumé builder form. The Markdown projection of Resume
// is the only form that is persisted.

type ContactInfo struct {
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
}

// IsEmpty reports whether no contact field is set.
func (c ContactInfo) IsEmpty() bool {
	return c.Email == "" && c.Mobile == "" && c.LinkedIn == "" && c.Twitter == ""
}

// Entry is one job, degree or project. EndDate is empty when Current is set.
type Entry struct {
	Title        string `json:"title" yaml:"title"`
	Organization string `json:"organization" yaml:"organization"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	EndDate      string `json:"endDate" yaml:"endDate"`
	Description  string `json:"description" yaml:"description"`
	Current      bool   `json:"current" yaml:"current"`
}

type Resume struct {
	ContactInfo ContactInfo `json:"contactInfo" yaml:"contactInfo"`
	Summary     string      `json:"summary" yaml:"summary"`
	Skills      string      `json:"skills" yaml:"skills"`
	Experience  []Entry     `json:"experience" yaml:"experience"`
	Education   []Entry     `json:"education" yaml:"education"`
	Projects    []Entry     `json:"projects" yaml:"projects"`
}

// Empty returns a structurally complete résumé with no content. Slices are
// non-nil so JSON clients always receive arrays.
func Empty() Resume {
	return Resume{
		Experience: []Entry{},
		Education:  []Entry{},
		Projects:   []Entry{},
	}
}

// Normalize replaces nil entry slices with empty ones.
func (r *Resume) Normalize() {
	if r.Experience == nil {
		r.Experience = []Entry{}
	}
	if r.Education == nil {
		r.Education = []Entry{}
	}
	if r.Projects == nil {
		r.Projects = []Entry{}
	}
}
