// Package transcoder converts between the structured résumé form and its
// Markdown projection.
//
// Encode and Decode are pure and safe for concurrent use. Decode is total:
// any input, including the empty string, yields a fully shaped Resume.
package transcoder

import (
	"strings"

	"careercortex/internal/model"
)

// Section titles, in document order.
const (
	TitleSummary    = "Professional Summary"
	TitleSkills     = "Skills"
	TitleExperience = "Work Experience"
	TitleEducation  = "Education"
	TitleProjects   = "Projects"
)

// DefaultDisplayName is used in the contact header when no name is known.
const DefaultDisplayName = "Your Name"

const present = "Present"

// EncodeOptions carries the data the form does not hold itself.
type EncodeOptions struct {
	// DisplayName is the heading of the contact header.
	DisplayName string
}

func (o EncodeOptions) name() string {
	return displayName(o.DisplayName)
}

// displayName flattens name onto one line without markup so the contact
// heading stays recognisable to Decode.
func displayName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, name)
	if n := strings.Join(strings.Fields(name), " "); n != "" {
		return n
	}
	return DefaultDisplayName
}

// Encode renders r as Markdown. Empty sections are omitted.
func Encode(r model.Resume, opts EncodeOptions) string {
	parts := []string{
		ContactHeader(r.ContactInfo, opts.name()),
		scalarSection(TitleSummary, r.Summary),
		scalarSection(TitleSkills, r.Skills),
		EncodeSection(TitleExperience, r.Experience),
		EncodeSection(TitleEducation, r.Education),
		EncodeSection(TitleProjects, r.Projects),
	}
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

// ContactHeader renders the centered name and contact line. It returns ""
// when no contact field is set.
func ContactHeader(ci model.ContactInfo, name string) string {
	values := map[Field]string{
		FieldEmail:    ci.Email,
		FieldMobile:   ci.Mobile,
		FieldLinkedIn: ci.LinkedIn,
		FieldTwitter:  ci.Twitter,
	}
	var parts []string
	for _, ic := range Icons {
		if v := strings.TrimSpace(values[ic.Field]); v != "" {
			parts = append(parts, ic.render(v))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	name = displayName(name)
	var b strings.Builder
	b.WriteString(`## <div align="center">`)
	b.WriteString(name)
	b.WriteString("</div>\n\n")
	b.WriteString(`<div align="center">`)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(parts, " | "))
	b.WriteString("\n\n</div>")
	return b.String()
}

func scalarSection(title, content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return "## " + title + "\n\n" + content
}

// EncodeSection renders a titled list of entries, or "" when there are none.
func EncodeSection(title string, entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, encodeEntry(e))
	}
	return "## " + title + "\n\n" + strings.Join(blocks, "\n\n")
}

func encodeEntry(e model.Entry) string {
	var b strings.Builder
	b.WriteString("### ")
	b.WriteString(e.Title)
	if org := strings.TrimSpace(e.Organization); org != "" {
		b.WriteString(" @ ")
		b.WriteString(org)
	}
	if dr := DateRange(e); dr != "" {
		b.WriteString("\n")
		b.WriteString(`<div align="right" style="text-align: right;"><em>`)
		b.WriteString(dr)
		b.WriteString("</em></div>")
	}
	if bullets := Bullets(e.Description); len(bullets) > 0 {
		b.WriteString("\n\n")
		for i, line := range bullets {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("* ")
			b.WriteString(line)
		}
	}
	return b.String()
}

// DateRange formats the entry's dates as "start - end", "start - Present"
// or "start". It is empty when neither date is set.
func DateRange(e model.Entry) string {
	if e.StartDate == "" && e.EndDate == "" {
		return ""
	}
	switch {
	case e.Current:
		return e.StartDate + " - " + present
	case e.EndDate != "":
		return e.StartDate + " - " + e.EndDate
	default:
		return e.StartDate
	}
}

// Bullets splits a description into trimmed, non-empty lines.
func Bullets(description string) []string {
	var out []string
	for _, line := range strings.Split(description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
