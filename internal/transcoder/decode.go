package transcoder

import (
	"regexp"
	"strings"

	"careercortex/internal/model"
)

// Accepted document grammar:
//
//	document := preamble? section*
//	section  := "## " title NL body
//	contact  := "## " centerDiv(name) ... centerDiv(part ("|" part)*)
//	body     := text | entry*
//	entry    := "### " title (" @ " organization)? NL dateLine? bullet*
//	dateLine := rightDiv ... "<em>" range "</em>"
//	bullet   := ("*" | "•" | "-") WS text
//
// Lines that fit none of these shapes are tolerated and ignored.
var (
	sectionRe = regexp.MustCompile(`(?m)^##\s+`)
	entryRe   = regexp.MustCompile(`(?m)^###\s+`)

	centerNameRe  = regexp.MustCompile(`<div[^>]*align[^>]*center[^>]*>([^<]+)</div>`)
	centerBlockRe = regexp.MustCompile(`<div[^>]*align[^>]*center[^>]*>\s*([^<]*)</div>`)

	// tried in order; the first match wins
	dateLineRes = []*regexp.Regexp{
		regexp.MustCompile(`<div[^>]*align[^>]*right[^>]*>[\s\S]*?<em>([^<]+)</em>`),
		regexp.MustCompile(`<div[^>]*style[^>]*text-align[^>]*right[^>]*>[\s\S]*?<em>([^<]+)</em>`),
	}
	emRe        = regexp.MustCompile(`<em>([^<]+)</em>`)
	monthYearRe = regexp.MustCompile(`(?i)^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{4}`)

	titleSepRe    = regexp.MustCompile(`\s+@\s+`)
	bulletRe      = regexp.MustCompile(`^(?:\*|•|-)\s+(.+)$`)
	bulletMarkRe  = regexp.MustCompile(`^[*•-]\s+`)
	leadingMarkRe = regexp.MustCompile(`(?m)^[*•-]\s+`)
)

const closeDiv = "</div>"

// section is one "## " block: its heading line and the trimmed remainder.
type section struct {
	title string
	body  string
}

// Decode parses Markdown produced by Encode, or a hand edit of it, back into
// the structured form. It never fails: anything it cannot recognise is left
// at its zero value.
func Decode(markdown string) model.Resume {
	r := model.Empty()
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	if strings.TrimSpace(markdown) == "" {
		return r
	}

	secs := splitSections(markdown)
	for _, s := range secs {
		if centerNameRe.MatchString(s.title) {
			r.ContactInfo = parseContact(s.body)
			break
		}
	}

	for _, s := range secs {
		if strings.Contains(s.title, "<div") {
			continue
		}
		switch s.title {
		case TitleSummary:
			r.Summary = s.body
		case TitleSkills:
			r.Skills = s.body
		case TitleExperience:
			r.Experience = parseEntries(s.body)
		case TitleEducation:
			r.Education = parseEntries(s.body)
		case TitleProjects:
			r.Projects = parseEntries(s.body)
		}
	}
	return r
}

func splitSections(markdown string) []section {
	var out []section
	for _, chunk := range sectionRe.Split(markdown, -1) {
		if chunk == "" {
			continue
		}
		title, body, _ := strings.Cut(chunk, "\n")
		out = append(out, section{
			title: strings.TrimSpace(title),
			body:  strings.TrimSpace(body),
		})
	}
	return out
}

func parseContact(body string) model.ContactInfo {
	var ci model.ContactInfo
	m := centerBlockRe.FindStringSubmatch(body)
	if m == nil {
		return ci
	}
	for _, part := range strings.Split(m[1], "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, ic := range Icons {
			v, ok := ic.match(part)
			if !ok {
				continue
			}
			if v != "" {
				setContact(&ci, ic.Field, v)
			}
			break
		}
	}
	return ci
}

func setContact(ci *model.ContactInfo, f Field, v string) {
	switch f {
	case FieldEmail:
		ci.Email = v
	case FieldMobile:
		ci.Mobile = v
	case FieldLinkedIn:
		ci.LinkedIn = v
	case FieldTwitter:
		ci.Twitter = v
	}
}

func parseEntries(body string) []model.Entry {
	entries := []model.Entry{}
	for _, block := range entryRe.Split(body, -1) {
		if block == "" {
			continue
		}
		if e, ok := parseEntry(block); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func parseEntry(block string) (model.Entry, bool) {
	var e model.Entry
	heading := ""
	for _, line := range strings.Split(block, "\n") {
		if line != "" {
			heading = strings.TrimSpace(line)
			break
		}
	}
	if heading == "" {
		return e, false
	}

	e.Title = heading
	if loc := titleSepRe.FindStringIndex(heading); loc != nil && loc[0] > 0 {
		e.Title = strings.TrimSpace(heading[:loc[0]])
		e.Organization = strings.TrimSpace(heading[loc[1]:])
	}

	if raw, ok := findDate(block); ok {
		applyDate(&e, raw)
	}
	e.Description = parseDescription(block)
	return e, true
}

func findDate(block string) (string, bool) {
	for _, re := range dateLineRes {
		if m := re.FindStringSubmatch(block); m != nil {
			return m[1], true
		}
	}
	for _, m := range emRe.FindAllStringSubmatch(block, -1) {
		text := strings.TrimSpace(m[1])
		if monthYearRe.MatchString(text) {
			return text, true
		}
	}
	return "", false
}

func applyDate(e *model.Entry, raw string) {
	if !strings.Contains(raw, " - ") {
		e.StartDate = strings.TrimSpace(raw)
		return
	}
	parts := strings.Split(raw, " - ")
	e.StartDate = strings.TrimSpace(parts[0])
	switch end := strings.TrimSpace(parts[1]); end {
	case present:
		e.Current = true
		e.EndDate = ""
	default:
		e.EndDate = end
	}
}

func parseDescription(block string) string {
	var bullets []string
	for _, line := range strings.Split(block, "\n") {
		if !bulletRe.MatchString(line) {
			continue
		}
		if text := strings.TrimSpace(bulletMarkRe.ReplaceAllString(line, "")); text != "" {
			bullets = append(bullets, text)
		}
	}
	if len(bullets) > 0 {
		return strings.Join(bullets, "\n")
	}

	i := strings.Index(block, closeDiv)
	if i < 0 {
		return ""
	}
	rest := strings.TrimSpace(block[i+len(closeDiv):])
	return strings.TrimSpace(leadingMarkRe.ReplaceAllString(rest, ""))
}
