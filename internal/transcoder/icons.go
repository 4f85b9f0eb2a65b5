package transcoder

import (
	"regexp"
	"strings"
)

// Field names a contact field carried in the centered contact line.
type Field int

const (
	FieldEmail Field = iota
	FieldMobile
	FieldLinkedIn
	FieldTwitter
)

// Icon describes how one contact field is tagged in the contact line.
type Icon struct {
	Field Field
	// Glyph is written by the encoder.
	Glyph string
	// Aliases are also accepted by the decoder. Documents saved by older
	// builds carry the glyphs as UTF-8 bytes mis-decoded as Windows-1252.
	Aliases []string
	// Label, when set, makes the field a link: "[Label](value)".
	Label string
	// Keywords must appear next to the glyph for a link field to match.
	Keywords []string

	link *regexp.Regexp
}

// Icons is the fixed classification table for contact parts, in the order
// the encoder writes them and the decoder tries them.
var Icons = []Icon{
	{
		Field:   FieldEmail,
		Glyph:   "\U0001F4E7",
		Aliases: []string{"ðŸ“§"},
	},
	{
		Field:   FieldMobile,
		Glyph:   "\U0001F4F1",
		Aliases: []string{"ðŸ“±"},
	},
	{
		Field:    FieldLinkedIn,
		Glyph:    "\U0001F4BC",
		Aliases:  []string{"ðŸ’¼"},
		Label:    "LinkedIn",
		Keywords: []string{"LinkedIn"},
	},
	{
		Field:    FieldTwitter,
		Glyph:    "\U0001F426",
		Aliases:  []string{"ðŸ\u0090¦", "ðŸ¦"},
		Label:    "Twitter",
		Keywords: []string{"Twitter", "X"},
	},
}

func init() {
	for i := range Icons {
		ic := &Icons[i]
		if ic.Label == "" {
			continue
		}
		quoted := make([]string, len(ic.Keywords))
		for j, k := range ic.Keywords {
			quoted[j] = regexp.QuoteMeta(k)
		}
		// one level of balanced parentheses is allowed inside the URL
		ic.link = regexp.MustCompile(`\[(?:` + strings.Join(quoted, "|") + `)[^\]]*\]\(((?:[^()\s]|\([^()\s]*\))+)\)`)
	}
}

// IconFor returns the table entry for f.
func IconFor(f Field) Icon {
	for _, ic := range Icons {
		if ic.Field == f {
			return ic
		}
	}
	return Icon{Field: f}
}

// render tags value with the icon's glyph.
func (ic Icon) render(value string) string {
	if ic.Label != "" {
		return ic.Glyph + " [" + ic.Label + "](" + value + ")"
	}
	return ic.Glyph + " " + value
}

// glyphIn returns the first glyph or alias of ic found in part.
func (ic Icon) glyphIn(part string) (string, bool) {
	if strings.Contains(part, ic.Glyph) {
		return ic.Glyph, true
	}
	for _, a := range ic.Aliases {
		if strings.Contains(part, a) {
			return a, true
		}
	}
	return "", false
}

// match classifies part. ok is true when part belongs to this field, even
// if no value could be extracted from it.
func (ic Icon) match(part string) (value string, ok bool) {
	glyph, found := ic.glyphIn(part)
	if !found {
		return "", false
	}
	if ic.Label == "" {
		i := strings.Index(part, glyph)
		rest := strings.TrimLeft(part[i+len(glyph):], " \t\r\n")
		return strings.TrimSpace(part[:i] + rest), true
	}
	hasKeyword := false
	for _, k := range ic.Keywords {
		if strings.Contains(part, k) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return "", false
	}
	if m := ic.link.FindStringSubmatch(part); m != nil {
		return m[1], true
	}
	return "", true
}
