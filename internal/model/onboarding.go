package model

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Onboarding is the profile form as the client submits it: experience and
// skills arrive as free text.
type Onboarding struct {
	Industry    string `json:"industry"`
	SubIndustry string `json:"subIndustry"`
	Bio         string `json:"bio"`
	Experience  string `json:"experience"`
	Skills      string `json:"skills"`
}

// ProfileValues is a validated Onboarding.
type ProfileValues struct {
	Industry    string
	SubIndustry string
	Bio         string
	Experience  int
	Skills      []string
}

const profileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["industry", "subIndustry", "experience", "skills"],
  "properties": {
    "industry": {"type": "string", "minLength": 1},
    "subIndustry": {"type": "string", "minLength": 1},
    "bio": {"type": "string", "maxLength": 500},
    "experience": {"type": "integer", "minimum": 0, "maximum": 50},
    "skills": {"type": "array", "items": {"type": "string", "minLength": 1}}
  }
}`

var profileLoader = gojsonschema.NewStringLoader(profileSchema)

// ParseProfile converts and validates an onboarding form. An experience
// value without leading digits is reported as a type error.
func ParseProfile(o Onboarding) (ProfileValues, error) {
	v := ProfileValues{
		Industry:    strings.TrimSpace(o.Industry),
		SubIndustry: strings.TrimSpace(o.SubIndustry),
		Bio:         strings.TrimSpace(o.Bio),
		Skills:      ParseSkills(o.Skills),
	}
	doc := map[string]interface{}{
		"industry":    v.Industry,
		"subIndustry": v.SubIndustry,
		"bio":         v.Bio,
		"skills":      v.Skills,
	}
	if n, ok := ParseExperience(o.Experience); ok {
		v.Experience = n
		doc["experience"] = n
	} else {
		doc["experience"] = o.Experience
	}
	if err := validate(profileLoader, gojsonschema.NewGoLoader(doc)); err != nil {
		return ProfileValues{}, err
	}
	return v, nil
}

// ParseExperience reads the leading base-10 integer of s, ignoring
// surrounding whitespace and anything after the digits, so "5 years" is 5.
func ParseExperience(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		if n > 1<<20 {
			continue
		}
		n = n*10 + int(s[digits]-'0')
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// ParseSkills splits a comma separated list, dropping blank items.
func ParseSkills(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
