package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOnboarding() Onboarding {
	return Onboarding{
		Industry:    "tech",
		SubIndustry: "Software Development",
		Bio:         "Backend engineer.",
		Experience:  "7",
		Skills:      "Go, Postgres,, ",
	}
}

func TestParseProfile(t *testing.T) {
	v, err := ParseProfile(validOnboarding())
	require.NoError(t, err)
	assert.Equal(t, 7, v.Experience)
	assert.Equal(t, []string{"Go", "Postgres"}, v.Skills)
	assert.Equal(t, "Software Development", v.SubIndustry)
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Onboarding)
		wantErr string
	}{
		{name: "missing industry", mutate: func(o *Onboarding) { o.Industry = " " }, wantErr: "industry"},
		{name: "missing sub industry", mutate: func(o *Onboarding) { o.SubIndustry = "" }, wantErr: "subIndustry"},
		{name: "bio too long", mutate: func(o *Onboarding) { o.Bio = strings.Repeat("a", 501) }, wantErr: "bio"},
		{name: "experience not a number", mutate: func(o *Onboarding) { o.Experience = "lots" }, wantErr: "experience"},
		{name: "experience empty", mutate: func(o *Onboarding) { o.Experience = "" }, wantErr: "experience"},
		{name: "experience negative", mutate: func(o *Onboarding) { o.Experience = "-1" }, wantErr: "experience"},
		{name: "experience above 50", mutate: func(o *Onboarding) { o.Experience = "51" }, wantErr: "experience"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOnboarding()
			tt.mutate(&o)

			_, err := ParseProfile(o)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseProfile_Bounds(t *testing.T) {
	o := validOnboarding()
	o.Bio = strings.Repeat("é", 500)
	o.Experience = "50"
	o.Skills = ""
	v, err := ParseProfile(o)
	require.NoError(t, err)
	assert.Equal(t, 50, v.Experience)
	assert.Empty(t, v.Skills)

	o.Experience = "0"
	v, err = ParseProfile(o)
	require.NoError(t, err)
	assert.Zero(t, v.Experience)
}

func TestParseExperience(t *testing.T) {
	tests := map[string]struct {
		n  int
		ok bool
	}{
		"12":        {12, true},
		"  3 years": {3, true},
		"+4":        {4, true},
		"-2":        {-2, true},
		"4.5":       {4, true},
		"":          {0, false},
		"abc":       {0, false},
		"-":         {0, false},
	}
	for in, want := range tests {
		n, ok := ParseExperience(in)
		assert.Equal(t, want.ok, ok, in)
		assert.Equal(t, want.n, n, in)
	}
}

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "gRPC"}, ParseSkills(" Go ,SQL,, gRPC,"))
	assert.Equal(t, []string{}, ParseSkills("  "))
}
