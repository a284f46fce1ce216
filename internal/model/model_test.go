package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTechnologies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "React, Node.js, AWS", []string{"React", "Node.js", "AWS"}},
		{"trailing comma", "React,", []string{"React"}},
		{"empty entries dropped", "a,, ,b", []string{"a", "b"}},
		{"whitespace trimmed", "  Go  ,  Postgres ", []string{"Go", "Postgres"}},
		{"empty input", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTechnologies(tt.input))
		})
	}
}

func TestDefaultSections(t *testing.T) {
	sections := DefaultSections()
	require.Len(t, sections, 7)

	for i, s := range sections {
		assert.Equal(t, i, s.Order)
	}

	byID := map[string]Section{}
	for _, s := range sections {
		byID[s.ID] = s
	}
	assert.True(t, byID["experience"].Visible)
	assert.False(t, byID["achievements"].Visible, "achievements start hidden")
}

func TestCatalogs(t *testing.T) {
	themes := Themes()
	require.NotEmpty(t, themes)
	templates := Templates()
	require.Len(t, templates, 4)

	ids := make([]string, 0, len(templates))
	for _, tpl := range templates {
		ids = append(ids, tpl.ID)
	}
	assert.Equal(t, []string{"professional", "modern", "creative", "minimal"}, ids)

	assert.Equal(t, "professional", DefaultTemplate().ID)

	th, ok := ThemeByID("professional")
	require.True(t, ok)
	assert.NotEmpty(t, th.Colors.Primary)

	_, ok = ThemeByID("no-such-theme")
	assert.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	orig := DefaultResume()
	cp := orig.Clone()

	cp.Experience[0].Company = "Changed Inc"
	cp.Projects[0].Technologies[0] = "changed"
	cp.Sections[0].Visible = false

	assert.Equal(t, "Tech Corp", orig.Experience[0].Company)
	assert.Equal(t, "React", orig.Projects[0].Technologies[0])
	assert.True(t, orig.Sections[0].Visible)
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{
		"version": 1,
		"resumeData": {
			"personalInfo": {"fullName": "A", "email": "a@b.c", "phone": "", "location": ""},
			"summary": "s",
			"experience": [],
			"education": [],
			"skills": [],
			"projects": [{"id": "1", "name": "p", "description": "", "startDate": ""}]
		},
		"settings": {}
	}`), &snap))

	snap.Normalize()

	assert.NotNil(t, snap.ResumeData.Achievements)
	assert.Len(t, snap.ResumeData.Sections, 7, "missing sections take defaults")
	assert.NotNil(t, snap.ResumeData.Projects[0].Technologies)
	assert.Equal(t, "professional", snap.Settings.CurrentTemplate)
	assert.Equal(t, "pdf", snap.Settings.ExportFormat)
}

func TestValidateSnapshotBytes(t *testing.T) {
	good, err := json.Marshal(Snapshot{
		Version:    SnapshotVersion,
		ResumeData: DefaultResume(),
		Settings:   DefaultSettings(),
	})
	require.NoError(t, err)
	assert.NoError(t, ValidateSnapshotBytes(good))

	assert.Error(t, ValidateSnapshotBytes([]byte(`{"version": "one"}`)))
}
