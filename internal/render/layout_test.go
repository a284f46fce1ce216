package render

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specByID(t *testing.T, id string) templateSpec {
	t.Helper()
	for _, sp := range templateSpecs {
		if sp.id == id {
			return sp
		}
	}
	t.Fatalf("no template spec %q", id)
	return templateSpec{}
}

func TestVisibleSectionsSortsByOrder(t *testing.T) {
	got := VisibleSections([]model.Section{
		{ID: "skills", Type: model.SectionSkills, Order: 3, Visible: true},
		{ID: "summary", Type: model.SectionSummary, Order: 1, Visible: true},
		{ID: "experience", Type: model.SectionExperience, Order: 2, Visible: true},
		{ID: "projects", Type: model.SectionProjects, Order: 0, Visible: false},
	})
	require.Len(t, got, 3)
	assert.Equal(t, "summary", got[0].ID)
	assert.Equal(t, "experience", got[1].ID)
	assert.Equal(t, "skills", got[2].ID)
}

func TestVisibleSectionsStableOnTies(t *testing.T) {
	got := VisibleSections([]model.Section{
		{ID: "a", Order: 1, Visible: true},
		{ID: "b", Order: 1, Visible: true},
		{ID: "c", Order: 0, Visible: true},
	})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestVisibleSectionsDoesNotMutateInput(t *testing.T) {
	in := []model.Section{
		{ID: "b", Order: 2, Visible: true},
		{ID: "a", Order: 1, Visible: true},
	}
	VisibleSections(in)
	assert.Equal(t, "b", in[0].ID)
}

func TestResolveStyleFallback(t *testing.T) {
	sp := specByID(t, "creative")
	style := resolveStyle(nil, sp)
	assert.Equal(t, "#7c3aed", style.Primary)
	assert.Equal(t, "Poppins", style.HeadingFont)
}

func TestResolveStyleThemeOverridesPerField(t *testing.T) {
	sp := specByID(t, "professional")
	theme := &model.Theme{
		Colors: model.ThemeColors{Primary: "#000000"},
		Fonts:  model.ThemeFonts{Heading: "Georgia"},
	}
	style := resolveStyle(theme, sp)
	assert.Equal(t, "#000000", style.Primary)
	assert.Equal(t, "Georgia", style.HeadingFont)
	assert.Equal(t, "#64748b", style.Secondary, "empty theme field falls back")
	assert.Equal(t, "Inter", style.BodyFont)
}

func TestBuildPageSkipsPersonalInfoSection(t *testing.T) {
	resume := model.DefaultResume()
	page := buildPage(resume, nil, specByID(t, "professional"))

	assert.Equal(t, resume.PersonalInfo, page.Header)
	for _, sec := range page.Main {
		assert.NotEqual(t, string(model.SectionPersonalInfo), sec.Type)
	}
}

func TestBuildPageHiddenSectionOmitted(t *testing.T) {
	resume := model.DefaultResume()
	page := buildPage(resume, nil, specByID(t, "professional"))

	for _, sec := range append(page.Sidebar, page.Main...) {
		assert.NotEqual(t, string(model.SectionAchievements), sec.Type,
			"achievements is hidden by default")
	}
}

func TestBuildPageModernSidebarPartition(t *testing.T) {
	resume := model.DefaultResume()
	for i := range resume.Sections {
		resume.Sections[i].Visible = true
	}
	page := buildPage(resume, nil, specByID(t, "modern"))

	sidebarTypes := map[string]bool{}
	for _, sec := range page.Sidebar {
		sidebarTypes[sec.Type] = true
	}
	assert.True(t, sidebarTypes[string(model.SectionSkills)])
	assert.True(t, sidebarTypes[string(model.SectionAchievements)])

	for _, sec := range page.Main {
		assert.NotContains(t, []string{string(model.SectionSkills), string(model.SectionAchievements)}, sec.Type)
	}
}

func TestBuildPageModernDropsEmptyAchievements(t *testing.T) {
	resume := model.DefaultResume()
	resume.Achievements = nil
	for i := range resume.Sections {
		resume.Sections[i].Visible = true
	}
	page := buildPage(resume, nil, specByID(t, "modern"))

	for _, sec := range append(page.Sidebar, page.Main...) {
		assert.NotEqual(t, string(model.SectionAchievements), sec.Type)
	}
}

func TestBuildPageCreativeWhitelist(t *testing.T) {
	resume := model.DefaultResume()
	for i := range resume.Sections {
		resume.Sections[i].Visible = true
	}
	page := buildPage(resume, nil, specByID(t, "creative"))

	assert.Empty(t, page.Sidebar)
	var types []string
	for _, sec := range page.Main {
		types = append(types, sec.Type)
	}
	assert.Equal(t, []string{
		string(model.SectionSummary),
		string(model.SectionExperience),
		string(model.SectionSkills),
	}, types)
}

func TestBuildPageCurrentRoleReadsPresent(t *testing.T) {
	resume := model.DefaultResume()
	page := buildPage(resume, nil, specByID(t, "professional"))

	var exp *Section
	for i := range page.Main {
		if page.Main[i].Type == string(model.SectionExperience) {
			exp = &page.Main[i]
		}
	}
	require.NotNil(t, exp)
	require.NotEmpty(t, exp.Experience)
	assert.Equal(t, "Jan 2022 - Present", exp.Experience[0].DateRange)
	assert.Equal(t, "Mar 2020 - Dec 2021", exp.Experience[1].DateRange)
}

func TestBuildPageEmptySectionStillRenders(t *testing.T) {
	resume := model.DefaultResume()
	resume.Projects = nil
	page := buildPage(resume, nil, specByID(t, "professional"))

	var found bool
	for _, sec := range page.Main {
		if sec.Type == string(model.SectionProjects) {
			found = true
			assert.Empty(t, sec.Projects)
		}
	}
	assert.True(t, found, "empty collections render a section with zero items")
}

func TestBuildPageDoesNotMutateResume(t *testing.T) {
	resume := model.DefaultResume()
	before := resume.Clone()
	buildPage(resume, nil, specByID(t, "modern"))
	if diff := cmp.Diff(before, resume); diff != "" {
		t.Errorf("resume mutated by buildPage (-before +after):\n%s", diff)
	}
}
