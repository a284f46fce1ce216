package render

import (
	"sort"

	"resume-builder/internal/model"
)

// Style is the resolved color/font/spacing set a template renders with.
// Every field is theme-sourced when present, otherwise the per-template
// fallback constant.
type Style struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Background string

	HeadingFont string
	BodyFont    string

	SectionSpacing string
	ItemSpacing    string
}

type ExperienceItem struct {
	Position   string
	Company    string
	Location   string
	DateRange  string
	Paragraphs []string
}

type EducationItem struct {
	Degree      string
	Field       string
	Institution string
	GPA         string
	DateRange   string
}

type SkillItem struct {
	Name  string
	Level string
}

type SkillGroup struct {
	Category string
	Skills   []SkillItem
	Inline   string
}

type ProjectItem struct {
	Name         string
	Description  string
	DateRange    string
	Technologies []string
	URL          string
	URLLabel     string
	GitHub       string
	GitHubLabel  string
}

type AchievementItem struct {
	Title       string
	Issuer      string
	Description string
	Date        string
}

// Section is the rendered form of one visible content section. Type selects
// which of the item slices is populated.
type Section struct {
	Type  string
	Title string

	Summary      string
	Experience   []ExperienceItem
	Education    []EducationItem
	SkillGroups  []SkillGroup
	Projects     []ProjectItem
	Achievements []AchievementItem
}

// Page is the view model handed to a layout template. Header carries the
// personal info rendered in the fixed header/sidebar position; Sidebar is
// empty for single-flow layouts.
type Page struct {
	Title   string
	Style   Style
	Header  model.PersonalInfo
	Sidebar []Section
	Main    []Section
}

// templateSpec parameterizes the shared layout traversal per template:
// fallback styling, which section kinds the layout renders, which of those
// it partitions into a sidebar, and which require a non-empty collection.
type templateSpec struct {
	id       string
	file     string
	fallback model.Theme
	// kinds the section loop renders; anything else renders nothing
	supported map[model.SectionType]bool
	// kinds partitioned into the sidebar column
	sidebar map[model.SectionType]bool
	// kinds dropped when the underlying collection is empty
	requireItems map[model.SectionType]bool
	dateSep      string
}

var allSections = map[model.SectionType]bool{
	model.SectionSummary:      true,
	model.SectionExperience:   true,
	model.SectionEducation:    true,
	model.SectionSkills:       true,
	model.SectionProjects:     true,
	model.SectionAchievements: true,
}

var templateSpecs = []templateSpec{
	{
		id:   "professional",
		file: "professional.tmpl",
		fallback: model.Theme{
			Colors:  model.ThemeColors{Primary: "#2563eb", Secondary: "#64748b", Accent: "#0ea5e9", Text: "#1e293b", Background: "#ffffff"},
			Fonts:   model.ThemeFonts{Heading: "Inter", Body: "Inter"},
			Spacing: model.ThemeSpacing{Section: "1.5rem", Item: "1rem"},
		},
		supported: allSections,
		dateSep:   " - ",
	},
	{
		id:   "modern",
		file: "modern.tmpl",
		fallback: model.Theme{
			Colors:  model.ThemeColors{Primary: "#2563eb", Secondary: "#64748b", Accent: "#0ea5e9", Text: "#1e293b", Background: "#ffffff"},
			Fonts:   model.ThemeFonts{Heading: "Inter", Body: "Inter"},
			Spacing: model.ThemeSpacing{Section: "1.5rem", Item: "1rem"},
		},
		supported: allSections,
		sidebar: map[model.SectionType]bool{
			model.SectionSkills:       true,
			model.SectionAchievements: true,
		},
		requireItems: map[model.SectionType]bool{
			model.SectionAchievements: true,
		},
		dateSep: " - ",
	},
	{
		id:   "creative",
		file: "creative.tmpl",
		fallback: model.Theme{
			Colors:  model.ThemeColors{Primary: "#7c3aed", Secondary: "#a855f7", Accent: "#ec4899", Text: "#374151", Background: "#ffffff"},
			Fonts:   model.ThemeFonts{Heading: "Poppins", Body: "Inter"},
			Spacing: model.ThemeSpacing{Section: "2rem", Item: "1.25rem"},
		},
		supported: map[model.SectionType]bool{
			model.SectionSummary:    true,
			model.SectionExperience: true,
			model.SectionSkills:     true,
		},
		dateSep: " - ",
	},
	{
		id:   "minimal",
		file: "minimal.tmpl",
		fallback: model.Theme{
			Colors:  model.ThemeColors{Primary: "#374151", Secondary: "#6b7280", Accent: "#111827", Text: "#1f2937", Background: "#ffffff"},
			Fonts:   model.ThemeFonts{Heading: "system-ui", Body: "system-ui"},
			Spacing: model.ThemeSpacing{Section: "1.25rem", Item: "0.75rem"},
		},
		supported: allSections,
		dateSep:   " – ",
	},
}

// VisibleSections filters to visible descriptors and sorts ascending by
// order. The sort is stable: equal order values keep their original array
// position.
func VisibleSections(sections []model.Section) []model.Section {
	out := make([]model.Section, 0, len(sections))
	for _, s := range sections {
		if s.Visible {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// resolveStyle merges the theme over the spec's fallback field by field.
func resolveStyle(theme *model.Theme, sp templateSpec) Style {
	pick := func(v, fallback string) string {
		if theme != nil && v != "" {
			return v
		}
		return fallback
	}
	var t model.Theme
	if theme != nil {
		t = *theme
	}
	fb := sp.fallback
	return Style{
		Primary:        pick(t.Colors.Primary, fb.Colors.Primary),
		Secondary:      pick(t.Colors.Secondary, fb.Colors.Secondary),
		Accent:         pick(t.Colors.Accent, fb.Colors.Accent),
		Text:           pick(t.Colors.Text, fb.Colors.Text),
		Background:     pick(t.Colors.Background, fb.Colors.Background),
		HeadingFont:    pick(t.Fonts.Heading, fb.Fonts.Heading),
		BodyFont:       pick(t.Fonts.Body, fb.Fonts.Body),
		SectionSpacing: pick(t.Spacing.Section, fb.Spacing.Section),
		ItemSpacing:    pick(t.Spacing.Item, fb.Spacing.Item),
	}
}

// buildPage is the single traversal shared by all four layouts. The
// personalInfo section is never part of the loop: every layout renders it
// unconditionally in its fixed header or sidebar position.
func buildPage(resume model.ResumeData, theme *model.Theme, sp templateSpec) Page {
	page := Page{
		Title:  resume.PersonalInfo.FullName,
		Style:  resolveStyle(theme, sp),
		Header: resume.PersonalInfo,
	}

	for _, sec := range VisibleSections(resume.Sections) {
		if sec.Type == model.SectionPersonalInfo {
			continue
		}
		if !sp.supported[sec.Type] {
			continue
		}
		view, ok := buildSection(resume, sec, sp)
		if !ok {
			continue
		}
		if sp.sidebar[sec.Type] {
			page.Sidebar = append(page.Sidebar, view)
		} else {
			page.Main = append(page.Main, view)
		}
	}
	return page
}

// buildSection dispatches on the closed section-type enum. An empty
// collection still yields a section with zero items unless the spec requires
// items for that kind.
func buildSection(resume model.ResumeData, sec model.Section, sp templateSpec) (Section, bool) {
	view := Section{Type: string(sec.Type), Title: sec.Title}

	switch sec.Type {
	case model.SectionSummary:
		view.Summary = resume.Summary

	case model.SectionExperience:
		for _, exp := range resume.Experience {
			view.Experience = append(view.Experience, ExperienceItem{
				Position:   exp.Position,
				Company:    exp.Company,
				Location:   exp.Location,
				DateRange:  dateRange(exp.StartDate, exp.EndDate, exp.Current, sp.dateSep),
				Paragraphs: Paragraphs(exp.Description),
			})
		}
		if sp.requireItems[sec.Type] && len(view.Experience) == 0 {
			return Section{}, false
		}

	case model.SectionEducation:
		for _, edu := range resume.Education {
			view.Education = append(view.Education, EducationItem{
				Degree:      edu.Degree,
				Field:       edu.Field,
				Institution: edu.Institution,
				GPA:         edu.GPA,
				DateRange:   dateRange(edu.StartDate, edu.EndDate, edu.Current, sp.dateSep),
			})
		}
		if sp.requireItems[sec.Type] && len(view.Education) == 0 {
			return Section{}, false
		}

	case model.SectionSkills:
		view.SkillGroups = GroupSkills(resume.Skills)
		if sp.requireItems[sec.Type] && len(view.SkillGroups) == 0 {
			return Section{}, false
		}

	case model.SectionProjects:
		for _, proj := range resume.Projects {
			view.Projects = append(view.Projects, ProjectItem{
				Name:         proj.Name,
				Description:  proj.Description,
				DateRange:    projectDateRange(proj.StartDate, proj.EndDate, sp.dateSep),
				Technologies: append([]string(nil), proj.Technologies...),
				URL:          proj.URL,
				URLLabel:     LinkLabel(proj.URL),
				GitHub:       proj.GitHub,
				GitHubLabel:  LinkLabel(proj.GitHub),
			})
		}
		if sp.requireItems[sec.Type] && len(view.Projects) == 0 {
			return Section{}, false
		}

	case model.SectionAchievements:
		for _, ach := range resume.Achievements {
			view.Achievements = append(view.Achievements, AchievementItem{
				Title:       ach.Title,
				Issuer:      ach.Issuer,
				Description: ach.Description,
				Date:        FormatDate(ach.Date),
			})
		}
		if sp.requireItems[sec.Type] && len(view.Achievements) == 0 {
			return Section{}, false
		}

	case model.SectionPersonalInfo:
		// handled by the fixed header, never reaches the loop
		return Section{}, false

	default:
		return Section{}, false
	}

	return view, true
}
