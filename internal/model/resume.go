package model

import (
	"slices"
	"strings"
)

// Go models for the resume document, the persisted snapshot and the
// theme/template catalogs. JSON tags match the storage/export shape.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Current     bool   `json:"current"`
}

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Issuer      string `json:"issuer,omitempty"`
}

// SectionType is the closed set of content-section kinds. Renderers dispatch
// on it exhaustively; anything outside the set renders nothing.
type SectionType string

const (
	SectionPersonalInfo SectionType = "personalInfo"
	SectionSummary      SectionType = "summary"
	SectionExperience   SectionType = "experience"
	SectionEducation    SectionType = "education"
	SectionSkills       SectionType = "skills"
	SectionProjects     SectionType = "projects"
	SectionAchievements SectionType = "achievements"
)

// Section describes one content section: Order is the authoritative sort key
// for rendering, Visible gates inclusion in rendered output.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Visible bool        `json:"visible"`
	Order   int         `json:"order"`
}

// ResumeData is the root aggregate, owned exclusively by the store.
type ResumeData struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Summary      string        `json:"summary"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Achievements []Achievement `json:"achievements"`
	Sections     []Section     `json:"sections"`
}

type ThemeColors struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" yaml:"accent"`
	Text       string `json:"text" yaml:"text"`
	Background string `json:"background" yaml:"background"`
}

type ThemeFonts struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

type ThemeSpacing struct {
	Section string `json:"section" yaml:"section"`
	Item    string `json:"item" yaml:"item"`
}

// Theme is an immutable catalog entry, selected by id from Settings.
type Theme struct {
	ID      string       `json:"id" yaml:"id"`
	Name    string       `json:"name" yaml:"name"`
	Colors  ThemeColors  `json:"colors" yaml:"colors"`
	Fonts   ThemeFonts   `json:"fonts" yaml:"fonts"`
	Spacing ThemeSpacing `json:"spacing" yaml:"spacing"`
}

type TemplateLayout string

const (
	LayoutSingleColumn TemplateLayout = "single-column"
	LayoutTwoColumn    TemplateLayout = "two-column"
	LayoutSidebar      TemplateLayout = "sidebar"
)

// Template is an immutable catalog entry describing a visual layout.
type Template struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Layout      TemplateLayout `json:"layout" yaml:"layout"`
	Category    string         `json:"category" yaml:"category"`
}

// Settings is process-wide UI state, persisted alongside the document.
type Settings struct {
	CurrentTemplate string `json:"currentTemplate"`
	CurrentTheme    string `json:"currentTheme"`
	DarkMode        bool   `json:"darkMode"`
	AutoSave        bool   `json:"autoSave"`
	ExportFormat    string `json:"exportFormat"`
}

// SnapshotVersion is the serialized snapshot schema version.
const SnapshotVersion = 1

// Snapshot is the persisted {resumeData, settings} blob written on every
// mutation and read once at startup.
type Snapshot struct {
	Version    int        `json:"version"`
	ResumeData ResumeData `json:"resumeData"`
	Settings   Settings   `json:"settings"`
}

// SplitTechnologies derives a project technology list from a comma-delimited
// input: entries are trimmed and empty entries dropped.
func SplitTechnologies(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy so callers never alias store-owned slices.
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Experience = slices.Clone(r.Experience)
	out.Education = slices.Clone(r.Education)
	out.Skills = slices.Clone(r.Skills)
	out.Projects = slices.Clone(r.Projects)
	out.Achievements = slices.Clone(r.Achievements)
	out.Sections = slices.Clone(r.Sections)
	for i, p := range out.Projects {
		out.Projects[i].Technologies = slices.Clone(p.Technologies)
	}
	return out
}
