package store

import "resume-builder/internal/model"

// Patch types carry partial updates: nil fields are left untouched, matching
// the shallow-merge contract of every update mutator.

type PersonalInfoPatch struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
}

type ExperiencePatch struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Current     *bool   `json:"current"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

type EducationPatch struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Field       *string `json:"field"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	GPA         *string `json:"gpa"`
	Current     *bool   `json:"current"`
}

type SkillPatch struct {
	Name     *string           `json:"name"`
	Level    *model.SkillLevel `json:"level"`
	Category *string           `json:"category"`
}

type ProjectPatch struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	URL          *string   `json:"url"`
	GitHub       *string   `json:"github"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
}

type AchievementPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Issuer      *string `json:"issuer"`
}

type SettingsPatch struct {
	CurrentTemplate *string `json:"currentTemplate"`
	CurrentTheme    *string `json:"currentTheme"`
	DarkMode        *bool   `json:"darkMode"`
	AutoSave        *bool   `json:"autoSave"`
	ExportFormat    *string `json:"exportFormat"`
}
