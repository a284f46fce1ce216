// Package store owns the resume document and app settings. It is the single
// writer: every mutation is applied atomically under a lock, persisted
// best-effort to the snapshot repository, and announced to subscribers.
package store

import (
	"log"
	"sync"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// StorageKey is the fixed key the snapshot blob is stored under.
const StorageKey = "resume-builder-storage"

type Store struct {
	mu          sync.RWMutex
	resume      model.ResumeData
	settings    model.Settings
	repo        repository.SnapshotRepo
	subscribers []func()
}

// New builds a store rehydrated from the repository, or from the built-in
// defaults when no snapshot exists or the stored one cannot be read. A nil
// repo disables persistence (used by tests and pure consumers).
func New(repo repository.SnapshotRepo) *Store {
	s := &Store{
		resume:   model.DefaultResume(),
		settings: model.DefaultSettings(),
		repo:     repo,
	}
	if repo == nil {
		return s
	}
	snap, err := repo.Load(StorageKey)
	if err != nil {
		log.Printf("store: warning: unable to load snapshot, using defaults: %v", err)
		return s
	}
	if snap == nil {
		return s
	}
	snap.Normalize()
	s.resume = snap.ResumeData
	s.settings = snap.Settings
	return s
}

// Subscribe registers a callback invoked synchronously after every mutation.
// Consumers use it to trigger re-rendering.
func (s *Store) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Resume returns a deep copy of the current document.
func (s *Store) Resume() model.ResumeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resume.Clone()
}

// Settings returns the current app settings.
func (s *Store) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Snapshot returns a deep copy of the full persisted state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Version:    model.SnapshotVersion,
		ResumeData: s.resume.Clone(),
		Settings:   s.settings,
	}
}

// mutate applies fn under the write lock, then persists and notifies.
// Persistence is best-effort: a failed write never rolls back the in-memory
// mutation.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	subs := append(([]func())(nil), s.subscribers...)
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Save(StorageKey, &snap); err != nil {
			log.Printf("store: warning: failed to persist snapshot (non-fatal): %v", err)
		}
	}
	for _, fn := range subs {
		fn()
	}
}

func newID() string { return uuid.NewString() }

// UpdatePersonalInfo shallow-merges the given fields; unset fields are left
// unchanged.
func (s *Store) UpdatePersonalInfo(p PersonalInfoPatch) {
	s.mutate(func() {
		info := &s.resume.PersonalInfo
		setString(&info.FullName, p.FullName)
		setString(&info.Email, p.Email)
		setString(&info.Phone, p.Phone)
		setString(&info.Location, p.Location)
		setString(&info.Website, p.Website)
		setString(&info.LinkedIn, p.LinkedIn)
		setString(&info.GitHub, p.GitHub)
	})
}

// UpdateSummary replaces the summary wholesale.
func (s *Store) UpdateSummary(summary string) {
	s.mutate(func() { s.resume.Summary = summary })
}

// AddExperience appends a new entry with a fresh id and zero-value fields,
// returning the id.
func (s *Store) AddExperience() string {
	id := newID()
	s.mutate(func() {
		s.resume.Experience = append(s.resume.Experience, model.Experience{ID: id})
	})
	return id
}

// UpdateExperience shallow-merges patch fields into the entry with the given
// id. Unknown ids are a no-op, not an error.
func (s *Store) UpdateExperience(id string, p ExperiencePatch) {
	s.mutate(func() {
		for i := range s.resume.Experience {
			if s.resume.Experience[i].ID != id {
				continue
			}
			e := &s.resume.Experience[i]
			setString(&e.Company, p.Company)
			setString(&e.Position, p.Position)
			setString(&e.StartDate, p.StartDate)
			setString(&e.EndDate, p.EndDate)
			setString(&e.Description, p.Description)
			setString(&e.Location, p.Location)
			if p.Current != nil {
				e.Current = *p.Current
			}
			return
		}
	})
}

// RemoveExperience removes the entry with the given id; no-op if absent.
func (s *Store) RemoveExperience(id string) {
	s.mutate(func() {
		s.resume.Experience = removeByID(s.resume.Experience, id, func(e model.Experience) string { return e.ID })
	})
}

func (s *Store) AddEducation() string {
	id := newID()
	s.mutate(func() {
		s.resume.Education = append(s.resume.Education, model.Education{ID: id})
	})
	return id
}

func (s *Store) UpdateEducation(id string, p EducationPatch) {
	s.mutate(func() {
		for i := range s.resume.Education {
			if s.resume.Education[i].ID != id {
				continue
			}
			e := &s.resume.Education[i]
			setString(&e.Institution, p.Institution)
			setString(&e.Degree, p.Degree)
			setString(&e.Field, p.Field)
			setString(&e.StartDate, p.StartDate)
			setString(&e.EndDate, p.EndDate)
			setString(&e.GPA, p.GPA)
			if p.Current != nil {
				e.Current = *p.Current
			}
			return
		}
	})
}

func (s *Store) RemoveEducation(id string) {
	s.mutate(func() {
		s.resume.Education = removeByID(s.resume.Education, id, func(e model.Education) string { return e.ID })
	})
}

// AddSkill appends a new skill at level Beginner.
func (s *Store) AddSkill() string {
	id := newID()
	s.mutate(func() {
		s.resume.Skills = append(s.resume.Skills, model.Skill{ID: id, Level: model.LevelBeginner})
	})
	return id
}

func (s *Store) UpdateSkill(id string, p SkillPatch) {
	s.mutate(func() {
		for i := range s.resume.Skills {
			if s.resume.Skills[i].ID != id {
				continue
			}
			sk := &s.resume.Skills[i]
			setString(&sk.Name, p.Name)
			setString(&sk.Category, p.Category)
			if p.Level != nil {
				sk.Level = *p.Level
			}
			return
		}
	})
}

func (s *Store) RemoveSkill(id string) {
	s.mutate(func() {
		s.resume.Skills = removeByID(s.resume.Skills, id, func(sk model.Skill) string { return sk.ID })
	})
}

// AddProject appends a new project with an empty technology list.
func (s *Store) AddProject() string {
	id := newID()
	s.mutate(func() {
		s.resume.Projects = append(s.resume.Projects, model.Project{ID: id, Technologies: []string{}})
	})
	return id
}

func (s *Store) UpdateProject(id string, p ProjectPatch) {
	s.mutate(func() {
		for i := range s.resume.Projects {
			if s.resume.Projects[i].ID != id {
				continue
			}
			pr := &s.resume.Projects[i]
			setString(&pr.Name, p.Name)
			setString(&pr.Description, p.Description)
			setString(&pr.URL, p.URL)
			setString(&pr.GitHub, p.GitHub)
			setString(&pr.StartDate, p.StartDate)
			setString(&pr.EndDate, p.EndDate)
			if p.Technologies != nil {
				pr.Technologies = append([]string(nil), *p.Technologies...)
			}
			return
		}
	})
}

func (s *Store) RemoveProject(id string) {
	s.mutate(func() {
		s.resume.Projects = removeByID(s.resume.Projects, id, func(p model.Project) string { return p.ID })
	})
}

func (s *Store) AddAchievement() string {
	id := newID()
	s.mutate(func() {
		s.resume.Achievements = append(s.resume.Achievements, model.Achievement{ID: id})
	})
	return id
}

func (s *Store) UpdateAchievement(id string, p AchievementPatch) {
	s.mutate(func() {
		for i := range s.resume.Achievements {
			if s.resume.Achievements[i].ID != id {
				continue
			}
			a := &s.resume.Achievements[i]
			setString(&a.Title, p.Title)
			setString(&a.Description, p.Description)
			setString(&a.Date, p.Date)
			setString(&a.Issuer, p.Issuer)
			return
		}
	})
}

func (s *Store) RemoveAchievement(id string) {
	s.mutate(func() {
		s.resume.Achievements = removeByID(s.resume.Achievements, id, func(a model.Achievement) string { return a.ID })
	})
}

// ToggleSectionVisibility flips the visible flag on the matching section
// descriptor; no-op if absent.
func (s *Store) ToggleSectionVisibility(sectionID string) {
	s.mutate(func() {
		for i := range s.resume.Sections {
			if s.resume.Sections[i].ID == sectionID {
				s.resume.Sections[i].Visible = !s.resume.Sections[i].Visible
				return
			}
		}
	})
}

// ReorderSections replaces the section list wholesale; the caller supplies
// the complete new descriptor set.
func (s *Store) ReorderSections(sections []model.Section) {
	s.mutate(func() {
		s.resume.Sections = append([]model.Section(nil), sections...)
	})
}

// UpdateSettings shallow-merges the given settings fields.
func (s *Store) UpdateSettings(p SettingsPatch) {
	s.mutate(func() {
		setString(&s.settings.CurrentTemplate, p.CurrentTemplate)
		setString(&s.settings.CurrentTheme, p.CurrentTheme)
		setString(&s.settings.ExportFormat, p.ExportFormat)
		if p.DarkMode != nil {
			s.settings.DarkMode = *p.DarkMode
		}
		if p.AutoSave != nil {
			s.settings.AutoSave = *p.AutoSave
		}
	})
}

// ResetResume replaces the document and settings with the built-in defaults,
// discarding all current state.
func (s *Store) ResetResume() {
	s.mutate(func() {
		s.resume = model.DefaultResume()
		s.settings = model.DefaultSettings()
	})
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	for i, it := range items {
		if key(it) == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
