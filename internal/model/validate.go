package model

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed snapshot.schema.json
var snapshotSchema []byte

// ValidateSnapshotBytes checks a raw stored snapshot against the v1 snapshot
// schema. Rehydration treats a failure here as a warning, not a hard error:
// the loader still attempts a best-effort partial load.
func ValidateSnapshotBytes(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(snapshotSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("snapshot validation failed: %s", msgs)
}

// Normalize fills defaults for fields a stored snapshot may be missing so an
// older or partial snapshot never fails rehydration.
func (s *Snapshot) Normalize() {
	if s.Version == 0 {
		s.Version = SnapshotVersion
	}
	r := &s.ResumeData
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Achievements == nil {
		r.Achievements = []Achievement{}
	}
	if len(r.Sections) == 0 {
		r.Sections = DefaultSections()
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
	if s.Settings.CurrentTemplate == "" {
		s.Settings.CurrentTemplate = DefaultSettings().CurrentTemplate
	}
	if s.Settings.CurrentTheme == "" {
		s.Settings.CurrentTheme = DefaultSettings().CurrentTheme
	}
	if s.Settings.ExportFormat == "" {
		s.Settings.ExportFormat = DefaultSettings().ExportFormat
	}
}
