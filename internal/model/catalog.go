package model

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs.yaml
var catalogsYAML []byte

type catalogs struct {
	Themes    []Theme    `yaml:"themes"`
	Templates []Template `yaml:"templates"`
}

var (
	catalogOnce sync.Once
	catalog     catalogs
)

func loadCatalogs() {
	catalogOnce.Do(func() {
		if err := yaml.Unmarshal(catalogsYAML, &catalog); err != nil {
			panic(fmt.Sprintf("model: parse embedded catalogs: %v", err))
		}
	})
}

// Themes returns the theme catalog in declaration order.
func Themes() []Theme {
	loadCatalogs()
	return append([]Theme(nil), catalog.Themes...)
}

// Templates returns the template catalog in declaration order.
func Templates() []Template {
	loadCatalogs()
	return append([]Template(nil), catalog.Templates...)
}

// ThemeByID looks up a theme by id.
func ThemeByID(id string) (Theme, bool) {
	loadCatalogs()
	for _, t := range catalog.Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// TemplateByID looks up a template by id.
func TemplateByID(id string) (Template, bool) {
	loadCatalogs()
	for _, t := range catalog.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// DefaultTemplate is the fallback when a selected template id has no
// catalog entry.
func DefaultTemplate() Template {
	loadCatalogs()
	return catalog.Templates[0]
}
