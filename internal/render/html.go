package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// htmlRenderer renders a Page through one embedded layout template. All four
// built-in renderers are instances of this type with different specs.
type htmlRenderer struct {
	spec templateSpec
	tpl  *template.Template
}

var templateFuncs = template.FuncMap{
	"odd":  func(i int) bool { return i%2 == 1 },
	"join": strings.Join,
}

func newHTMLRenderer(sp templateSpec) (*htmlRenderer, error) {
	tpl, err := template.New(sp.file).Funcs(templateFuncs).ParseFS(templateFS, "templates/"+sp.file)
	if err != nil {
		return nil, fmt.Errorf("render: parse %s: %w", sp.file, err)
	}
	return &htmlRenderer{spec: sp, tpl: tpl}, nil
}

func (r *htmlRenderer) Name() string { return r.spec.id }

func (r *htmlRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *htmlRenderer) Render(resume model.ResumeData, theme *model.Theme) ([]byte, error) {
	page := buildPage(resume, theme, r.spec)
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, r.spec.file, page); err != nil {
		return nil, fmt.Errorf("render: execute %s: %w", r.spec.file, err)
	}
	return buf.Bytes(), nil
}
