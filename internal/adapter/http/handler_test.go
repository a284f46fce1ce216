package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrinter struct{}

func (stubPrinter) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	s := store.New(nil)
	registry := render.DefaultRegistry()
	pdf := export.NewPDFExporter(registry, stubPrinter{})

	app := fiber.New()
	NewHandler(s, registry, pdf).Register(app)
	return app, s
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, b
}

func TestGetResume(t *testing.T) {
	app, _ := newTestApp(t)
	resp, body := do(t, app, "GET", "/resume", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var doc model.ResumeData
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "John Doe", doc.PersonalInfo.FullName)
}

func TestUpdatePersonalInfo(t *testing.T) {
	app, s := newTestApp(t)
	resp, _ := do(t, app, "PATCH", "/resume/personal-info", `{"email": "new@mail.dev"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	info := s.Resume().PersonalInfo
	assert.Equal(t, "new@mail.dev", info.Email)
	assert.Equal(t, "John Doe", info.FullName)
}

func TestAddThenUpdateExperience(t *testing.T) {
	app, s := newTestApp(t)

	resp, body := do(t, app, "POST", "/resume/experience", "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)

	resp, _ = do(t, app, "PATCH", "/resume/experience/"+created.ID, `{"company": "Acme", "current": true}`)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	exp := s.Resume().Experience
	last := exp[len(exp)-1]
	assert.Equal(t, "Acme", last.Company)
	assert.True(t, last.Current)
}

func TestUpdateProjectSplitsTechnologies(t *testing.T) {
	app, s := newTestApp(t)

	resp, body := do(t, app, "POST", "/resume/projects", "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ = do(t, app, "PATCH", "/resume/projects/"+created.ID, `{"technologies": "Go, Fiber, , chromedp"}`)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	projects := s.Resume().Projects
	assert.Equal(t, []string{"Go", "Fiber", "chromedp"}, projects[len(projects)-1].Technologies)
}

func TestRemoveSkill(t *testing.T) {
	app, s := newTestApp(t)
	count := len(s.Resume().Skills)
	id := s.Resume().Skills[0].ID

	resp, _ := do(t, app, "DELETE", "/resume/skills/"+id, "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Len(t, s.Resume().Skills, count-1)
}

func TestToggleSection(t *testing.T) {
	app, s := newTestApp(t)

	resp, _ := do(t, app, "POST", "/resume/sections/achievements/toggle", "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	for _, sec := range s.Resume().Sections {
		if sec.ID == "achievements" {
			assert.True(t, sec.Visible)
		}
	}
}

func TestReorderSections(t *testing.T) {
	app, s := newTestApp(t)
	sections := s.Resume().Sections
	sections[0].Order, sections[1].Order = sections[1].Order, sections[0].Order
	payload, err := json.Marshal(sections)
	require.NoError(t, err)

	resp, _ := do(t, app, "PUT", "/resume/sections", string(payload))
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, sections, s.Resume().Sections)
}

func TestUpdateSettings(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, "PATCH", "/settings", `{"currentTemplate": "minimal"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var settings model.Settings
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "minimal", settings.CurrentTemplate)
	assert.Equal(t, "professional", settings.CurrentTheme)
}

func TestReset(t *testing.T) {
	app, s := newTestApp(t)
	s.UpdateSummary("changed")

	resp, _ := do(t, app, "POST", "/resume/reset", "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, model.DefaultResume(), s.Resume())
}

func TestPreviewRendersHTML(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, "GET", "/preview", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "John Doe")
}

func TestPreviewUnknownTemplateFallsBack(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, "GET", "/preview?template=bogus&theme=bogus", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "John Doe")
}

func TestExportJSONDownload(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, "GET", "/export/json", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), export.JSONFileName)

	var doc model.ResumeData
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, model.DefaultResume(), doc)
}

func TestExportPDFDownload(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, "GET", "/export/pdf", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), export.PDFFileName)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestInvalidPayloadRejected(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := do(t, app, "PATCH", "/resume/personal-info", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
