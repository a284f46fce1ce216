// Package http translates editor widget events into store mutations and
// exposes the preview/export surface.
package http

import (
	"log"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/store"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	store    *store.Store
	registry *render.Registry
	pdf      *export.PDFExporter
}

func NewHandler(s *store.Store, registry *render.Registry, pdf *export.PDFExporter) *Handler {
	return &Handler{store: s, registry: registry, pdf: pdf}
}

// Register wires all editor and export routes onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/resume", h.GetResume)
	app.Get("/settings", h.GetSettings)
	app.Get("/themes", h.ListThemes)
	app.Get("/templates", h.ListTemplates)
	app.Get("/preview", h.Preview)
	app.Get("/export/json", h.ExportJSON)
	app.Get("/export/pdf", h.ExportPDF)

	app.Patch("/resume/personal-info", h.UpdatePersonalInfo)
	app.Put("/resume/summary", h.UpdateSummary)

	app.Post("/resume/experience", h.AddExperience)
	app.Patch("/resume/experience/:id", h.UpdateExperience)
	app.Delete("/resume/experience/:id", h.RemoveExperience)

	app.Post("/resume/education", h.AddEducation)
	app.Patch("/resume/education/:id", h.UpdateEducation)
	app.Delete("/resume/education/:id", h.RemoveEducation)

	app.Post("/resume/skills", h.AddSkill)
	app.Patch("/resume/skills/:id", h.UpdateSkill)
	app.Delete("/resume/skills/:id", h.RemoveSkill)

	app.Post("/resume/projects", h.AddProject)
	app.Patch("/resume/projects/:id", h.UpdateProject)
	app.Delete("/resume/projects/:id", h.RemoveProject)

	app.Post("/resume/achievements", h.AddAchievement)
	app.Patch("/resume/achievements/:id", h.UpdateAchievement)
	app.Delete("/resume/achievements/:id", h.RemoveAchievement)

	app.Post("/resume/sections/:id/toggle", h.ToggleSection)
	app.Put("/resume/sections", h.ReorderSections)

	app.Patch("/settings", h.UpdateSettings)
	app.Post("/resume/reset", h.Reset)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.store.Resume())
}

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(h.store.Settings())
}

func (h *Handler) ListThemes(c *fiber.Ctx) error {
	return c.JSON(model.Themes())
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(model.Templates())
}

// Preview renders the document with the current (or query-overridden)
// template and theme selection.
func (h *Handler) Preview(c *fiber.Ctx) error {
	settings := h.store.Settings()
	renderer := h.registry.Resolve(c.Query("template", settings.CurrentTemplate))

	var theme *model.Theme
	if t, ok := model.ThemeByID(c.Query("theme", settings.CurrentTheme)); ok {
		theme = &t
	}

	html, err := renderer.Render(h.store.Resume(), theme)
	if err != nil {
		log.Printf("handler: preview render failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}
	c.Set(fiber.HeaderContentType, renderer.ContentType())
	return c.Send(html)
}

func (h *Handler) ExportJSON(c *fiber.Ctx) error {
	b, err := export.JSON(h.store.Resume())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.JSONFileName+`"`)
	return c.Send(b)
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	pdf, err := h.pdf.Export(c.Context(), h.store.Resume(), h.store.Settings())
	if err != nil {
		log.Printf("handler: pdf export failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "pdf export failed"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.PDFFileName+`"`)
	return c.Send(pdf)
}

func (h *Handler) UpdatePersonalInfo(c *fiber.Ctx) error {
	var p store.PersonalInfoPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdatePersonalInfo(p)
	return c.JSON(h.store.Resume().PersonalInfo)
}

type summaryReq struct {
	Summary string `json:"summary"`
}

func (h *Handler) UpdateSummary(c *fiber.Ctx) error {
	var req summaryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateSummary(req.Summary)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	id := h.store.AddExperience()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var p store.ExperiencePatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateExperience(c.Params("id"), p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	h.store.RemoveExperience(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	id := h.store.AddEducation()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var p store.EducationPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateEducation(c.Params("id"), p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	h.store.RemoveEducation(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	id := h.store.AddSkill()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	var p store.SkillPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateSkill(c.Params("id"), p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	h.store.RemoveSkill(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// projectReq mirrors the widget payload: technologies arrive as a single
// comma-delimited input value and are split here, not in the store.
type projectReq struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Technologies *string `json:"technologies"`
	URL          *string `json:"url"`
	GitHub       *string `json:"github"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
}

func (h *Handler) AddProject(c *fiber.Ctx) error {
	id := h.store.AddProject()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	var req projectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	p := store.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		GitHub:      req.GitHub,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Technologies != nil {
		techs := model.SplitTechnologies(*req.Technologies)
		p.Technologies = &techs
	}
	h.store.UpdateProject(c.Params("id"), p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveProject(c *fiber.Ctx) error {
	h.store.RemoveProject(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddAchievement(c *fiber.Ctx) error {
	id := h.store.AddAchievement()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateAchievement(c *fiber.Ctx) error {
	var p store.AchievementPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateAchievement(c.Params("id"), p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveAchievement(c *fiber.Ctx) error {
	h.store.RemoveAchievement(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ToggleSection(c *fiber.Ctx) error {
	h.store.ToggleSectionVisibility(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ReorderSections(c *fiber.Ctx) error {
	var sections []model.Section
	if err := c.BodyParser(&sections); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.ReorderSections(sections)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	var p store.SettingsPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateSettings(p)
	return c.JSON(h.store.Settings())
}

func (h *Handler) Reset(c *fiber.Ctx) error {
	h.store.ResetResume()
	return c.SendStatus(fiber.StatusNoContent)
}
