package main

import (
	"log"
	"os"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/export"
	"resume-builder/internal/render"
	"resume-builder/internal/store"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	dataDir := os.Getenv("RESUME_DATA_DIR")
	if dataDir == "" {
		dataDir = "resume-data"
	}

	fileRepo := repo.NewFileRepo(dataDir)
	s := store.New(fileRepo)

	registry := render.DefaultRegistry()

	printer := infra.NewChromedpRenderer()
	pdf := export.NewPDFExporter(registry, printer)

	app := fiber.New()

	h := httpadapter.NewHandler(s, registry, pdf)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
