package export

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// PDFFileName is the download name offered for the PDF export.
const PDFFileName = "resume.pdf"

// Printer is the platform print facility: it turns the rendered preview
// HTML into PDF bytes.
type Printer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// PDFExporter renders the currently selected template/theme and prints it.
type PDFExporter struct {
	registry *render.Registry
	printer  Printer
}

func NewPDFExporter(registry *render.Registry, printer Printer) *PDFExporter {
	return &PDFExporter{registry: registry, printer: printer}
}

// Export renders the document with the settings' template and theme and
// prints it to PDF. An unknown template or theme id falls back to the
// defaults rather than erroring. Printing is retried with exponential
// backoff and the output is checked for a PDF signature.
func (e *PDFExporter) Export(ctx context.Context, resume model.ResumeData, settings model.Settings) ([]byte, error) {
	renderer := e.registry.Resolve(settings.CurrentTemplate)

	var theme *model.Theme
	if t, ok := model.ThemeByID(settings.CurrentTheme); ok {
		theme = &t
	}

	html, err := renderer.Render(resume, theme)
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}

	var pdfBytes []byte
	var renderErr error
	attempts := 3
	for i := 0; i < attempts; i++ {
		pdfBytes, renderErr = e.printer.RenderHTMLToPDF(ctx, string(html))
		if renderErr == nil {
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				return pdfBytes, nil
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		log.Printf("export: print attempt %d failed: %v", i+1, renderErr)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("printing failed after %d attempts: %w", attempts, renderErr)
}
