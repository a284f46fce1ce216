// Package export produces the read-only snapshot outputs: a JSON document
// download and a PDF of the rendered preview.
package export

import (
	"encoding/json"

	"resume-builder/internal/model"
)

// JSONFileName is the download name offered for the JSON export.
const JSONFileName = "resume-data.json"

// JSON serializes the resume document with stable key ordering and 2-space
// indentation. Re-parsing the output yields a document deep-equal to the
// input.
func JSON(resume model.ResumeData) ([]byte, error) {
	return json.MarshalIndent(resume, "", "  ")
}
