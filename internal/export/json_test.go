package export

import (
	"encoding/json"
	"strings"
	"testing"

	"resume-builder/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	in := model.DefaultResume()
	b, err := JSON(in)
	require.NoError(t, err)

	var out model.ResumeData
	require.NoError(t, json.Unmarshal(b, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-exported +reparsed):\n%s", diff)
	}
}

func TestJSONIsIndented(t *testing.T) {
	b, err := JSON(model.DefaultResume())
	require.NoError(t, err)

	s := string(b)
	assert.True(t, strings.HasPrefix(s, "{\n  \""), "2-space indented object")
	assert.Contains(t, s, `"personalInfo"`)
	assert.Contains(t, s, `"sections"`)
}

func TestJSONIgnoresSettings(t *testing.T) {
	b, err := JSON(model.DefaultResume())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "currentTemplate",
		"the data export carries the document only, not app settings")
}
