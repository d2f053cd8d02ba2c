package request

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/jobfit/internal/engine"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "req.json", `{
  "profile_text": "Finance major",
  "job_text": "Financial Analyst",
  "profile_structured": {"gpa": 3.7, "employer_tier": "2"}
}`)

	req, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Finance major", req.ProfileText)
	assert.Equal(t, "Financial Analyst", req.JobText)

	hints := engine.DecodeHints(req.ProfileStructured)
	require.NotNil(t, hints.GPA)
	assert.InDelta(t, 3.7, *hints.GPA, 0.0001)
	assert.Equal(t, 2, hints.EmployerTier)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "req.yaml", `
profile_text: |
  Class of 2026. Audit intern.
job_text: Staff Accountant
profile_structured:
  grad_month: December
  target_roles_list:
    - accounting
`)

	req, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Class of 2026. Audit intern.\n", req.ProfileText)

	hints := engine.DecodeHints(req.ProfileStructured)
	assert.Equal(t, []string{"accounting"}, hints.TargetRoles)
	assert.Equal(t, 12, int(hints.GradMonth))
}

func TestParseUnknownExtensionFallsBackToYAML(t *testing.T) {
	t.Parallel()

	req, err := Parse([]byte("profile_text: a\njob_text: b\n"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, "a", req.ProfileText)
	assert.Equal(t, "b", req.JobText)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading request")

	_, err = Load(writeFile(t, "broken.json", "{"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(engine.Request{ProfileText: "a", JobText: "b"}))

	err := Validate(engine.Request{ProfileText: "   ", JobText: "b"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "ProfileText")

	err = Validate(engine.Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JobText")
}

func TestParseHints(t *testing.T) {
	t.Parallel()

	hints, err := ParseHints(`{"school_tier":"A","gpa":"3.9"}`)
	require.NoError(t, err)
	assert.Equal(t, "A", hints["school_tier"])

	hints, err = ParseHints("  ")
	require.NoError(t, err)
	assert.Nil(t, hints)

	_, err = ParseHints("[1,2]")
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, Supported("dir/req.json"))
	assert.True(t, Supported("REQ.YML"))
	assert.True(t, Supported("req.yaml"))
	assert.False(t, Supported("notes.txt"))
	assert.False(t, Supported("README"))
}
