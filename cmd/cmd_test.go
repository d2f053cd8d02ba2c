package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/jobfit/internal/engine"
)

func writeRequest(t *testing.T, dir, name string, req map[string]any) string {
	t.Helper()

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRunBatchKeepsFileOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRequest(t, dir, "b.json", map[string]any{
		"profile_text": "I do not want hourly pay.",
		"job_text":     "Cashier, $15/hr.",
	})
	writeRequest(t, dir, "a.json", map[string]any{
		"profile_text": "Finance major, audit intern.",
		"job_text":     "Staff Accountant",
	})
	writeRequest(t, dir, "c.json", map[string]any{"profile_text": "", "job_text": "x"})

	files, err := requestFiles(dir, "*.json")
	if err != nil {
		t.Fatalf("requestFiles: %v", err)
	}

	lines, err := runBatch(context.Background(), engine.New(nil), zap.NewNop(), files, &BatchConfig{Concurrency: 2})
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"a.json", "b.json", "c.json"} {
		if lines[i].File != want {
			t.Fatalf("line %d: expected %s, got %s", i, want, lines[i].File)
		}
	}
	if lines[1].Result == nil || lines[1].Result.Decision != "Pass" {
		t.Fatalf("expected Pass for b.json, got %+v", lines[1])
	}
	if lines[2].Error == "" || lines[2].Result != nil {
		t.Fatalf("expected validation error for c.json, got %+v", lines[2])
	}
}

func TestRunBatchFailFast(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRequest(t, dir, "bad.json", map[string]any{"job_text": "x"})

	files, err := requestFiles(dir, "*.json")
	if err != nil {
		t.Fatalf("requestFiles: %v", err)
	}

	if _, err := runBatch(context.Background(), engine.New(nil), zap.NewNop(), files, &BatchConfig{Concurrency: 1, FailFast: true}); err == nil {
		t.Fatalf("expected an error with fail-fast")
	}
}

func TestRequestFilesRejectsFile(t *testing.T) {
	t.Parallel()

	path := writeRequest(t, t.TempDir(), "one.json", map[string]any{})
	if _, err := requestFiles(path, "*.json"); err == nil {
		t.Fatalf("expected an error for a non-directory")
	}
}

func TestRequestFilesSkipsOtherTypes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRequest(t, dir, "b.yaml", map[string]any{})
	writeRequest(t, dir, "a.json", map[string]any{})
	writeRequest(t, dir, "notes.txt", map[string]any{})

	files, err := requestFiles(dir, "*")
	if err != nil {
		t.Fatalf("requestFiles: %v", err)
	}

	if len(files) != 2 || filepath.Base(files[0]) != "a.json" || filepath.Base(files[1]) != "b.yaml" {
		t.Fatalf("unexpected files: %v", files)
	}
}

func TestPrintResult(t *testing.T) {
	t.Parallel()

	res := engine.Result{
		Decision:  "Apply",
		Icon:      "✅",
		Score:     76,
		Bullets:   []string{"one"},
		RiskFlags: []string{"risk"},
		NextStep:  "next",
	}

	var text bytes.Buffer
	if err := printResult(&text, res, "text"); err != nil {
		t.Fatalf("printResult: %v", err)
	}
	for _, want := range []string{"✅ Apply (76)", "  - one", "  ! risk", "Next step: next"} {
		if !strings.Contains(text.String(), want) {
			t.Fatalf("summary %q misses %q", text.String(), want)
		}
	}

	var js bytes.Buffer
	if err := printResult(&js, res, "json"); err != nil {
		t.Fatalf("printResult: %v", err)
	}
	var back engine.Result
	if err := json.Unmarshal(js.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Decision != "Apply" {
		t.Fatalf("unexpected decision %q", back.Decision)
	}

	if err := printResult(&js, res, "xml"); err == nil {
		t.Fatalf("expected an error for unknown format")
	}
}

func TestBuildRequestFlagsOverrideFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeRequest(t, dir, "req.json", map[string]any{
		"profile_text":       "from file",
		"job_text":           "job from file",
		"profile_structured": map[string]any{"school_tier": "B"},
	})

	cmd := &cobra.Command{}
	cmd.Flags().String("request", "", "")
	cmd.Flags().String("profile", "", "")
	cmd.Flags().String("profile-file", "", "")
	cmd.Flags().String("job", "", "")
	cmd.Flags().String("job-file", "", "")
	cmd.Flags().String("hints", "", "")

	for name, value := range map[string]string{
		"request": path,
		"profile": "from flag",
		"hints":   `{"school_tier":"A"}`,
	} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}

	req, err := buildRequest(cmd)
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if req.ProfileText != "from flag" || req.JobText != "job from file" {
		t.Fatalf("unexpected texts: %+v", req)
	}
	if req.ProfileStructured["school_tier"] != "A" {
		t.Fatalf("hints flag must replace file hints, got %v", req.ProfileStructured)
	}
}

func TestBuildRequestJobFromStdin(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{}
	for _, name := range []string{"request", "profile", "profile-file", "job", "job-file", "hints"} {
		cmd.Flags().String(name, "", "")
	}
	cmd.SetIn(strings.NewReader("Staff Accountant\r\nCPA required.\r\n"))

	if err := cmd.Flags().Set("profile", "Accounting major."); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if err := cmd.Flags().Set("job-file", "-"); err != nil {
		t.Fatalf("set job-file: %v", err)
	}

	req, err := buildRequest(cmd)
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if req.JobText != "Staff Accountant\nCPA required." {
		t.Fatalf("unexpected job text: %q", req.JobText)
	}
}
