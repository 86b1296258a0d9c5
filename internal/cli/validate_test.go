package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/validate-docs/internal/testutil"
)

func init() {
	color.NoColor = true
}

// newValidateCmd builds a throwaway command carrying the same flag set
// as the root command, so runValidate can be exercised without mutating
// package-level state between tests.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "validate-docs"}
	cmd.Flags().String("category", "", "")
	cmd.Flags().String("format", "", "")
	cmd.Flags().Bool("strict", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	return cmd
}

func runPipeline(t *testing.T, args []string, flags map[string]string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newValidateCmd()
	for name, value := range flags {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}

	var out, errOut bytes.Buffer
	configPath := filepath.Join(t.TempDir(), "absent-config.json")
	err := runValidate(cmd, args, configPath, &out, &errOut)
	return out.String(), errOut.String(), err
}

const warningOnlyDoc = `# Review Format

Reviews classify each item as critical or minor.

## Submitting

Open a review thread per item.
`

var validSkillDoc = testutil.SkillDoc("code-reviewer", "Review code for best practices.")

func TestRunValidatePassing(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "skill.md", validSkillDoc)

	out, _, err := runPipeline(t, []string{dir}, nil)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.Contains(out, "1 documents, 0 errors, 0 warnings") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRunValidateStrictFlipsExitCode(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "format.md", warningOnlyDoc)

	_, _, err := runPipeline(t, []string{dir}, nil)
	if err != nil {
		t.Fatalf("warnings alone should pass without --strict, got %v", err)
	}

	_, _, err = runPipeline(t, []string{dir}, map[string]string{"strict": "true"})
	if ExitCode(err) != ExitValidationFailed {
		t.Errorf("exit code = %d, want %d under --strict", ExitCode(err), ExitValidationFailed)
	}
}

func TestRunValidateFailingDoc(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "skill.md", "---\nname: reviewer\n---\n\n# Reviewer\n")

	out, _, err := runPipeline(t, []string{dir}, nil)
	if ExitCode(err) != ExitValidationFailed {
		t.Fatalf("exit code = %d, want %d", ExitCode(err), ExitValidationFailed)
	}
	if !strings.Contains(out, "skill/required-description") {
		t.Errorf("output should name the violated rule: %q", out)
	}
}

func TestRunValidateParseFailureIsIsolated(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "broken.md", "---\nname: unclosed\n")
	testutil.WriteDoc(t, dir, "ok.md", validSkillDoc)

	out, _, err := runPipeline(t, []string{dir}, nil)
	if ExitCode(err) != ExitValidationFailed {
		t.Fatalf("exit code = %d, want %d", ExitCode(err), ExitValidationFailed)
	}
	if !strings.Contains(out, "parser/malformed") {
		t.Errorf("output should surface the parse failure: %q", out)
	}
	if !strings.Contains(out, "2 documents") {
		t.Errorf("the healthy document should still be validated: %q", out)
	}
}

func TestRunValidateJSONFormat(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "skill.md", validSkillDoc)

	out, _, err := runPipeline(t, []string{dir}, map[string]string{"format": "json"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	for _, field := range []string{`"documents"`, `"summary"`, `"exit_code"`} {
		if !strings.Contains(out, field) {
			t.Errorf("json output missing %s: %q", field, out)
		}
	}
}

func TestRunValidateCategoryOverride(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "skill.md", validSkillDoc)

	out, _, err := runPipeline(t, []string{dir}, map[string]string{"category": "reference", "format": "json"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.Contains(out, `"category": "reference"`) {
		t.Errorf("forced category should be applied: %q", out)
	}
}

func TestRunValidateInvalidFlagValues(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "skill.md", validSkillDoc)

	_, _, err := runPipeline(t, []string{dir}, map[string]string{"format": "xml"})
	if ExitCode(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d for bad format", ExitCode(err), ExitUsage)
	}

	_, _, err = runPipeline(t, []string{dir}, map[string]string{"category": "bogus"})
	if ExitCode(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d for bad category", ExitCode(err), ExitUsage)
	}
}

func TestRunValidateMissingPath(t *testing.T) {
	_, errOut, err := runPipeline(t, []string{"no/such/dir"}, nil)
	if ExitCode(err) != ExitUsage {
		t.Errorf("exit code = %d, want %d", ExitCode(err), ExitUsage)
	}
	if !strings.Contains(errOut, "path not found") {
		t.Errorf("stderr should explain the invocation error: %q", errOut)
	}
}

func TestRunValidateEmptyDirectory(t *testing.T) {
	out, _, err := runPipeline(t, []string{t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("zero documents is not an error, got %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("expected empty report body, got %q", out)
	}
}
