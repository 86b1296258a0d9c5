// Package testutil provides test utilities and helpers for
// validate-docs tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDoc writes a documentation fixture under dir, creating parent
// directories as needed, and returns its path. Cleanup is handled by
// the caller's temp directory.
func WriteDoc(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// SkillDoc returns a minimal valid skill document with the given name
// and description frontmatter.
func SkillDoc(name, description string) string {
	return "---\nname: " + name + "\ndescription: " + description + "\n---\n\n# " + name + "\n\n## Instructions\n\nFollow the steps.\n"
}
