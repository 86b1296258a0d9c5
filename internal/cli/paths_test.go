package cli

import (
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/validate-docs/internal/testutil"
)

var defaultInclude = []string{"**/*.md", "**/*.markdown"}

func TestExpandPathsDirectory(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteDoc(t, dir, "b.md", "# B")
	testutil.WriteDoc(t, dir, filepath.Join("sub", "a.md"), "# A")
	testutil.WriteDoc(t, dir, "notes.txt", "not a doc")

	files, err := expandPaths([]string{dir}, defaultInclude)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "b.md"),
		filepath.Join(dir, "sub", "a.md"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestExpandPathsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteDoc(t, dir, "notes.txt", "explicit files are accepted regardless of extension")

	files, err := expandPaths([]string{path}, defaultInclude)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("files = %v, want [%s]", files, path)
	}
}

func TestExpandPathsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteDoc(t, dir, "a.md", "# A")

	files, err := expandPaths([]string{path, dir}, defaultInclude)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("files = %v, want a single entry", files)
	}
}

func TestExpandPathsMissing(t *testing.T) {
	_, err := expandPaths([]string{"no/such/path.md"}, defaultInclude)
	if err == nil {
		t.Error("expected error for missing path")
	}
}
