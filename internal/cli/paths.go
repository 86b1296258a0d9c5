package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// expandPaths resolves CLI path arguments into a deterministic, sorted,
// de-duplicated list of files. Directories are expanded with the
// configured include globs; explicit file arguments are accepted as-is.
// A missing path is an invocation error.
func expandPaths(args, include []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		clean := filepath.Clean(path)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("path not found: %s", arg)
		}

		if !info.IsDir() {
			add(arg)
			continue
		}

		for _, pattern := range include {
			matches, err := doublestar.Glob(os.DirFS(arg), pattern)
			if err != nil {
				return nil, fmt.Errorf("bad include pattern %q: %w", pattern, err)
			}
			for _, m := range matches {
				add(filepath.Join(arg, filepath.FromSlash(m)))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
