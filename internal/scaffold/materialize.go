package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Materialize writes files under baseDir, creating the directory first.
// A pre-existing directory is fine; existing files are overwritten. Writes
// happen in sorted path order and are not transactional — a failure leaves
// earlier files in place and surfaces the underlying error.
func Materialize(baseDir string, files map[string]string) error {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", baseDir, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		target := filepath.Join(baseDir, name)
		if err := os.WriteFile(target, []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}
	return nil
}
