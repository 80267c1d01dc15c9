// Package fsutil provides small file system helpers for patch loading.
package fsutil

import (
	"io/fs"
	"path/filepath"
)

// FindByExtension walks root and returns every file whose extension matches
// ext (including the dot). WalkDir visits entries in lexical order, so the
// result is stable across runs, which keeps multi-file patch merges
// deterministic.
func FindByExtension(root, ext string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
