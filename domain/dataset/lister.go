package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ListImages returns the names of the immediate children of dir that are regular files,
// or symlinks to regular files, with one of exts compared case-insensitively. exts must
// be lower case with a leading dot. Names are in lexicographic order, as returned by
// os.ReadDir.
func ListImages(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read directory %q", dir)
	}
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(e)] = true
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !allowed[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		mode := e.Type()
		if mode&os.ModeSymlink != 0 {
			target, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil {
				continue // dangling
			}
			mode = target.Mode()
		}
		if !mode.IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// BaseNoExt returns the file name of path without directory and extension.
func BaseNoExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
