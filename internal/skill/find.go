package skill

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/skillmeta/internal/errors"
)

// FindDirs walks root and returns every directory below it that directly
// contains a SKILL.md file. The root itself is never included, even when it
// holds a SKILL.md. Directories are sorted by their own name, not their full
// path; directories sharing a name keep walk order.
//
// Any error reading root or one of its subdirectories is returned.
func FindDirs(root string) ([]string, error) {
	root = filepath.Clean(root)

	seen := make(map[string]struct{})
	var dirs []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root && !d.IsDir() {
			return errors.Newf("%s is not a directory", root)
		}
		if d.IsDir() || d.Name() != FileName {
			return nil
		}

		dir := filepath.Dir(path)
		if dir == root {
			return nil
		}
		if _, ok := seen[dir]; ok {
			return nil
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "finding skills under %s", root)
	}

	slices.SortStableFunc(dirs, func(a, b string) int {
		return strings.Compare(filepath.Base(a), filepath.Base(b))
	})

	return dirs, nil
}

// FilePath returns the path of the SKILL.md file in dir.
func FilePath(dir string) string {
	return filepath.Join(dir, FileName)
}
