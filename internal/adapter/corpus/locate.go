package corpus

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotFound is returned by Locate when no file matches.
var ErrNotFound = errors.New("corpus asset not found")

// Locate walks root for files matching includes and not excludes, and
// returns the most recently modified match. Patterns are doublestar globs
// relative to root.
func Locate(root string, includes, excludes []string) (string, error) {
	if len(includes) == 0 {
		includes = []string{"**/*.json"}
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	type candidate struct {
		path    string
		modTime int64
	}
	var found []candidate

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && matchAny(excludes, relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(includes, relPath) && !matchAny(excludes, relPath) {
			info, err := d.Info()
			if err != nil {
				return err
			}
			found = append(found, candidate{path: path, modTime: info.ModTime().UnixNano()})
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", ErrNotFound
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].modTime != found[j].modTime {
			return found[i].modTime > found[j].modTime
		}
		return found[i].path < found[j].path
	})
	return found[0].path, nil
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
