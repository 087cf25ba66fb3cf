package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Finder turns file, directory and glob arguments into absolute source paths.
type Finder struct {
	walker *Walker
}

// NewFinder creates a Finder backed by walker.
func NewFinder(walker *Walker) *Finder {
	return &Finder{walker: walker}
}

// Expand resolves args relative to dir.
//
// Plain files are returned as given, even when their extension is not in exts,
// so an unsupported file still reaches the compiler registry and fails there.
// Directories are walked and glob patterns are matched; both keep only files
// ending in one of exts. Results keep argument order and contain no duplicates.
func (f *Finder) Expand(dir string, args, exts []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		abs, err := absolute(dir, arg)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "file", arg)
		}

		info, statErr := os.Stat(abs)
		switch {
		case statErr == nil && info.IsDir():
			found := slices.Collect(f.walker.WalkFiles(abs, exts))
			if len(found) == 0 {
				return nil, zerr.With(domain.ErrNoMatchingFiles, "dir", arg)
			}
			slices.Sort(found)
			for _, p := range found {
				add(p)
			}
		case statErr == nil:
			add(abs)
		case !isPattern(arg):
			return nil, zerr.With(zerr.Wrap(statErr, domain.ErrSourceReadFailed.Error()), "file", arg)
		default:
			matches, err := glob(abs, exts)
			if err != nil {
				return nil, zerr.With(err, "pattern", arg)
			}
			if len(matches) == 0 {
				return nil, zerr.With(domain.ErrNoMatchingFiles, "pattern", arg)
			}
			for _, p := range matches {
				add(p)
			}
		}
	}
	return paths, nil
}

func glob(pattern string, exts []string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidPattern.Error())
	}
	matches = slices.DeleteFunc(matches, func(p string) bool {
		return !hasExtension(p, exts) || inSkippedDir(p)
	})
	slices.Sort(matches)
	return matches, nil
}

func absolute(dir, p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return filepath.Abs(p)
}

func isPattern(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

func inSkippedDir(p string) bool {
	for dir := filepath.Dir(p); dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
		if slices.Contains(skippedDirs, filepath.Base(dir)) {
			return true
		}
	}
	return false
}
