package discover

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// excluder drops existing files and directory trees named in --exclude, and
// matches the remaining entries as gitignore patterns relative to root.
type excluder struct {
	root     string
	paths    []string
	patterns *ignore.GitIgnore
}

func newExcluder(root string, entries []string) *excluder {
	e := &excluder{root: root}

	var lines []string
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			abs := part
			if !filepath.IsAbs(abs) {
				abs = filepath.Join(root, part)
			}
			if _, err := os.Stat(abs); err == nil {
				e.paths = append(e.paths, filepath.Clean(abs))
				continue
			}
			lines = append(lines, filepath.ToSlash(part))
		}
	}
	if len(lines) > 0 {
		e.patterns = ignore.CompileIgnoreLines(lines...)
	}
	return e
}

func (e *excluder) matches(path string, isDir bool) bool {
	for _, p := range e.paths {
		if path == p || strings.HasPrefix(path, p+string(filepath.Separator)) {
			return true
		}
	}

	if e.patterns == nil {
		return false
	}
	rel, err := filepath.Rel(e.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	return e.patterns.MatchesPath(rel)
}
