// Package discover expands command line arguments into the stylesheets to lint.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Extensions that are linted when walking directories
var Extensions = []string{".css", ".less", ".scss"}

// Options controls discovery.
type Options struct {
	// Root is the directory relative paths and patterns are resolved
	// against. Defaults to the working directory.
	Root string

	// Exclude lists files, directories or gitignore-style patterns to drop.
	Exclude []string

	// NoGitignore disables the Root/.gitignore filter.
	NoGitignore bool
}

// Stats tracks what discovery saw.
type Stats struct {
	Discovered int
	Skipped    int
}

// Files expands args (files, directories or doublestar patterns) into
// absolute stylesheet paths, de-duplicated in discovery order.
func Files(args []string, opts Options) ([]string, Stats, error) {
	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, Stats{}, fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}

	f := &finder{
		root:    root,
		exclude: newExcluder(root, opts.Exclude),
		seen:    make(map[string]bool),
	}
	if !opts.NoGitignore {
		f.gitignore = loadGitIgnore(root)
	}

	for _, arg := range args {
		if err := f.add(arg); err != nil {
			return nil, f.stats, err
		}
	}
	return f.files, f.stats, nil
}

type finder struct {
	root      string
	exclude   *excluder
	gitignore *ignore.GitIgnore
	seen      map[string]bool
	files     []string
	stats     Stats
}

func (f *finder) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(f.root, path)
}

func (f *finder) add(arg string) error {
	if hasMeta(arg) {
		return f.addGlob(arg)
	}

	path := f.abs(arg)
	info, err := os.Stat(path)
	if err != nil {
		// Unreadable files are reported per file by the runner.
		f.include(path, true)
		return nil
	}
	if info.IsDir() {
		return f.walk(path)
	}
	f.include(path, true)
	return nil
}

func (f *finder) addGlob(pattern string) error {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(f.root, pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("expanding %q: %w", pattern, err)
	}
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		f.include(match, false)
	}
	return nil
}

func (f *finder) walk(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if f.exclude.matches(path, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if isStylesheet(path) {
			f.include(path, false)
		}
		return nil
	})
}

// include records path unless it was seen or filtered. Explicitly named
// files bypass .gitignore but not --exclude.
func (f *finder) include(path string, explicit bool) {
	path = filepath.Clean(path)
	if f.seen[path] {
		return
	}
	f.seen[path] = true
	f.stats.Discovered++

	if f.exclude.matches(path, false) || (!explicit && f.ignored(path)) {
		f.stats.Skipped++
		return
	}
	f.files = append(f.files, path)
}

func (f *finder) ignored(path string) bool {
	if f.gitignore == nil {
		return false
	}
	rel, err := filepath.Rel(f.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	return f.gitignore.MatchesPath(filepath.ToSlash(rel))
}

// loadGitIgnore returns nil when root has no readable .gitignore.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

func isStylesheet(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
