package reconcile

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Resolver turns a source path as written in a source map into an absolute path.
type Resolver func(source string) string

// resolverFor returns the source resolution rule for kind.
//
// lessc writes sources relative to the working directory (or absolute when a
// rootpath is configured); sass writes them relative to the compiled file's
// directory. Both may use file:// URLs.
func resolverFor(kind Kind, entryPath, workDir string) Resolver {
	base := workDir
	if kind == KindSass {
		base = filepath.Dir(entryPath)
	}
	return func(source string) string {
		return absolutePath(base, source)
	}
}

func absolutePath(base, source string) string {
	source = stripFileURL(source)
	if filepath.IsAbs(source) {
		return filepath.Clean(source)
	}
	return filepath.Join(base, filepath.FromSlash(source))
}

func stripFileURL(source string) string {
	if !strings.HasPrefix(source, "file://") {
		return source
	}
	u, err := url.Parse(source)
	if err != nil {
		return strings.TrimPrefix(source, "file://")
	}
	return filepath.FromSlash(u.Path)
}
