package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (relative paths) under a fresh temp dir.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("a { color: red; }\n"), 0o644))
	}
	return root
}

func rel(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, len(files))
	for i, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(r)
	}
	return out
}

func TestFiles_WalkDirectory(t *testing.T) {
	root := makeTree(t,
		"a.css", "b.less", "c.scss", "notes.txt", ".hidden.css",
		".git/x.css", "sub/d.less", "build/f.css",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("build/\n"), 0o644))

	files, stats, err := Files([]string{"."}, Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.css", "b.less", "c.scss", "sub/d.less"}, rel(t, root, files))
	assert.Equal(t, 5, stats.Discovered)
	assert.Equal(t, 1, stats.Skipped)
	for _, f := range files {
		assert.True(t, filepath.IsAbs(f))
	}
}

func TestFiles_NoGitignore(t *testing.T) {
	root := makeTree(t, "build/f.css")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("build/\n"), 0o644))

	files, _, err := Files([]string{"."}, Options{Root: root, NoGitignore: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"build/f.css"}, rel(t, root, files))
}

func TestFiles_Exclude(t *testing.T) {
	root := makeTree(t, "a.css", "c.scss", "vendor/e.css", "sub/d.less")

	files, _, err := Files([]string{"."}, Options{
		Root:    root,
		Exclude: []string{"vendor", "*.scss"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.css", "sub/d.less"}, rel(t, root, files))
}

func TestFiles_ExcludeCommaList(t *testing.T) {
	root := makeTree(t, "a.css", "b.css", "c.css")

	files, _, err := Files([]string{"."}, Options{Root: root, Exclude: []string{"a.css,c.css"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.css"}, rel(t, root, files))
}

func TestFiles_ExplicitGlobAndDedup(t *testing.T) {
	root := makeTree(t, "a.css", "b.less", "sub/d.less")

	files, _, err := Files([]string{"a.css", "**/*.less", "a.css"}, Options{Root: root})
	require.NoError(t, err)

	got := rel(t, root, files)
	require.Len(t, got, 3)
	assert.Equal(t, "a.css", got[0])
	assert.ElementsMatch(t, []string{"b.less", "sub/d.less"}, got[1:])
}

func TestFiles_ExplicitFileBypassesGitignore(t *testing.T) {
	root := makeTree(t, "build/f.css")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("build/\n"), 0o644))

	files, _, err := Files([]string{"build/f.css"}, Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"build/f.css"}, rel(t, root, files))
}

func TestFiles_MissingFileIsKept(t *testing.T) {
	root := t.TempDir()

	files, _, err := Files([]string{"missing.css"}, Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "missing.css")}, files)
}
