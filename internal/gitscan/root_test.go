package gitscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFindsWorktreeFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	sub := filepath.Join(dir, "pkg", "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	root, ok := Root(sub)
	require.True(t, ok)
	assert.Equal(t, dir, root)
}

func TestRootFalseOutsideRepository(t *testing.T) {
	_, ok := Root(t.TempDir())
	assert.False(t, ok)
}

func TestInfoExcludePatternsReadsFile(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	exclude := filepath.Join(dir, ".git", "info", "exclude")
	require.NoError(t, os.MkdirAll(filepath.Dir(exclude), 0o755))
	require.NoError(t, os.WriteFile(exclude, []byte("# comment\n*.tmp\n"), 0o644))

	patterns := InfoExcludePatterns(dir)
	require.Len(t, patterns, 1)
}
