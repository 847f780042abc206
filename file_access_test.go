package langstat

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFileAccessExtensionAndName(t *testing.T) {
	p := NewPathFileAccess("/src/main.RS")
	name, ok := p.FileName()
	require.True(t, ok)
	assert.Equal(t, "main.rs", name)

	ext, ok := p.Extension()
	require.True(t, ok)
	assert.Equal(t, "rs", ext)
}

func TestBufferFileAccessFallsBackToNameSplitting(t *testing.T) {
	b := NewBufferFileAccess("dir/Main.GO", []byte("package main\n"))
	ext, ok := extension(b)
	require.True(t, ok)
	assert.Equal(t, "go", ext)
}

func TestRenameFileAccessOverridesNameOnly(t *testing.T) {
	inner := NewBufferFileAccess("original.rs", []byte("fn main() {}\n"))
	renamed := WithName(inner, "renamed.rs")

	assert.Equal(t, "renamed.rs", renamed.Name())

	r, err := renamed.Open()
	require.NoError(t, err)
	defer r.Close()
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(content))
}
