package langstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPathPrefersFilenameOverExtension(t *testing.T) {
	tag, ok := FromPath("/project/Makefile.rs")
	require.True(t, ok)
	assert.Equal(t, LanguageType("Makefile"), tag)
}

func TestFromPathIsCaseInsensitiveOnExtension(t *testing.T) {
	tag, ok := FromPath("/project/main.RS")
	require.True(t, ok)
	assert.Equal(t, LanguageType("Rust"), tag)
}

func TestShebangInferenceResolvesEnvInterpreter(t *testing.T) {
	f := NewBufferFileAccess("script", []byte("#!/usr/bin/env python3\nprint(1)\n"))
	tag, ok := FromFileAccess(f)
	require.True(t, ok)
	assert.Equal(t, LanguageType("Python"), tag)
}

func TestIdentificationIsIdempotent(t *testing.T) {
	f := NewBufferFileAccess("main.rs", []byte("fn main() {}\n"))
	first, ok1 := FromFileAccess(f)
	second, ok2 := FromFileAccess(f)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestParseLanguageTypeRoundTrips(t *testing.T) {
	for _, tag := range List() {
		got, err := ParseLanguageType(tag.Name())
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}
}

func TestParseFromBytesRejectsBinary(t *testing.T) {
	rust, err := ParseLanguageType("Rust")
	require.NoError(t, err)

	_, err = ParseFromBytes("blob", rust, []byte{0x00, 0x01, 0x02, 0x03, 0x00})
	assert.Error(t, err)
}

func TestParseEndToEndOnShebangScript(t *testing.T) {
	f := NewBufferFileAccess("script", []byte("#!/usr/bin/env python3\nprint(1)\n"))
	result, ok := Parse(f, nil)
	require.True(t, ok)
	assert.Equal(t, LanguageType("Python"), result.Language)
	assert.Equal(t, 2, result.Stats.Lines)
	assert.Equal(t, 1, result.Stats.Comments)
	assert.Equal(t, 1, result.Stats.Code)
}

func TestParseWithoutContentSniffFailsOnUnknownName(t *testing.T) {
	f := NewBufferFileAccess("mystery", []byte("package main\n\nfunc main() {}\n"))
	_, ok := Parse(f, nil)
	assert.False(t, ok)
}

func TestParseWithContentSniffIdentifiesUnknownName(t *testing.T) {
	f := NewBufferFileAccess("mystery", []byte("package main\n\nfunc main() {}\n"))
	result, ok := Parse(f, nil, WithContentSniff())
	require.True(t, ok)
	assert.Equal(t, LanguageType("Go"), result.Language)
}

func TestParseWithContentSniffStillHonoursAllowList(t *testing.T) {
	f := NewBufferFileAccess("mystery", []byte("package main\n\nfunc main() {}\n"))
	allow := allowSet([]LanguageType{"Python"})
	_, ok := Parse(f, allow, WithContentSniff())
	assert.False(t, ok)
}
