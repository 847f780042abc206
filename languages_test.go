package langstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rustFile(name, text string) BufferFileAccess {
	return NewBufferFileAccess(name, []byte(text))
}

func TestGetStatisticsFromAggregatesByLanguage(t *testing.T) {
	files := []FileAccess{
		rustFile("a.rs", "fn main() {}\n"),
		rustFile("b.rs", "// comment\nfn other() {}\n"),
		rustFile("c.go", "package main\n\nfunc main() {}\n"),
	}

	langs := GetStatisticsFrom(files, nil)

	rust, ok := langs.Get("Rust")
	require.True(t, ok)
	assert.Equal(t, 2, len(rust.Children))
	assert.Equal(t, 2, rust.Code)
	assert.Equal(t, 1, rust.Comments)

	goLang, ok := langs.Get("Go")
	require.True(t, ok)
	assert.Equal(t, 1, len(goLang.Children))
}

func TestGetStatisticsFromHonoursAllowList(t *testing.T) {
	files := []FileAccess{
		rustFile("a.rs", "fn main() {}\n"),
		rustFile("c.go", "package main\n"),
	}

	langs := GetStatisticsFrom(files, []LanguageType{"Go"})

	_, ok := langs.Get("Rust")
	assert.False(t, ok)
	_, ok = langs.Get("Go")
	assert.True(t, ok)
}

func TestMergeOnlyAddsExistingKeys(t *testing.T) {
	ls := NewLanguages()
	ls.add("Rust", Stats{Code: 1, Lines: 1})

	other := map[LanguageType]Language{
		"Rust": {Code: 2, Lines: 2},
		"Go":   {Code: 5, Lines: 5},
	}
	ls.Merge(other)

	rust, _ := ls.Get("Rust")
	assert.Equal(t, 3, rust.Code)

	_, ok := ls.Get("Go")
	assert.False(t, ok, "new keys in other must be ignored")
}

func TestRemoveEmptyDropsZeroFileLanguages(t *testing.T) {
	ls := NewLanguages()
	ls.add("Rust", Stats{Code: 1, Lines: 1})
	ls.ensure()
	ls.m["Go"] = Language{}

	nonEmpty := ls.RemoveEmpty()
	assert.Equal(t, 1, nonEmpty.Len())
	_, ok := nonEmpty.Get("Go")
	assert.False(t, ok)
}

func TestReorderingInputDoesNotChangeTotals(t *testing.T) {
	a := []FileAccess{
		rustFile("a.rs", "fn a() {}\n"),
		rustFile("b.rs", "fn b() {}\n// x\n"),
	}
	b := []FileAccess{a[1], a[0]}

	first := GetStatisticsFrom(a, nil)
	second := GetStatisticsFrom(b, nil)

	rust1, _ := first.Get("Rust")
	rust2, _ := second.Get("Rust")
	assert.Equal(t, rust1.Code, rust2.Code)
	assert.Equal(t, rust1.Comments, rust2.Comments)
}
