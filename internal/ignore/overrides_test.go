package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceExcludeWinsOverInclude(t *testing.T) {
	o := Compile([]string{"**/*.go", "!**/*_test.go"})
	assert.False(t, o.Excluded("pkg/file.go"))
	assert.True(t, o.Excluded("pkg/file_test.go"))
}

func TestWhitelistNarrowsWhenPresent(t *testing.T) {
	o := Compile([]string{"**/*.rs"})
	assert.False(t, o.Excluded("src/main.rs"))
	assert.True(t, o.Excluded("src/main.go"))
}

func TestNoOverridesExcludesNothing(t *testing.T) {
	o := Compile(nil)
	assert.False(t, o.Excluded("anything/at/all.txt"))
}
