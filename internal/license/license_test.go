package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOnEmptyDirectoryReturnsNoMatches(t *testing.T) {
	assert.Empty(t, Detect(t.TempDir()))
}

func TestDetectOnMissingDirectoryDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Detect("/this/path/does/not/exist")
	})
}
