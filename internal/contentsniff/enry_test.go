package contentsniff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessIdentifiesGoFromContent(t *testing.T) {
	src := []byte("package main\n\nfunc main() {}\n")
	lang, ok := Guess("unnamed", src)
	assert.True(t, ok)
	assert.Equal(t, "Go", lang)
}

func TestGuessRejectsBinary(t *testing.T) {
	_, ok := Guess("unnamed", []byte{0x00, 0x01, 0x02, 0x03})
	assert.False(t, ok)
}
