package customlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/langstat/internal/langtable"
)

func TestLoadRegistersLanguageBlock(t *testing.T) {
	src := `
language "Zarf" {
  extensions            = ["zarf"]
  line_comments         = ["%%"]
  block_comment_opens   = ["{%"]
  block_comment_closes  = ["%}"]
  quote_opens           = ["\""]
  quote_closes          = ["\""]
  allows_nested         = true
}
`
	require.NoError(t, Load("test.hcl", []byte(src)))

	attrs, ok := langtable.Lookup("Zarf")
	require.True(t, ok)
	assert.Contains(t, attrs.LineComments(), "%%")
	assert.Contains(t, attrs.MultiLineComments(), [2]string{"{%", "%}"})
	assert.True(t, attrs.AllowsNested)

	tag, ok := langtable.ByExtension("zarf")
	require.True(t, ok)
	assert.Equal(t, "Zarf", tag)
}

func TestLoadFileIgnoresMissingFile(t *testing.T) {
	assert.NoError(t, LoadFile("/nonexistent/path/.langstat.hcl"))
}

func TestZipPairsRejectsMismatchedLengths(t *testing.T) {
	_, err := zipPairs("quote", []string{"\""}, nil)
	assert.Error(t, err)
}
