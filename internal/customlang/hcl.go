// Package customlang lets a project declare extra languages in a
// `.langstat.hcl` file's `language` blocks, merged into
// internal/langtable's registry once at startup.
package customlang

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/halcyon-labs/langstat/internal/langtable"
)

var blockSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "language", LabelNames: []string{"name"}},
	},
}

// LoadFile reads path and registers every `language` block it
// declares. A missing file is not an error — the feature is opt-in.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("customlang: reading %s: %w", path, err)
	}
	return Load(path, data)
}

// Load parses data as HCL under the given filename (used only for
// diagnostics) and registers every declared language.
func Load(filename string, data []byte) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return fmt.Errorf("customlang: parsing %s: %s", filename, diags.Error())
	}

	content, diags := file.Body.Content(blockSchema)
	if diags.HasErrors() {
		return fmt.Errorf("customlang: %s: %s", filename, diags.Error())
	}

	for _, block := range content.Blocks {
		tag := block.Labels[0]
		attrs, err := decodeLanguageBlock(tag, block)
		if err != nil {
			return fmt.Errorf("customlang: language %q: %w", tag, err)
		}
		if err := langtable.Register(tag, attrs); err != nil {
			return fmt.Errorf("customlang: registering %q: %w", tag, err)
		}
	}
	return nil
}

// attrNames lists the recognized attributes of a `language` block.
// Comment/quote pairs are declared as parallel open/close lists rather
// than nested lists-of-pairs, since HCL's attribute values decode far
// more directly into flat string lists via gocty.
var attrNames = []string{
	"extensions", "filenames", "env",
	"line_comments",
	"block_comment_opens", "block_comment_closes",
	"nested_comment_opens", "nested_comment_closes",
	"quote_opens", "quote_closes",
	"allows_nested",
}

func decodeLanguageBlock(tag string, block *hcl.Block) (langtable.Attrs, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return langtable.Attrs{}, fmt.Errorf("%s", diags.Error())
	}

	values := map[string][]string{}
	for _, name := range attrNames {
		if name == "allows_nested" {
			continue
		}
		attr, ok := attrs[name]
		if !ok {
			continue
		}
		list, err := decodeStringList(attr)
		if err != nil {
			return langtable.Attrs{}, fmt.Errorf("%s: %w", name, err)
		}
		values[name] = list
	}

	allowsNested := false
	if attr, ok := attrs["allows_nested"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return langtable.Attrs{}, fmt.Errorf("allows_nested: %s", diags.Error())
		}
		if err := gocty.FromCtyValue(val, &allowsNested); err != nil {
			return langtable.Attrs{}, fmt.Errorf("allows_nested: %w", err)
		}
	}

	blockComments, err := zipPairs("block_comment", values["block_comment_opens"], values["block_comment_closes"])
	if err != nil {
		return langtable.Attrs{}, err
	}
	nestedComments, err := zipPairs("nested_comment", values["nested_comment_opens"], values["nested_comment_closes"])
	if err != nil {
		return langtable.Attrs{}, err
	}
	quotes, err := zipPairs("quote", values["quote_opens"], values["quote_closes"])
	if err != nil {
		return langtable.Attrs{}, err
	}

	return langtable.NewAttrs(
		tag,
		values["filenames"],
		values["extensions"],
		values["env"],
		values["line_comments"],
		blockComments,
		nestedComments,
		quotes,
		allowsNested,
	), nil
}

func decodeStringList(attr *hcl.Attribute) ([]string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s", diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return nil, fmt.Errorf("expected a string or list of strings")
		}
		return []string{s}, nil
	}

	var out []string
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		var s string
		if err := gocty.FromCtyValue(elem, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func zipPairs(label string, opens, closes []string) ([][2]string, error) {
	if len(opens) != len(closes) {
		return nil, fmt.Errorf("%s_opens and %s_closes must have the same length", label, label)
	}
	if len(opens) == 0 {
		return nil, nil
	}
	out := make([][2]string, len(opens))
	for i := range opens {
		out[i] = [2]string{opens[i], closes[i]}
	}
	return out, nil
}
