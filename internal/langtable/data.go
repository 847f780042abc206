package langtable

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml languages.schema.json
var schemaFS embed.FS

type pair [2]string

type baseDoc struct {
	LineComments      []string `yaml:"line_comments"`
	MultiLineComments []pair   `yaml:"multi_line_comments"`
	Quotes            []pair   `yaml:"quotes"`
	AllowsNested      bool     `yaml:"allows_nested"`
}

type languageDoc struct {
	Name              string   `yaml:"name"`
	Base              string   `yaml:"base"`
	Filenames         []string `yaml:"filenames"`
	Extensions        []string `yaml:"extensions"`
	Env               []string `yaml:"env"`
	LineComments      []string `yaml:"line_comments"`
	MultiLineComments []pair   `yaml:"multi_line_comments"`
	NestedComments    []pair   `yaml:"nested_comments"`
	Quotes            []pair   `yaml:"quotes"`
	AllowsNested      *bool    `yaml:"allows_nested"`
	IsBlank           bool     `yaml:"is_blank"`
	IsFortran         bool     `yaml:"is_fortran"`
}

type tableDoc struct {
	Bases     map[string]baseDoc     `yaml:"bases"`
	Languages map[string]languageDoc `yaml:"languages"`
}

// loadDoc reads, schema-validates and decodes the embedded language
// table. It is called exactly once, from init().
func loadDoc() (tableDoc, error) {
	content, err := schemaFS.ReadFile("languages.yaml")
	if err != nil {
		return tableDoc{}, fmt.Errorf("reading languages.yaml: %w", err)
	}

	if err := validateYAML("languages.yaml", content); err != nil {
		return tableDoc{}, err
	}

	var doc tableDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return tableDoc{}, fmt.Errorf("decoding languages.yaml: %w", err)
	}

	return doc, nil
}

// resolve flattens a languageDoc against its base (if any) into a
// concrete Attrs value, the runtime equivalent of the per-language
// accessor functions language_type.hbs.rs generates at build time.
func resolve(key string, l languageDoc, bases map[string]baseDoc) (Attrs, error) {
	a := Attrs{
		Name:      l.Name,
		IsBlank:   l.IsBlank,
		IsFortran: l.IsFortran,
	}

	if l.Base != "" {
		base, ok := bases[l.Base]
		if !ok {
			return Attrs{}, fmt.Errorf("language %q refers to unknown base %q", key, l.Base)
		}
		a.lineComments = base.LineComments
		a.multiLineComments = pairsToTuples(base.MultiLineComments)
		a.quotes = pairsToTuples(base.Quotes)
		a.AllowsNested = base.AllowsNested
	}

	if l.LineComments != nil {
		a.lineComments = l.LineComments
	}
	if l.MultiLineComments != nil {
		a.multiLineComments = pairsToTuples(l.MultiLineComments)
	}
	if l.Quotes != nil {
		a.quotes = pairsToTuples(l.Quotes)
	}
	if l.AllowsNested != nil {
		a.AllowsNested = *l.AllowsNested
	}
	a.nestedComments = pairsToTuples(l.NestedComments)

	a.filenames = foldSet(l.Filenames)
	a.extensions = foldSet(l.Extensions)
	a.env = foldSet(l.Env)

	if a.IsBlank {
		a.lineComments = nil
		a.multiLineComments = nil
		a.nestedComments = nil
		a.quotes = nil
	}

	return a, nil
}

func pairsToTuples(ps []pair) [][2]string {
	if ps == nil {
		return nil
	}
	out := make([][2]string, len(ps))
	for i, p := range ps {
		out[i] = [2]string{p[0], p[1]}
	}
	return out
}

func foldSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[strings.ToLower(item)] = struct{}{}
	}
	return out
}
