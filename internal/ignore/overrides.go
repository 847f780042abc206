// Package ignore implements the explicit pattern list a caller passes
// to GetStatistics, layered on top of whatever ignore-file semantics
// the directory walker itself already applies.
//
// Override polarity matches the ignore-pattern override convention
// tokei's CLI relies on (its `--exclude` flag, built on the `ignore`
// crate's OverrideBuilder): an unprefixed pattern narrows the walk to
// paths matching at least one such pattern, while a `!`-prefixed
// pattern force-excludes regardless of any whitelist.
package ignore

import "github.com/bmatcuk/doublestar/v4"

// Overrides is a compiled, stack-ordered set of caller-supplied ignore
// patterns, giving whitelist patterns and `!`-prefixed force-exclude
// patterns their own sets.
type Overrides struct {
	includes []string
	excludes []string
}

// Compile splits raw patterns into the include/exclude sets. Patterns
// beginning with "!" are force-exclude; all others narrow the walk to
// matching paths.
func Compile(patterns []string) Overrides {
	var o Overrides
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if p[0] == '!' {
			o.excludes = append(o.excludes, p[1:])
		} else {
			o.includes = append(o.includes, p)
		}
	}
	return o
}

// Excluded reports whether relPath should be skipped given the
// override set. A force-exclude match always wins; otherwise, if any
// include patterns were supplied, relPath must match at least one.
func (o Overrides) Excluded(relPath string) bool {
	for _, pattern := range o.excludes {
		if matches(pattern, relPath) {
			return true
		}
	}
	if len(o.includes) == 0 {
		return false
	}
	for _, pattern := range o.includes {
		if matches(pattern, relPath) {
			return false
		}
	}
	return true
}

func matches(pattern, relPath string) bool {
	if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
		return true
	}
	base := relPath
	for i := len(relPath) - 1; i >= 0; i-- {
		if relPath[i] == '/' {
			base = relPath[i+1:]
			break
		}
	}
	ok, err := doublestar.Match(pattern, base)
	return err == nil && ok
}
