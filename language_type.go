package langstat

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/halcyon-labs/langstat/internal/binutil"
	"github.com/halcyon-labs/langstat/internal/contentsniff"
	"github.com/halcyon-labs/langstat/internal/langtable"
)

// LanguageType is an enumerated tag identifying one of the languages
// registered in internal/langtable (C1). Its zero value is not a valid
// language; construct one via ParseLanguageType, FromPath, or FromFileAccess.
// Grounded on original_source/src/language/language_type.rs's
// generated LanguageType enum, reimplemented here as a thin string
// wrapper over the runtime table rather than a compile-time enum,
// since the table itself is resolved at init() (see internal/langtable).
type LanguageType string

// ParseLanguageType looks up a LanguageType by its exact, case-sensitive
// display name (e.g. "C++", "C#", "Plain Text"), which for some
// languages differs from the internal tag String() no longer exposes.
func ParseLanguageType(name string) (LanguageType, error) {
	if tag, ok := langtable.ByName(name); ok {
		return LanguageType(tag), nil
	}
	return "", fmt.Errorf("langstat: unknown language %q; run the list command to see supported languages", name)
}

// String implements fmt.Stringer, returning the language's display
// name (Attrs.Name), which for some languages differs from the
// internal tag underlying the LanguageType value itself.
func (t LanguageType) String() string { return t.Name() }

func (t LanguageType) attrs() langtable.Attrs {
	attrs, ok := langtable.Lookup(string(t))
	if !ok {
		// Can only happen if a caller manufactured a LanguageType value
		// directly instead of going through ParseLanguageType/FromPath; every tag
		// produced by this package is always registered.
		return langtable.Attrs{}
	}
	return attrs
}

// Name returns the language's canonical display name.
func (t LanguageType) Name() string { return t.attrs().Name }

// LineComments returns the language's line-comment openers.
func (t LanguageType) LineComments() []string { return t.attrs().LineComments() }

// MultiLineComments returns the language's block-comment open/close pairs.
func (t LanguageType) MultiLineComments() [][2]string { return t.attrs().MultiLineComments() }

// NestedComments returns block-comment pairs that are always allowed
// to nest regardless of AllowsNested.
func (t LanguageType) NestedComments() [][2]string { return t.attrs().NestedComments() }

// Quotes returns the language's string-quote open/close pairs.
func (t LanguageType) Quotes() [][2]string { return t.attrs().Quotes() }

// AllowsNested reports whether the language's ordinary block comments
// may nest.
func (t LanguageType) AllowsNested() bool { return t.attrs().AllowsNested }

// IsBlank reports whether the language has no comment syntax at all,
// so every physical line, empty ones included, is counted as code
// (e.g. plain text, Markdown, CSV).
func (t LanguageType) IsBlank() bool { return t.attrs().IsBlank }

// IsFortran reports whether the language's comment markers are
// column-sensitive, suppressing the usual leading-whitespace trim.
func (t LanguageType) IsFortran() bool { return t.attrs().IsFortran }

// List returns every registered language tag, sorted.
func List() []LanguageType {
	tags := langtable.Tags()
	out := make([]LanguageType, len(tags))
	for i, tag := range tags {
		out[i] = LanguageType(tag)
	}
	return out
}

var warnOnce sync.Map // ext or env token (string) -> struct{}{}, for "warn once per unique extension"

func warnUnknownOnce(key string, msg string, args ...any) {
	if _, loaded := warnOnce.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	slog.Warn(msg, args...)
}

// FromPath identifies the language of a filesystem path without
// opening it, using only filename and extension. It never attempts
// shebang inference, since that requires reading file content.
func FromPath(path string) (LanguageType, bool) {
	return identify(NewPathFileAccess(path), nil)
}

// FromFileAccess runs the full C3 identification chain: filename,
// extension, and (if neither matches) shebang inference read from the
// handle's first line.
func FromFileAccess(f FileAccess) (LanguageType, bool) {
	return identify(f, f)
}

// identify resolves a language by filename, then extension, then (if
// opener is non-nil) a shebang-inferred surrogate extension. opener may
// be nil, in which case shebang inference is skipped (used by FromPath,
// which has no content to read).
func identify(f FileAccess, opener FileAccess) (LanguageType, bool) {
	if name, ok := fileName(f); ok {
		if tag, ok := langtable.ByFilename(name); ok {
			return LanguageType(tag), true
		}
	}

	ext, ok := extension(f)
	if !ok && opener != nil {
		if surrogate, found := shebangExtension(opener); found {
			ext = surrogate
			ok = true
		}
	}
	if !ok {
		return "", false
	}

	if tag, ok := langtable.ByExtension(ext); ok {
		return LanguageType(tag), true
	}

	warnUnknownOnce("ext:"+ext, "langstat: unknown file extension", "extension", ext)
	return "", false
}

// shebangExtension reads the file's first physical line and, if it is
// an interpreter directive, returns a surrogate extension string
// standing in for the interpreter.
func shebangExtension(f FileAccess) (string, bool) {
	r, err := f.Open()
	if err != nil {
		return "", false
	}
	defer r.Close()

	line, err := firstLine(r)
	if err != nil || line == "" {
		return "", false
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "#!/bin/sh":
		return "sh", true
	case "#!/bin/csh":
		return "csh", true
	case "#!/usr/bin/perl":
		return "pl", true
	case "#!/usr/bin/env":
		if len(fields) < 2 {
			return "", false
		}
		token := fields[1]
		if tag, ok := langtable.ByEnvToken(token); ok {
			if exts := primaryExtension(tag); exts != "" {
				return exts, true
			}
		}
		warnUnknownOnce("env:"+token, "langstat: unknown shebang interpreter", "interpreter", token)
		return "", false
	default:
		return "", false
	}
}

// primaryExtension returns an extension that resolves back to tag, for
// use as a shebang-inferred surrogate extension. Any registered
// extension works, since surrogate extensions are only ever fed back
// into ByExtension.
func primaryExtension(tag string) string {
	exts := langtable.ExtensionsFor(tag)
	if len(exts) == 0 {
		return ""
	}
	return exts[0]
}

func firstLine(r io.Reader) (string, error) {
	br := bufio.NewReaderSize(r, 256)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseFromStr classifies text under language tag, bypassing
// identification and binary detection entirely — the in-memory entry
// point for callers that already know the language.
func ParseFromStr(name string, language LanguageType, text string) Stats {
	counter := newSyntaxCounter(language)
	return counter.count(name, text)
}

// ParseFromBytes decodes bytes and classifies them under language,
// rejecting binary input with an error.
func ParseFromBytes(name string, language LanguageType, data []byte) (Stats, error) {
	if binutil.IsBinary(data) {
		return Stats{}, fmt.Errorf("langstat: %s: binary file", name)
	}
	text, err := binutil.Decode(data)
	if err != nil {
		return Stats{}, fmt.Errorf("langstat: %s: decode: %w", name, err)
	}
	return ParseFromStr(name, language, text), nil
}

// ParseResult is the end-to-end per-file outcome of Parse: the
// identified language paired with its computed Stats.
type ParseResult struct {
	Language LanguageType
	Stats    Stats
}

// parseOptions holds Parse's opt-in behaviors.
type parseOptions struct {
	contentSniff bool
}

// ParseOption adjusts Parse's identification behavior.
type ParseOption func(*parseOptions)

// WithContentSniff enables a best-effort content-based language guess
// (internal/contentsniff) as a last resort when filename, extension,
// and shebang inference all fail to identify a file.
func WithContentSniff() ParseOption {
	return func(o *parseOptions) { o.contentSniff = true }
}

// Parse runs identification, binary detection, decoding, and
// classification over f in one call — the full filename/extension/
// shebang identification, binary sniff, decode, and line-classify
// pipeline for a single file. If allow is non-nil, the file is skipped
// (ok == false) unless the identified language's tag is present in
// allow.
func Parse(f FileAccess, allow map[LanguageType]struct{}, opts ...ParseOption) (ParseResult, bool) {
	var cfg parseOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	language, ok := FromFileAccess(f)
	if !ok && cfg.contentSniff {
		language, ok = guessFromContent(f)
	}
	if !ok {
		return ParseResult{}, false
	}
	if allow != nil {
		if _, permitted := allow[language]; !permitted {
			return ParseResult{}, false
		}
	}

	r, err := f.Open()
	if err != nil {
		slog.Error("langstat: open failed", "file", f.Name(), "error", err)
		return ParseResult{}, false
	}
	defer r.Close()

	prefix := make([]byte, binutil.SniffSize)
	n, _ := io.ReadFull(r, prefix)
	prefix = prefix[:n]

	if binutil.IsBinary(prefix) {
		return ParseResult{}, false
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		slog.Error("langstat: read failed", "file", f.Name(), "error", err)
		return ParseResult{}, false
	}

	data := append(prefix, rest...)
	text, err := binutil.Decode(data)
	if err != nil {
		slog.Error("langstat: decode failed", "file", f.Name(), "error", err)
		return ParseResult{}, false
	}

	stats := ParseFromStr(f.Name(), language, text)
	return ParseResult{Language: language, Stats: stats}, true
}

// guessFromContent is Parse's content-sniff fallback: it reads the
// file's leading bytes and asks internal/contentsniff for a best-guess
// language name, translating it into a registered LanguageType.
func guessFromContent(f FileAccess) (LanguageType, bool) {
	r, err := f.Open()
	if err != nil {
		return "", false
	}
	defer r.Close()

	prefix := make([]byte, binutil.SniffSize)
	n, _ := io.ReadFull(r, prefix)
	prefix = prefix[:n]

	name, ok := contentsniff.Guess(f.Name(), prefix)
	if !ok {
		return "", false
	}
	tag, err := ParseLanguageType(name)
	if err != nil {
		return "", false
	}
	return tag, true
}

// isAllWhitespace reports whether s is empty or contains only ASCII
// whitespace.
func isAllWhitespace(s string) bool {
	return len(bytes.TrimSpace([]byte(s))) == 0
}
