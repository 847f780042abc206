package langstat

import (
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/halcyon-labs/langstat/internal/fswalk"
	"github.com/halcyon-labs/langstat/internal/ignore"
	"github.com/halcyon-labs/langstat/internal/progress"
)

// Languages is the per-language aggregate produced by GetStatistics
// and GetStatisticsFrom: a map from LanguageType to its accumulated
// Language, iterated in sorted key order. Grounded on
// original_source/src/language/languages.rs's BTreeMap-backed
// Languages wrapper, including its documented Merge asymmetry.
type Languages struct {
	m map[LanguageType]Language
}

// NewLanguages returns an empty Languages aggregate.
func NewLanguages() Languages {
	return Languages{m: map[LanguageType]Language{}}
}

func (ls *Languages) ensure() {
	if ls.m == nil {
		ls.m = map[LanguageType]Language{}
	}
}

// Get returns the accumulated Language for t, if any files were
// attributed to it.
func (ls Languages) Get(t LanguageType) (Language, bool) {
	lang, ok := ls.m[t]
	return lang, ok
}

func (ls *Languages) add(t LanguageType, s Stats) {
	ls.ensure()
	lang := ls.m[t]
	lang.add(s)
	ls.m[t] = lang
}

// LanguagePair is one (LanguageType, Language) entry of a sorted
// Languages snapshot.
type LanguagePair struct {
	Type     LanguageType
	Language Language
}

// Keys returns every populated LanguageType, sorted.
func (ls Languages) Keys() []LanguageType {
	keys := make([]LanguageType, 0, len(ls.m))
	for k := range ls.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Sorted returns every entry as (type, language) pairs in key order,
// read-only.
func (ls Languages) Sorted() []LanguagePair {
	keys := ls.Keys()
	out := make([]LanguagePair, len(keys))
	for i, k := range keys {
		out[i] = LanguagePair{Type: k, Language: ls.m[k]}
	}
	return out
}

// Range calls fn for every entry in key order, stopping early if fn
// returns false.
func (ls Languages) Range(fn func(LanguageType, Language) bool) {
	for _, p := range ls.Sorted() {
		if !fn(p.Type, p.Language) {
			return
		}
	}
}

// RangeMut calls fn with a pointer to each entry's Language in key
// order, writing any mutation back.
func (ls *Languages) RangeMut(fn func(LanguageType, *Language)) {
	for _, t := range ls.Keys() {
		lang := ls.m[t]
		fn(t, &lang)
		ls.m[t] = lang
	}
}

// Len reports how many language entries are populated, empty or not.
func (ls Languages) Len() int { return len(ls.m) }

// RemoveEmpty returns a new Languages view restricted to languages
// with at least one file.
func (ls Languages) RemoveEmpty() Languages {
	out := NewLanguages()
	for t, lang := range ls.m {
		if !lang.IsEmpty() {
			out.m[t] = lang
		}
	}
	return out
}

// Merge adds other's totals into ls for keys already present in ls;
// keys present only in other are ignored.
func (ls *Languages) Merge(other map[LanguageType]Language) {
	ls.ensure()
	for t, lang := range ls.m {
		if add, ok := other[t]; ok {
			lang.Merge(add)
			ls.m[t] = lang
		}
	}
}

// MarshalYAML serializes the non-empty view as a map keyed by
// language display name.
func (ls Languages) MarshalYAML() (interface{}, error) {
	out := map[string]Language{}
	for t, lang := range ls.RemoveEmpty().m {
		out[t.String()] = lang
	}
	return out, nil
}

// UnmarshalYAML populates ls from a map keyed by language display
// name, the inverse of MarshalYAML.
func (ls *Languages) UnmarshalYAML(unmarshal func(interface{}) error) error {
	raw := map[string]Language{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	ls.ensure()
	for name, lang := range raw {
		tag, err := ParseLanguageType(name)
		if err != nil {
			return err
		}
		ls.m[tag] = lang
	}
	return nil
}

// MarshalJSON serializes the non-empty view as a map keyed by
// language display name.
func (ls Languages) MarshalJSON() ([]byte, error) {
	out := map[string]Language{}
	for t, lang := range ls.RemoveEmpty().m {
		out[t.String()] = lang
	}
	return jsonMarshal(out)
}

// UnmarshalJSON populates ls from a map keyed by language display name.
func (ls *Languages) UnmarshalJSON(data []byte) error {
	raw := map[string]Language{}
	if err := jsonUnmarshal(data, &raw); err != nil {
		return err
	}
	ls.ensure()
	for name, lang := range raw {
		tag, err := ParseLanguageType(name)
		if err != nil {
			return err
		}
		ls.m[tag] = lang
	}
	return nil
}

func allowSet(types []LanguageType) map[LanguageType]struct{} {
	if len(types) == 0 {
		return nil
	}
	allow := make(map[LanguageType]struct{}, len(types))
	for _, t := range types {
		allow[t] = struct{}{}
	}
	return allow
}

// workerCount returns the worker-pool width for the parallel
// classification stage, sized to the host.
func workerCount() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// GetStatistics walks roots on disk, honouring the walker's own
// ignore-file semantics plus the caller-supplied override patterns
// (see internal/ignore), and returns the per-language aggregate. If
// types is non-empty, only those languages are counted. reporter may
// be nil; it receives walk/classify progress events when non-nil.
// opts are forwarded to Parse for every file (see WithContentSniff).
func GetStatistics(roots []string, ignored []string, types []LanguageType, reporter *progress.Progress, opts ...ParseOption) Languages {
	start := time.Now()
	overrides := ignore.Compile(ignored)
	allow := allowSet(types)

	reporter.ScanStart(strings.Join(roots, ", "), ignored)
	paths := fswalk.Walk(roots, overrides, logWalkError, reporter)

	handles := make(chan FileAccess, 256)
	go func() {
		defer close(handles)
		for p := range paths {
			handles <- NewPathFileAccess(p)
		}
	}()

	langs := fold(handles, allow, reporter, opts...)

	var files int
	for _, lang := range langs.m {
		files += len(lang.Children)
	}
	reporter.ScanComplete(files, 0, time.Since(start))
	return langs
}

// GetStatisticsFrom populates a Languages aggregate directly from an
// iterable of FileAccess handles, with no filesystem walking. opts are
// forwarded to Parse for every file (see WithContentSniff).
func GetStatisticsFrom(files []FileAccess, types []LanguageType, opts ...ParseOption) Languages {
	allow := allowSet(types)

	handles := make(chan FileAccess, len(files))
	for _, f := range files {
		handles <- f
	}
	close(handles)

	return fold(handles, allow, nil, opts...)
}

// fold runs Parse over handles on a fixed-size worker pool and folds
// the results sequentially into a Languages aggregate: each worker's
// result is collected locally and only the final fold touches shared
// state, so no lock is held during classification.
func fold(handles <-chan FileAccess, allow map[LanguageType]struct{}, reporter *progress.Progress, opts ...ParseOption) Languages {
	results := make(chan ParseResult, 256)

	var wg sync.WaitGroup
	for i := 0; i < workerCount(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range handles {
				result, ok := Parse(f, allow, opts...)
				if !ok {
					continue
				}
				reporter.LanguageDetected(result.Stats.Name, result.Language.String())
				results <- result
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	langs := NewLanguages()
	for result := range results {
		langs.add(result.Language, result.Stats)
	}
	return langs
}
