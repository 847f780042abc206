// Package fswalk enumerates regular files under a set of root paths
// for spec.md C6's "from paths" entry point. It delegates directory
// traversal and `.gitignore`-style filtering to boyter/gocodewalker —
// the walker scc itself is built on — rather than hand-rolling
// filepath.WalkDir plus ignore-file parsing.
package fswalk

import (
	"path/filepath"
	"strings"

	"github.com/boyter/gocodewalker"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/halcyon-labs/langstat/internal/gitscan"
	"github.com/halcyon-labs/langstat/internal/ignore"
	"github.com/halcyon-labs/langstat/internal/progress"
)

// Walk streams the path of every regular file found beneath roots, as
// gocodewalker reports it (joined onto its root, so it can be opened
// directly), to the returned channel, applying gocodewalker's own
// `.gitignore`/`.ignore` semantics plus the caller-supplied override
// patterns, which are matched against the relative-to-root path. The
// channel is closed once every root has been walked; an error that ends
// one root's walk is reported via onError and the next root is walked.
// Walker errors for individual paths are reported via onError and do
// not stop the walk. reporter
// may be nil; a nil *progress.Progress reports nothing.
func Walk(roots []string, overrides ignore.Overrides, onError func(error), reporter *progress.Progress) <-chan string {
	out := make(chan string, 256)

	go func() {
		defer close(out)

		for _, root := range roots {
			reporter.ScanInitializing(root, nil)
			walkRoot(root, overrides, onError, out, reporter)
		}
	}()

	return out
}

func walkRoot(root string, overrides ignore.Overrides, onError func(error), out chan<- string, reporter *progress.Progress) {
	// gocodewalker already honours tracked .gitignore files; the
	// untracked .git/info/exclude file is git-specific and outside its
	// scope, so it's matched separately via go-git.
	var infoExclude gitignore.Matcher
	if gitRoot, ok := gitscan.Root(root); ok {
		infoExclude = gitscan.Matcher(gitRoot)
	}

	queue := make(chan *gocodewalker.File, 256)
	walker := gocodewalker.NewFileWalker(root, queue)
	walker.IgnoreGitIgnore = false
	walker.IncludeHidden = false

	errs := make(chan error, 1)
	walker.SetErrorHandler(func(err error) bool {
		if onError != nil {
			onError(err)
		}
		return true // keep walking past a single bad path
	})

	go func() {
		errs <- walker.Start()
		close(errs)
	}()

	seenDirs := map[string]bool{}
	for f := range queue {
		if looksLikeDirectoryNamedAsFile(f.Location) {
			continue
		}
		rel, err := filepath.Rel(root, f.Location)
		if err != nil {
			rel = f.Location
		}
		relSlash := filepath.ToSlash(rel)
		if overrides.Excluded(relSlash) {
			reporter.Skipped(f.Location, "excluded by override pattern")
			continue
		}
		if infoExclude != nil && infoExclude.Match(strings.Split(relSlash, "/"), false) {
			reporter.Skipped(f.Location, "excluded by .git/info/exclude")
			continue
		}
		if dir := filepath.Dir(f.Location); !seenDirs[dir] {
			seenDirs[dir] = true
			reporter.EnterDirectory(dir)
		}
		out <- f.Location
	}

	if err := <-errs; err != nil && onError != nil {
		onError(err)
	}
}

// looksLikeDirectoryNamedAsFile guards against a directory literally
// named like a source file (e.g. "directory.rs") being treated as a
// file: gocodewalker already distinguishes files from directories
// during its own walk, so this is only a defensive check. It rejects
// a path that ends in a path separator, which gocodewalker's queue of
// regular files does not produce.
func looksLikeDirectoryNamedAsFile(path string) bool {
	return strings.HasSuffix(path, string(filepath.Separator))
}
