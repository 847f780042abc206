// Package gitscan locates the enclosing git worktree for a scan root
// and compiles its .git/info/exclude patterns.
package gitscan

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Root returns the worktree root containing path, or ok == false if
// path is not inside a git repository. Detection (including
// submodules and linked worktrees) is delegated to go-git rather than
// walking upward for a ".git" entry by hand.
func Root(path string) (root string, ok bool) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", false
	}
	return wt.Filesystem.Root(), true
}

// InfoExcludePatterns reads root's .git/info/exclude file, parsing
// each non-comment line through go-git's own pattern parser. Returns
// nil if the file is absent or unreadable — info/exclude is optional.
func InfoExcludePatterns(root string) []gitignore.Pattern {
	f, err := os.Open(filepath.Join(root, ".git", "info", "exclude"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}

// Matcher compiles root's .git/info/exclude patterns into a
// gitignore.Matcher, letting callers reuse go-git's own match
// semantics (directory-aware, domain-scoped) instead of re-deriving
// exclusion pattern-by-pattern.
func Matcher(root string) gitignore.Matcher {
	return gitignore.NewMatcher(InfoExcludePatterns(root))
}
