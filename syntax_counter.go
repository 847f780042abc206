package langstat

import "strings"

// syntaxCounter is the per-file line-classification state machine: it
// tracks at most one open quote and a stack of open block comments
// across physical lines, classifying each line as blank, comment, or
// code. One instance is created per file and discarded afterward — it
// carries no state that outlives a single Stats computation. Grounded
// on original_source/src/syntax/mod.rs's SyntaxCounter.
type syntaxCounter struct {
	language LanguageType

	lineComments      []string
	multiLineComments [][2]string
	nestedComments    [][2]string
	quotes            [][2]string
	allowsNested      bool

	quoteOpen  string // "" when no quote is open
	quoteClose string
	stack      []string // close markers of open block comments, innermost last
}

func newSyntaxCounter(language LanguageType) *syntaxCounter {
	return &syntaxCounter{
		language:          language,
		lineComments:      language.LineComments(),
		multiLineComments: language.MultiLineComments(),
		nestedComments:    language.NestedComments(),
		quotes:            language.Quotes(),
		allowsNested:      language.AllowsNested(),
	}
}

// count runs the full per-file algorithm over text and returns the
// resulting Stats. name is carried through only for attribution.
func (c *syntaxCounter) count(name, text string) Stats {
	stats := NewStats(name)

	if c.language.IsBlank() {
		n := physicalLineCount(text)
		stats.Code = n
		stats.Lines = n
		return stats
	}

	for _, line := range splitLines(text) {
		c.countLine(line, &stats)
	}
	stats.Summarize()
	return stats
}

func (c *syntaxCounter) countLine(raw string, stats *Stats) {
	if isAllWhitespace(raw) {
		stats.Blanks++
		return
	}

	line := raw
	if !c.language.IsFortran() {
		line = strings.TrimSpace(line)
	}

	hadMultiLine := len(c.stack) > 0
	endedWithComments := false

	if c.quoteOpen == "" && len(c.stack) == 0 && !c.containsAnyMarker(line) {
		if c.startsWithLineComment(line) {
			stats.Comments++
		} else {
			stats.Code++
		}
		return
	}

	i := 0
	skip := 0
	for i < len(line) {
		if skip > 0 {
			skip--
			i++
			continue
		}

		window := line[i:]

		if c.quoteOpen != "" && strings.HasPrefix(window, c.quoteClose) {
			endedWithComments = true
			c.quoteOpen = ""
			skip = len(c.quoteClose) - 1
			i++
			continue
		}
		if n := len(c.stack); n > 0 {
			top := c.stack[n-1]
			if strings.HasPrefix(window, top) {
				endedWithComments = true
				c.stack = c.stack[:n-1]
				skip = len(top) - 1
				i++
				continue
			}
		}

		if c.quoteOpen == "" && len(c.stack) == 0 {
			if open, close, ok := matchPair(window, c.quotes); ok {
				c.quoteOpen = open
				c.quoteClose = close
				skip = len(open) - 1
				i++
				continue
			}
		}
		if c.quoteOpen == "" {
			if open, close, nested, ok := c.matchBlockOpen(window); ok {
				if len(c.stack) == 0 || c.allowsNested || nested {
					c.stack = append(c.stack, close)
				}
				skip = len(open) - 1
				i++
				continue
			}
		}

		if c.quoteOpen == "" && len(c.stack) == 0 {
			if c.startsWithLineCommentAt(window) {
				break
			}
		}

		i++
	}

	switch {
	case (len(c.stack) > 0 || endedWithComments) && hadMultiLine:
		stats.Comments++
	case c.quoteOpen == "" && c.startsOfComment(line):
		stats.Comments++
	default:
		stats.Code++
	}
}

func (c *syntaxCounter) containsAnyMarker(line string) bool {
	for _, p := range c.quotes {
		if strings.Contains(line, p[0]) {
			return true
		}
	}
	for _, p := range c.multiLineComments {
		if strings.Contains(line, p[0]) || strings.Contains(line, p[1]) {
			return true
		}
	}
	for _, p := range c.nestedComments {
		if strings.Contains(line, p[0]) || strings.Contains(line, p[1]) {
			return true
		}
	}
	return false
}

func (c *syntaxCounter) startsWithLineComment(line string) bool {
	for _, marker := range c.lineComments {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

func (c *syntaxCounter) startsWithLineCommentAt(window string) bool {
	return c.startsWithLineComment(window)
}

func (c *syntaxCounter) startsOfComment(line string) bool {
	if c.startsWithLineComment(line) {
		return true
	}
	for _, p := range c.multiLineComments {
		if strings.HasPrefix(line, p[0]) {
			return true
		}
	}
	for _, p := range c.nestedComments {
		if strings.HasPrefix(line, p[0]) {
			return true
		}
	}
	return false
}

// matchBlockOpen checks window against both the ordinary block-comment
// pairs and the always-nestable pairs, ordinary pairs first (C1
// declaration order governs first-match-wins within each list).
func (c *syntaxCounter) matchBlockOpen(window string) (open, close string, nested, ok bool) {
	if open, close, ok := matchPair(window, c.multiLineComments); ok {
		return open, close, false, true
	}
	if open, close, ok := matchPair(window, c.nestedComments); ok {
		return open, close, true, true
	}
	return "", "", false, false
}

func matchPair(window string, pairs [][2]string) (open, close string, ok bool) {
	for _, p := range pairs {
		if strings.HasPrefix(window, p[0]) {
			return p[0], p[1], true
		}
	}
	return "", "", false
}

// splitLines splits text into physical lines on "\n", stripping a
// trailing "\r" from each, and includes a final non-empty unterminated
// line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

func physicalLineCount(text string) int {
	return len(splitLines(text))
}
