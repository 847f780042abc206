// Package binutil decides whether a byte prefix looks binary, and
// decodes bytes to text for line iteration.
package binutil

// SniffSize is the number of leading bytes inspected to decide whether
// a file is binary.
const SniffSize = 8000

// IsBinary applies a NUL-byte / non-text-density heuristic over a
// byte prefix.
func IsBinary(prefix []byte) bool {
	if len(prefix) > SniffSize {
		prefix = prefix[:SniffSize]
	}

	if len(prefix) == 0 {
		return false
	}

	nonText := 0
	for _, b := range prefix {
		if b == 0 {
			return true
		}
		if isNonText(b) {
			nonText++
		}
	}

	// More than 30% non-text bytes in the prefix is treated as binary.
	return nonText*10 > len(prefix)*3
}

func isNonText(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r':
		return false
	case b >= 0x20 && b < 0x7f:
		return false
	case b >= 0x80:
		// Could be a valid UTF-8 continuation/lead byte; not counted
		// as non-text on its own, only control bytes are.
		return false
	default:
		return true
	}
}
