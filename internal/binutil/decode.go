package binutil

import "unicode/utf8"

// Decode attempts UTF-8 first; on failure it falls back to a lossy,
// permissive 8-bit interpretation (Latin-1-style byte-per-rune) rather
// than failing the whole file. It only fails to decode truly
// unrecoverable input, which for a byte-per-rune fallback never
// actually happens — the signature keeps the error return so callers
// don't need to change if a stricter decoder is swapped in later.
//
// golang.org/x/text/encoding/charmap was considered for the fallback
// but rejected: its Windows-1252/ISO-8859-1 tables special-case a
// handful of bytes (0x80-0x9F) that a plain permissive 8-bit fallback
// does not, which would change classification at line boundaries that
// straddle those bytes. A manual byte-to-rune fallback keeps decode
// total and dependency-free.
func Decode(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	return decodeLossy(b), nil
}

func decodeLossy(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
