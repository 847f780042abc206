// Package contentsniff produces a best-effort language guess from file
// bytes alone, for callers who opt in via langstat.WithContentSniff
// after filename/extension/shebang identification has failed.
package contentsniff

import enry "github.com/go-enry/go-enry/v2"

// Guess returns enry's best-guess language name for a file given its
// name and content, or ok == false if enry can't decide. Callers
// translate the returned name into a langstat.LanguageType tag
// themselves, since enry's naming doesn't always match the language
// table's tags one-to-one.
func Guess(filename string, content []byte) (string, bool) {
	if enry.IsBinary(content) {
		return "", false
	}
	lang := enry.GetLanguage(filename, content)
	if lang == "" {
		return "", false
	}
	return lang, true
}
