package textutil

import (
	"strings"
	"unicode"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; control
// characters and other unsafe characters are removed. The result is trimmed
// of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = StripControl(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// StripControl drops control characters such as ANSI escapes and newlines so
// remote text cannot rewrite the terminal.
func StripControl(value string) string {
	if strings.IndexFunc(value, unicode.IsControl) < 0 {
		return value
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
