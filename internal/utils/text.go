package utils

import (
	"strings"
	"unicode/utf8"
)

// CleanUTF8 strips NUL bytes and invalid UTF-8 sequences from user-supplied
// text. Postgres text columns reject NUL outright, so feedback titles and
// comments pass through here before they reach the store. The boolean
// reports whether anything was removed.
func CleanUTF8(input string) (string, bool) {
	needsCleaning := strings.Contains(input, "\x00") || !utf8.ValidString(input)

	if !needsCleaning {
		return input, false
	}

	cleaned := strings.ToValidUTF8(input, "")
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")

	return cleaned, true
}
