package utils

import (
	"strings"
	"unicode"
)

// StripControl drops control characters so record text can never move the
// cursor or restyle the terminal it is printed to.
func StripControl(v string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, v)
}
