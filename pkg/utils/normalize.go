package utils

import (
	"strings"
	"unicode"
)

// NormalizeFlightID canonicalizes a flight identifier by stripping all
// whitespace and uppercasing: "tk 1001 " -> "TK1001". Idempotent; the
// empty string maps to itself.
func NormalizeFlightID(id string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, id)
	return strings.ToUpper(stripped)
}
