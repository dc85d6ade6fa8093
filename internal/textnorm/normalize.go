// Package textnorm produces comparison keys for free text: lowercase,
// accent-free ASCII with punctuation removed.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonASCII = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })

// Normalize lowercases s, trims it, decomposes accented characters and drops
// every rune that is not an ASCII letter, digit or whitespace.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}

	// transform.Chain keeps state, so each call builds its own.
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(nonASCII)), s)
	if err != nil {
		folded = asciiOnly(s)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'A' && r <= 'Z':
			// Compatibility decompositions can surface uppercase letters.
			b.WriteRune(r + ('a' - 'A'))
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeValue coerces v to its string form before normalizing it.
func NormalizeValue(v any) string {
	if s, ok := v.(string); ok {
		return Normalize(s)
	}
	return Normalize(fmt.Sprint(v))
}

// Contains reports whether the normalized form of needle occurs in the
// normalized form of haystack.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

func asciiOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
