package recurrence

import (
	"strings"
	"unicode"
)

// tokenSet lower-cases the description, replaces digits and punctuation with
// spaces and returns the set of remaining whitespace-separated tokens.
// "PAYPAL *Spotify 123" and "paypal spotify" produce the same set.
func tokenSet(s string) map[string]struct{} {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)

	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(cleaned) {
		tokens[tok] = struct{}{}
	}
	return tokens
}

// Jaccard computes the Jaccard similarity (intersection over union) of the
// token sets of two descriptions. Empty token sets yield 0.
func Jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}
