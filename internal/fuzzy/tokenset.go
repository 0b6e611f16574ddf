// Package fuzzy implements a token-set similarity scorer on a 0-100
// scale. Token-set scoring is order-independent and subset-tolerant,
// which is what vendor matching needs: "SUPER MARKET CHAIN #4521" and
// "super market chain" should score near 100 despite the trailing noise.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio returns the normalized edit-distance similarity of two strings
// on a 0-100 scale. Comparison is rune-aware, so Hebrew text scores the
// same way Latin text does.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	lenA := len([]rune(a))
	lenB := len([]rune(b))
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}
	if maxLen == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return int(100 * (1 - float64(distance)/float64(maxLen)))
}

// TokenSetRatio tokenizes both strings into word sets and scores the
// best pairing of {intersection, intersection+restA, intersection+restB}.
// A full token subset therefore scores 100 regardless of extra tokens on
// either side.
func TokenSetRatio(a, b string) int {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var common, onlyA, onlyB []string
	for token := range setA {
		if setB[token] {
			common = append(common, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if !setA[token] {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := Ratio(combinedA, combinedB)
	if base != "" {
		if s := Ratio(base, combinedA); s > best {
			best = s
		}
		if s := Ratio(base, combinedB); s > best {
			best = s
		}
	}
	return best
}

// ExtractOne scores query against every choice with TokenSetRatio and
// returns the single best choice at or above cutoff. ok is false when no
// choice clears the cutoff.
func ExtractOne(query string, choices []string, cutoff int) (best string, score int, ok bool) {
	for _, choice := range choices {
		s := TokenSetRatio(query, choice)
		if s < cutoff {
			continue
		}
		if !ok || s > score {
			best, score, ok = choice, s, true
		}
	}
	return best, score, ok
}

func tokenSet(s string) map[string]bool {
	tokens := strings.Fields(strings.ToLower(s))
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
