// Package textutils provides text normalization for multilingual
// transaction descriptions. Bank exports mix Hebrew and English and
// frequently embed directional marks and non-breaking spaces that break
// naive string matching.
package textutils

import (
	"strings"
)

// Directional and invisible Unicode characters commonly found in
// right-to-left bank exports. All are replaced with plain spaces.
const (
	rtlMarkers      = "\u200f\u200e\u202a\u202b\u202c\u202d\u202e"
	invisibleSpaces = "\u00a0\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a"
)

// Legal-entity suffix tokens stripped from vendor names before matching.
// Covers the Hebrew "Ltd" spellings alongside the English forms.
var legalSuffixes = map[string]bool{
	"בע\"מ": true, "בעמ": true, "בע''מ": true,
	"ltd": true, "inc": true, "llc": true,
	"corp": true, "limited": true, "corporation": true,
}

// NormalizeText strips directional/invisible marks and collapses
// whitespace. It does not change case.
func NormalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(rtlMarkers, r) || strings.ContainsRune(invisibleSpaces, r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeVendorName lower-cases, removes legal-entity suffix tokens,
// strips directional/invisible marks and collapses whitespace.
// It is idempotent: NormalizeVendorName(NormalizeVendorName(x)) ==
// NormalizeVendorName(x).
func NormalizeVendorName(text string) string {
	words := strings.Fields(strings.ToLower(NormalizeText(text)))
	kept := words[:0]
	for _, w := range words {
		if legalSuffixes[w] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
