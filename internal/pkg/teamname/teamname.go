// Package teamname normalizes club names coming from users and from the
// provider so that "Atlético Madrid", "atletico-madrid" and "Club Atletico
// Madrid" can be compared.
package teamname

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// clubPrefixes are dropped from provider search terms only; comparison keeps
// them and relies on containment.
var clubPrefixes = []string{
	"r.c. ", "rc ", "f.c. ", "fc ", "f.k. ", "fk ", "c.f. ", "cf ", "s.c. ", "sc ",
	"s.s.c. ", "ssc ", "a.c. ", "ac ", "a.s. ", "as ", "c.d. ", "cd ", "n.k. ", "nk ",
	"afc ", "фк ", "пфк ",
}

// Normalize lower-cases s, strips diacritics and collapses whitespace.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(stripMarks(s)), " ")
}

// StripClubPrefix normalizes s and drops a leading "FC ", "AC ", "ФК " and the like.
func StripClubPrefix(s string) string {
	s = Normalize(s)
	for _, p := range clubPrefixes {
		if strings.HasPrefix(s, p) {
			return strings.TrimSpace(s[len(p):])
		}
	}
	return s
}

// Key reduces a name to its letters and digits: "Paris Saint-Germain" -> "parissaintgermain".
func Key(s string) string {
	s = Normalize(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Match reports whether either key contains the other. The test is
// intentionally loose: "inter" matches "Inter Miami" as well as "Inter".
func Match(a, b string) bool {
	ka, kb := Key(a), Key(b)
	if ka == "" || kb == "" {
		return false
	}
	return strings.Contains(ka, kb) || strings.Contains(kb, ka)
}

// Same reports whether two names normalize to the identical key.
func Same(a, b string) bool {
	ka := Key(a)
	return ka != "" && ka == Key(b)
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
