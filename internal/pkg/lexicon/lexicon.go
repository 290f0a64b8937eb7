// Package lexicon holds the static multilingual keyword tables used to read
// football questions: league names, day words, live and tip phrases, and
// well-known club aliases.
//
// Tables are declared as ordered slices, never maps, so that lookups that
// stop at the first hit are deterministic. Accessors return copies sorted by
// specificity (longest keyword first); callers may keep them for the process
// lifetime.
package lexicon

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LeagueKeyword maps one spelling of a competition to its provider id.
type LeagueKeyword struct {
	Keyword  string
	LeagueID int
}

// TeamAlias maps a nickname, translation or spelling of a club to the name
// used when searching the provider.
type TeamAlias struct {
	Alias     string
	Canonical string
}

// LeagueKeywords returns the league keyword table ordered by descending
// keyword length. Keywords of equal length keep declaration order.
func LeagueKeywords() []LeagueKeyword {
	out := make([]LeagueKeyword, len(leagueTable))
	copy(out, leagueTable)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i].Keyword) > utf8.RuneCountInString(out[j].Keyword)
	})
	return out
}

// TeamAliases returns the known club aliases ordered by descending alias
// length, so "manchester united" is always tried before "united".
func TeamAliases() []TeamAlias {
	out := make([]TeamAlias, len(teamTable))
	copy(out, teamTable)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i].Alias) > utf8.RuneCountInString(out[j].Alias)
	})
	return out
}

// LeagueName returns the display name of a league id, or "" when unknown.
func LeagueName(id int) string {
	for _, l := range leagueNames {
		if l.id == id {
			return l.name
		}
	}
	return ""
}

// TopLeagueIDs returns the allow-list used for day overviews, in priority
// order.
func TopLeagueIDs() []int {
	out := make([]int, len(topLeagues))
	copy(out, topLeagues)
	return out
}

func TodayWords() []string    { return bySpecificity(todayWords) }
func TomorrowWords() []string { return bySpecificity(tomorrowWords) }
func LiveWords() []string     { return bySpecificity(liveWords) }
func BestBetWords() []string  { return bySpecificity(bestBetWords) }
func StopWords() []string     { return bySpecificity(stopWords) }

// NoisePrefixes are leading phrases stripped from a captured team name
// ("прогноз на матч Зенит" -> "Зенит"). Best-bet words are included.
func NoisePrefixes() []string {
	all := make([]string, 0, len(noisePrefixes)+len(bestBetWords))
	all = append(all, noisePrefixes...)
	all = append(all, bestBetWords...)
	return bySpecificity(all)
}

// NoiseSuffixes are trailing words stripped from a captured team name
// ("chelsea odds today" -> "chelsea"). Day and best-bet words are included.
func NoiseSuffixes() []string {
	all := make([]string, 0, len(noiseSuffixes)+len(todayWords)+len(tomorrowWords)+len(bestBetWords))
	all = append(all, noiseSuffixes...)
	all = append(all, todayWords...)
	all = append(all, tomorrowWords...)
	all = append(all, bestBetWords...)
	return bySpecificity(all)
}

func bySpecificity(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) > utf8.RuneCountInString(out[j])
	})
	return out
}

// ContainsTerm reports whether term occurs in text as a whole word. Both are
// expected to be lower-cased already.
func ContainsTerm(text, term string) bool {
	return IndexTerm(text, term, 0) >= 0
}

// ContainsAny reports whether any of terms occurs in text as a whole word.
func ContainsAny(text string, terms []string) bool {
	for _, t := range terms {
		if ContainsTerm(text, t) {
			return true
		}
	}
	return false
}

// IndexTerm returns the byte offset of the first whole-word occurrence of
// term in text at or after from, or -1. Terms written in scripts that do not
// separate words with spaces (Han, kana, Thai) match as plain substrings.
func IndexTerm(text, term string, from int) int {
	if term == "" {
		return -1
	}
	for from <= len(text) {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return -1
		}
		i += from
		if onWordBoundary(text, term, i) {
			return i
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		from = i + size
	}
	return -1
}

func onWordBoundary(text, term string, i int) bool {
	if unspaced(term) {
		return true
	}
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		if isWordRune(r) {
			return false
		}
	}
	if end := i + len(term); end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc)
}

func unspaced(term string) bool {
	for _, r := range term {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Thai) {
			return true
		}
	}
	return false
}
