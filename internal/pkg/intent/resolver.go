package intent

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Vodeneev/betbrief/internal/pkg/lexicon"
	"github.com/Vodeneev/betbrief/internal/pkg/teamname"
)

// maxUnknownWords bounds a captured name that matches no known alias.
// Longer captures are sentences, not club names.
const maxUnknownWords = 4

// Mention is a team found in a message and the byte offset where it starts.
type Mention struct {
	Name string
	Pos  int
}

// Resolution is the outcome of entity resolution. An empty Away means a
// single team was named.
type Resolution struct {
	Home string
	Away string
}

// Single reports whether only one team was resolved.
func (r *Resolution) Single() bool { return r.Away == "" }

// Resolver extracts team names from free text.
type Resolver struct {
	patterns []*regexp.Regexp
	aliases  []lexicon.TeamAlias
	prefixes []string
	suffixes []string
	reserved map[string]bool
	stop     map[string]bool
}

// NewResolver builds a resolver over the static lexicon.
func NewResolver() *Resolver {
	r := &Resolver{
		patterns: matchPatterns,
		aliases:  lexicon.TeamAliases(),
		prefixes: lexicon.NoisePrefixes(),
		suffixes: lexicon.NoiseSuffixes(),
		reserved: make(map[string]bool),
		stop:     make(map[string]bool),
	}
	for _, w := range lexicon.StopWords() {
		r.stop[w] = true
	}
	for _, kw := range lexicon.LeagueKeywords() {
		r.reserved[kw.Keyword] = true
	}
	for _, set := range [][]string{lexicon.TodayWords(), lexicon.TomorrowWords(), lexicon.LiveWords(), lexicon.BestBetWords()} {
		for _, w := range set {
			r.reserved[w] = true
		}
	}
	return r
}

// Resolve returns the teams named in message, or nil when there are none.
// Explicit "A vs B" style patterns are tried first, then known-name scanning.
func (r *Resolver) Resolve(message string) *Resolution {
	text := Normalize(message)
	if text == "" {
		return nil
	}
	if res := r.fromPatterns(text); res != nil {
		return res
	}
	mentions := r.Mentions(text)
	switch len(mentions) {
	case 0:
		return nil
	case 1:
		return &Resolution{Home: mentions[0].Name}
	default:
		return &Resolution{Home: mentions[0].Name, Away: mentions[1].Name}
	}
}

func (r *Resolver) fromPatterns(text string) *Resolution {
	for _, p := range r.patterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		home, homeOK := r.cleanName(m[p.SubexpIndex("home")])
		away, awayOK := r.cleanName(m[p.SubexpIndex("away")])
		if !homeOK || !awayOK || teamname.Same(home, away) {
			continue
		}
		return &Resolution{Home: home, Away: away}
	}
	return nil
}

// Mentions scans text for known aliases, longest first, and returns at most
// two distinct teams ordered by position. A span claimed by a longer alias is
// never matched again by a shorter one.
func (r *Resolver) Mentions(text string) []Mention {
	text = Normalize(text)
	var (
		taken []span
		found []Mention
	)
	for _, a := range r.aliases {
		from := 0
		for {
			i := lexicon.IndexTerm(text, a.Alias, from)
			if i < 0 {
				break
			}
			s := span{start: i, end: i + len(a.Alias)}
			if s.overlapsAny(taken) {
				_, size := utf8.DecodeRuneInString(text[i:])
				from = i + size
				continue
			}
			taken = append(taken, s)
			from = s.end
			if known(found, a.Canonical) {
				continue
			}
			found = append(found, Mention{Name: a.Canonical, Pos: i})
			if len(found) == 2 {
				sort.SliceStable(found, func(x, y int) bool { return found[x].Pos < found[y].Pos })
				return found
			}
		}
	}
	return found
}

func known(found []Mention, name string) bool {
	for _, m := range found {
		if m.Name == name || teamname.Same(m.Name, name) {
			return true
		}
	}
	return false
}

type span struct{ start, end int }

func (s span) overlapsAny(taken []span) bool {
	for _, t := range taken {
		if s.start < t.end && t.start < s.end {
			return true
		}
	}
	return false
}

// cleanName strips noise words around a captured name and maps it to a
// canonical alias when one is present. ok is false when nothing usable is left.
func (r *Resolver) cleanName(s string) (string, bool) {
	s = strings.Trim(s, trimCutset)
	for changed := true; changed && s != ""; {
		changed = false
		for _, p := range r.prefixes {
			if rest, cut := cutWordPrefix(s, p); cut {
				s, changed = rest, true
				break
			}
		}
		for _, suf := range r.suffixes {
			if rest, cut := cutWordSuffix(s, suf); cut {
				s, changed = rest, true
				break
			}
		}
	}
	if utf8.RuneCountInString(s) <= 1 || r.reserved[s] {
		return "", false
	}
	if name, ok := r.canonical(s); ok {
		return name, true
	}
	words := strings.Fields(s)
	if len(words) > maxUnknownWords || r.filler(words) {
		return "", false
	}
	return s, true
}

// filler reports whether every word is a stop, day, live or tip word.
func (r *Resolver) filler(words []string) bool {
	for _, w := range words {
		w = strings.Trim(w, trimCutset)
		if w != "" && !r.stop[w] && !r.reserved[w] {
			return false
		}
	}
	return true
}

// canonical maps a name to its alias target: an exact alias first, then the
// longest alias contained in it.
func (r *Resolver) canonical(s string) (string, bool) {
	for _, a := range r.aliases {
		if a.Alias == s {
			return a.Canonical, true
		}
	}
	for _, a := range r.aliases {
		if lexicon.ContainsTerm(s, a.Alias) {
			return a.Canonical, true
		}
	}
	return "", false
}

func cutWordPrefix(s, p string) (string, bool) {
	if !strings.HasPrefix(s, p) {
		return s, false
	}
	rest := s[len(p):]
	if rest != "" {
		if r, _ := utf8.DecodeRuneInString(rest); isWord(r) {
			return s, false
		}
	}
	return strings.Trim(rest, trimCutset), true
}

func cutWordSuffix(s, suf string) (string, bool) {
	if !strings.HasSuffix(s, suf) {
		return s, false
	}
	rest := s[:len(s)-len(suf)]
	if rest != "" {
		if r, _ := utf8.DecodeLastRuneInString(rest); isWord(r) {
			return s, false
		}
	}
	return strings.Trim(rest, trimCutset), true
}

func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Normalize lower-cases a message and collapses its whitespace.
func Normalize(message string) string {
	return strings.Join(strings.Fields(strings.ToLower(message)), " ")
}
