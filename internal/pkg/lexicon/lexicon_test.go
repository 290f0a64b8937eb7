package lexicon

import (
	"testing"
	"unicode/utf8"
)

func TestLeagueKeywords_LongestFirst(t *testing.T) {
	kws := LeagueKeywords()
	if len(kws) != len(leagueTable) {
		t.Fatalf("LeagueKeywords() returned %d entries, want %d", len(kws), len(leagueTable))
	}
	for i := 1; i < len(kws); i++ {
		if utf8.RuneCountInString(kws[i-1].Keyword) < utf8.RuneCountInString(kws[i].Keyword) {
			t.Fatalf("keyword %q sorted before longer %q", kws[i-1].Keyword, kws[i].Keyword)
		}
	}
}

func TestLeagueKeywords_SpecificBeforeShorter(t *testing.T) {
	pos := make(map[string]int)
	for i, kw := range LeagueKeywords() {
		pos[kw.Keyword] = i
	}
	pairs := [][2]string{
		{"russian premier league", "premier league"},
		{"российская премьер-лига", "премьер-лига"},
		{"лига 1 франции", "лига 1"},
	}
	for _, p := range pairs {
		if pos[p[0]] > pos[p[1]] {
			t.Errorf("%q must be checked before %q", p[0], p[1])
		}
	}
}

func TestLeagueKeywords_CyrillicCaseForms(t *testing.T) {
	ids := make(map[string]int)
	for _, kw := range LeagueKeywords() {
		ids[kw.Keyword] = kw.LeagueID
	}
	tests := []struct {
		forms []string
		want  int
	}{
		{[]string{"премьер-лига", "премьер-лиги", "премьер-лигу", "премьер-лиге"}, LeaguePremierLeague},
		{[]string{"ла лига", "ла лиги", "ла лигу", "ла лиге"}, LeagueLaLiga},
		{[]string{"серия а", "серии а", "серию а"}, LeagueSerieA},
		{[]string{"бундеслига", "бундеслиги", "бундеслигу", "бундеслиге"}, LeagueBundesliga},
		{[]string{"лига 1", "лиги 1", "лигу 1", "лиге 1"}, LeagueLigue1},
		{[]string{"лига чемпионов", "лиги чемпионов", "лигу чемпионов", "лиге чемпионов"}, LeagueChampionsLeague},
		{[]string{"лига европы", "лиги европы", "лигу европы", "лиге европы"}, LeagueEuropaLeague},
		{[]string{"российская премьер-лига", "российской премьер-лиги", "российскую премьер-лигу", "российской премьер-лиге"}, LeagueRussianPremier},
		{[]string{"ліга чемпіонів", "ліги чемпіонів", "лігу чемпіонів", "лізі чемпіонів"}, LeagueChampionsLeague},
	}
	for _, tt := range tests {
		for _, f := range tt.forms {
			if got, ok := ids[f]; !ok || got != tt.want {
				t.Errorf("keyword %q -> %d (present %v), want %d", f, got, ok, tt.want)
			}
		}
	}
}

func TestLeagueKeywords_ReturnsCopy(t *testing.T) {
	kws := LeagueKeywords()
	kws[0].LeagueID = -1
	for _, kw := range LeagueKeywords() {
		if kw.LeagueID == -1 {
			t.Fatal("mutating the returned slice changed the lexicon")
		}
	}
}

func TestLeagueNames_CoverKeywordTable(t *testing.T) {
	for _, kw := range leagueTable {
		if LeagueName(kw.LeagueID) == "" {
			t.Errorf("keyword %q maps to league %d without a display name", kw.Keyword, kw.LeagueID)
		}
	}
	if got := LeagueName(999999); got != "" {
		t.Errorf("LeagueName(999999) = %q, want empty", got)
	}
}

func TestTeamAliases_LongestFirst(t *testing.T) {
	aliases := TeamAliases()
	seen := make(map[string]bool)
	for i, a := range aliases {
		if seen[a.Alias] {
			t.Errorf("duplicate alias %q", a.Alias)
		}
		seen[a.Alias] = true
		if i > 0 && utf8.RuneCountInString(aliases[i-1].Alias) < utf8.RuneCountInString(a.Alias) {
			t.Fatalf("alias %q sorted before longer %q", aliases[i-1].Alias, a.Alias)
		}
	}
}

func TestContainsTerm(t *testing.T) {
	tests := []struct {
		text string
		term string
		want bool
	}{
		{"liverpool today", "live", false},
		{"any live games?", "live", true},
		{"live", "live", true},
		{"interesting games", "inter", false},
		{"inter - milan", "inter", true},
		{"что сегодня?", "сегодня", true},
		{"сегодняшние матчи", "сегодня", false},
		{"今天有什么比赛", "今天", true},
		{"英超今天", "英超", true},
		{"ac milan, tomorrow", "tomorrow", true},
		{"", "live", false},
		{"live", "", false},
	}
	for _, tt := range tests {
		if got := ContainsTerm(tt.text, tt.term); got != tt.want {
			t.Errorf("ContainsTerm(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
		}
	}
}

func TestIndexTerm_SkipsEmbeddedHits(t *testing.T) {
	text := "interesting, but inter plays"
	if got := IndexTerm(text, "inter", 0); got != 17 {
		t.Errorf("IndexTerm = %d, want 17", got)
	}
	if got := IndexTerm(text, "inter", 19); got != -1 {
		t.Errorf("IndexTerm from 19 = %d, want -1", got)
	}
}

func TestNoiseSuffixes_IncludeDayWords(t *testing.T) {
	suffixes := NoiseSuffixes()
	for _, w := range []string{"today", "завтра", "odds", "прогноз"} {
		found := false
		for _, s := range suffixes {
			if s == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("NoiseSuffixes() missing %q", w)
		}
	}
}
