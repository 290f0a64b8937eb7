package intent

import "regexp"

// Match patterns are tried in order against the lower-cased message; the
// first one whose home and away groups both survive cleaning wins. Adding a
// language means adding words here, not code.
var matchPatterns = []*regexp.Regexp{
	// "who will win arsenal or chelsea", "кто выиграет зенит или спартак"
	regexp.MustCompile(`^(?:who will win|who wins|кто выиграет|кто победит|хто виграє|хто переможе|quién gana|quien gana|quem ganha|quem vence|qui va gagner|wer gewinnt|chi vince|kim kazanır)[:,]?\s+` +
		`(?P<home>.+?)\s+(?:or|или|чи|або|o|ou|oder|veya|vs\.?|v|против)\s+(?P<away>.+?)\??$`),

	// "arsenal vs chelsea", "зенит против спартака", "flamengo x palmeiras"
	regexp.MustCompile(`^(?P<home>.+?)\s+(?:vs\.?|versus|v\.?|против|проти|contra|contre|gegen|contro|karşı|x)\s+(?P<away>.+)$`),

	// "arsenal — chelsea", "arsenal–chelsea"
	regexp.MustCompile(`^(?P<home>.+?)\s*[—–]\s*(?P<away>.+)$`),

	// "arsenal - chelsea"; a bare hyphen is part of names like "saint-germain"
	regexp.MustCompile(`^(?P<home>.+?)\s+-\s+(?P<away>.+)$`),
}

// trimCutset is stripped from both ends of a captured name.
const trimCutset = " \t?!.,:;\"'«»()[]“”„…"
