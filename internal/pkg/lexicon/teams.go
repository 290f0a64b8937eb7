package lexicon

// teamTable lists aliases users actually type. Canonical names are the
// provider's English search terms; several aliases share one canonical name
// and count as a single club when scanning.
var teamTable = []TeamAlias{
	// England
	{"manchester united", "manchester united"},
	{"man united", "manchester united"},
	{"man utd", "manchester united"},
	{"манчестер юнайтед", "manchester united"},
	{"мю", "manchester united"},
	{"манчестер сити", "manchester city"},
	{"manchester city", "manchester city"},
	{"man city", "manchester city"},
	{"ман сити", "manchester city"},
	{"арсенал", "arsenal"},
	{"arsenal", "arsenal"},
	{"челси", "chelsea"},
	{"chelsea", "chelsea"},
	{"ліверпуль", "liverpool"},
	{"ливерпуль", "liverpool"},
	{"liverpool", "liverpool"},
	{"тоттенхэм", "tottenham"},
	{"тоттенхем", "tottenham"},
	{"tottenham", "tottenham"},
	{"spurs", "tottenham"},
	{"newcastle", "newcastle"},
	{"ньюкасл", "newcastle"},
	{"aston villa", "aston villa"},
	{"астон вилла", "aston villa"},
	{"everton", "everton"},
	{"эвертон", "everton"},
	{"west ham", "west ham"},
	{"вест хэм", "west ham"},
	{"brighton", "brighton"},
	{"брайтон", "brighton"},

	// Spain
	{"real madrid", "real madrid"},
	{"реал мадрид", "real madrid"},
	{"реал", "real madrid"},
	{"barcelona", "barcelona"},
	{"barça", "barcelona"},
	{"barca", "barcelona"},
	{"барселона", "barcelona"},
	{"барса", "barcelona"},
	{"atletico madrid", "atletico madrid"},
	{"atlético madrid", "atletico madrid"},
	{"atletico", "atletico madrid"},
	{"атлетико", "atletico madrid"},
	{"sevilla", "sevilla"},
	{"севилья", "sevilla"},
	{"real sociedad", "real sociedad"},
	{"реал сосьедад", "real sociedad"},
	{"real betis", "real betis"},
	{"бетис", "real betis"},
	{"villarreal", "villarreal"},
	{"вильярреал", "villarreal"},
	{"athletic bilbao", "athletic club"},
	{"атлетик", "athletic club"},

	// Italy
	{"juventus", "juventus"},
	{"juve", "juventus"},
	{"ювентус", "juventus"},
	{"inter", "inter"},
	{"internazionale", "inter"},
	{"интер", "inter"},
	{"ac milan", "ac milan"},
	{"milan", "ac milan"},
	{"милан", "ac milan"},
	{"napoli", "napoli"},
	{"наполи", "napoli"},
	{"roma", "as roma"},
	{"рома", "as roma"},
	{"lazio", "lazio"},
	{"лацио", "lazio"},
	{"atalanta", "atalanta"},
	{"аталанта", "atalanta"},

	// Germany
	{"bayern munich", "bayern munich"},
	{"bayern münchen", "bayern munich"},
	{"bayern", "bayern munich"},
	{"бавария", "bayern munich"},
	{"borussia dortmund", "borussia dortmund"},
	{"dortmund", "borussia dortmund"},
	{"bvb", "borussia dortmund"},
	{"боруссия дортмунд", "borussia dortmund"},
	{"дортмунд", "borussia dortmund"},
	{"bayer leverkusen", "bayer leverkusen"},
	{"leverkusen", "bayer leverkusen"},
	{"байер", "bayer leverkusen"},
	{"rb leipzig", "rb leipzig"},
	{"лейпциг", "rb leipzig"},

	// France
	{"paris saint-germain", "paris saint germain"},
	{"paris saint germain", "paris saint germain"},
	{"psg", "paris saint germain"},
	{"псж", "paris saint germain"},
	{"marseille", "marseille"},
	{"марсель", "marseille"},
	{"monaco", "monaco"},
	{"монако", "monaco"},
	{"lyon", "lyon"},
	{"лион", "lyon"},

	// Russia / Ukraine
	{"зенит", "zenit"},
	{"zenit", "zenit"},
	{"спартак", "spartak moscow"},
	{"spartak", "spartak moscow"},
	{"цска", "cska moscow"},
	{"cska", "cska moscow"},
	{"локомотив", "lokomotiv moscow"},
	{"краснодар", "krasnodar"},
	{"krasnodar", "krasnodar"},
	{"динамо москва", "dinamo moscow"},
	{"шахтер", "shakhtar donetsk"},
	{"шахтар", "shakhtar donetsk"},
	{"shakhtar", "shakhtar donetsk"},
	{"динамо киев", "dynamo kyiv"},
	{"динамо київ", "dynamo kyiv"},
	{"dynamo kyiv", "dynamo kyiv"},

	// Rest of Europe
	{"ajax", "ajax"},
	{"аякс", "ajax"},
	{"psv", "psv eindhoven"},
	{"псв", "psv eindhoven"},
	{"feyenoord", "feyenoord"},
	{"benfica", "benfica"},
	{"бенфика", "benfica"},
	{"porto", "fc porto"},
	{"порту", "fc porto"},
	{"sporting", "sporting cp"},
	{"спортинг", "sporting cp"},
	{"galatasaray", "galatasaray"},
	{"галатасарай", "galatasaray"},
	{"fenerbahçe", "fenerbahce"},
	{"fenerbahce", "fenerbahce"},
	{"фенербахче", "fenerbahce"},
	{"beşiktaş", "besiktas"},
	{"besiktas", "besiktas"},
	{"celtic", "celtic"},
	{"селтик", "celtic"},
	{"rangers", "rangers"},

	// Elsewhere
	{"al hilal", "al-hilal"},
	{"al-hilal", "al-hilal"},
	{"аль-хиляль", "al-hilal"},
	{"al nassr", "al-nassr"},
	{"al-nassr", "al-nassr"},
	{"аль-наср", "al-nassr"},
	{"inter miami", "inter miami"},
	{"интер майами", "inter miami"},
	{"flamengo", "flamengo"},
	{"фламенго", "flamengo"},
	{"boca juniors", "boca juniors"},
	{"бока хуниорс", "boca juniors"},
	{"river plate", "river plate"},
	{"ривер плейт", "river plate"},

	// Short Latin-script forms and CJK names
	{"皇马", "real madrid"},
	{"巴萨", "barcelona"},
	{"曼联", "manchester united"},
	{"曼城", "manchester city"},
	{"利物浦", "liverpool"},
	{"拜仁", "bayern munich"},
}
