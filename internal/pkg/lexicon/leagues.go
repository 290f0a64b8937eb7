package lexicon

// Provider league ids (API-Football).
const (
	LeagueWorldCup         = 1
	LeagueChampionsLeague  = 2
	LeagueEuropaLeague     = 3
	LeagueEuro             = 4
	LeagueLigue1           = 61
	LeagueBrasileirao      = 71
	LeagueBundesliga       = 78
	LeagueEredivisie       = 88
	LeaguePrimeiraLiga     = 94
	LeagueArgentina        = 128
	LeagueSerieA           = 135
	LeagueLaLiga           = 140
	LeagueBelgianPro       = 144
	LeagueScottishPrem     = 179
	LeagueSuperLig         = 203
	LeagueRussianPremier   = 235
	LeagueMLS              = 253
	LeagueSaudiPro         = 307
	LeagueUkrainianPremier = 333
	LeaguePremierLeague    = 39
	LeagueChampionship     = 40
	LeagueFACup            = 45
	LeagueConferenceLeague = 848
)

// leagueTable is declaration-ordered. Matching is whole-word, so Russian and
// Ukrainian names are listed in each case form users type ("лига чемпионов",
// "лиги чемпионов", "лигу чемпионов"). LeagueKeywords re-sorts it by length,
// so "российская премьер-лига" wins over "премьер-лига" and
// "russian premier league" over "premier league".
var leagueTable = []LeagueKeyword{
	// England
	{"premier league", LeaguePremierLeague},
	{"english premier league", LeaguePremierLeague},
	{"epl", LeaguePremierLeague},
	{"apl", LeaguePremierLeague},
	{"апл", LeaguePremierLeague},
	{"премьер-лига", LeaguePremierLeague},
	{"премьер лига", LeaguePremierLeague},
	{"премьер-лиги", LeaguePremierLeague},
	{"премьер-лигу", LeaguePremierLeague},
	{"премьер-лиге", LeaguePremierLeague},
	{"премьер лиги", LeaguePremierLeague},
	{"премьер лигу", LeaguePremierLeague},
	{"премьер лиге", LeaguePremierLeague},
	{"английскую премьер-лигу", LeaguePremierLeague},
	{"английской премьер-лиге", LeaguePremierLeague},
	{"английская премьер-лига", LeaguePremierLeague},
	{"английской премьер-лиги", LeaguePremierLeague},
	{"англия", LeaguePremierLeague},
	{"англии", LeaguePremierLeague},
	{"англійська прем'єр-ліга", LeaguePremierLeague},
	{"прем'єр-ліга", LeaguePremierLeague},
	{"прем'єр-ліги", LeaguePremierLeague},
	{"прем'єр-лігу", LeaguePremierLeague},
	{"прем'єр-лізі", LeaguePremierLeague},
	{"premier lig", LeaguePremierLeague},
	{"ingiltere", LeaguePremierLeague},
	{"liga inglesa", LeaguePremierLeague},
	{"premier inglesa", LeaguePremierLeague},
	{"championnat d'angleterre", LeaguePremierLeague},
	{"englische liga", LeaguePremierLeague},
	{"الدوري الإنجليزي", LeaguePremierLeague},
	{"英超", LeaguePremierLeague},
	{"championship", LeagueChampionship},
	{"чемпионшип", LeagueChampionship},
	{"чемпионшипа", LeagueChampionship},
	{"чемпионшипе", LeagueChampionship},
	{"fa cup", LeagueFACup},
	{"кубок англии", LeagueFACup},
	{"кубка англии", LeagueFACup},
	{"кубке англии", LeagueFACup},

	// Spain
	{"la liga", LeagueLaLiga},
	{"laliga", LeagueLaLiga},
	{"primera division", LeagueLaLiga},
	{"primera división", LeagueLaLiga},
	{"ла лига", LeagueLaLiga},
	{"ла лиги", LeagueLaLiga},
	{"ла лигу", LeagueLaLiga},
	{"ла лиге", LeagueLaLiga},
	{"примера", LeagueLaLiga},
	{"испания", LeagueLaLiga},
	{"испании", LeagueLaLiga},
	{"іспанія", LeagueLaLiga},
	{"liga española", LeagueLaLiga},
	{"spanish league", LeagueLaLiga},
	{"ispanya", LeagueLaLiga},
	{"الدوري الإسباني", LeagueLaLiga},
	{"西甲", LeagueLaLiga},

	// Italy
	{"serie a", LeagueSerieA},
	{"серия а", LeagueSerieA},
	{"серии а", LeagueSerieA},
	{"серию а", LeagueSerieA},
	{"серії а", LeagueSerieA},
	{"серія а", LeagueSerieA},
	{"италия", LeagueSerieA},
	{"италии", LeagueSerieA},
	{"італія", LeagueSerieA},
	{"calcio", LeagueSerieA},
	{"italian league", LeagueSerieA},
	{"italya", LeagueSerieA},
	{"الدوري الإيطالي", LeagueSerieA},
	{"意甲", LeagueSerieA},

	// Germany
	{"bundesliga", LeagueBundesliga},
	{"бундеслига", LeagueBundesliga},
	{"бундеслиги", LeagueBundesliga},
	{"бундеслигу", LeagueBundesliga},
	{"бундеслиге", LeagueBundesliga},
	{"бундесліги", LeagueBundesliga},
	{"бундесліга", LeagueBundesliga},
	{"германия", LeagueBundesliga},
	{"германии", LeagueBundesliga},
	{"німеччина", LeagueBundesliga},
	{"almanya", LeagueBundesliga},
	{"german league", LeagueBundesliga},
	{"الدوري الألماني", LeagueBundesliga},
	{"德甲", LeagueBundesliga},

	// France
	{"ligue 1", LeagueLigue1},
	{"ligue1", LeagueLigue1},
	{"лига 1", LeagueLigue1},
	{"лига 1 франции", LeagueLigue1},
	{"лиги 1", LeagueLigue1},
	{"лигу 1", LeagueLigue1},
	{"лиге 1", LeagueLigue1},
	{"франция", LeagueLigue1},
	{"франции", LeagueLigue1},
	{"франція", LeagueLigue1},
	{"french league", LeagueLigue1},
	{"fransa", LeagueLigue1},
	{"الدوري الفرنسي", LeagueLigue1},
	{"法甲", LeagueLigue1},

	// UEFA
	{"champions league", LeagueChampionsLeague},
	{"ucl", LeagueChampionsLeague},
	{"лига чемпионов", LeagueChampionsLeague},
	{"лиги чемпионов", LeagueChampionsLeague},
	{"лигу чемпионов", LeagueChampionsLeague},
	{"лиге чемпионов", LeagueChampionsLeague},
	{"лігу чемпіонів", LeagueChampionsLeague},
	{"ліги чемпіонів", LeagueChampionsLeague},
	{"лізі чемпіонів", LeagueChampionsLeague},
	{"лч", LeagueChampionsLeague},
	{"ліга чемпіонів", LeagueChampionsLeague},
	{"liga de campeones", LeagueChampionsLeague},
	{"champions", LeagueChampionsLeague},
	{"liga dos campeões", LeagueChampionsLeague},
	{"ligue des champions", LeagueChampionsLeague},
	{"champions-league", LeagueChampionsLeague},
	{"champions lig", LeagueChampionsLeague},
	{"şampiyonlar ligi", LeagueChampionsLeague},
	{"liga mistrzów", LeagueChampionsLeague},
	{"دوري أبطال أوروبا", LeagueChampionsLeague},
	{"欧冠", LeagueChampionsLeague},
	{"europa league", LeagueEuropaLeague},
	{"uel", LeagueEuropaLeague},
	{"лига европы", LeagueEuropaLeague},
	{"лиги европы", LeagueEuropaLeague},
	{"лигу европы", LeagueEuropaLeague},
	{"лиге европы", LeagueEuropaLeague},
	{"лігу європи", LeagueEuropaLeague},
	{"ліги європи", LeagueEuropaLeague},
	{"ліга європи", LeagueEuropaLeague},
	{"liga europa", LeagueEuropaLeague},
	{"ligue europa", LeagueEuropaLeague},
	{"avrupa ligi", LeagueEuropaLeague},
	{"الدوري الأوروبي", LeagueEuropaLeague},
	{"欧联", LeagueEuropaLeague},
	{"conference league", LeagueConferenceLeague},
	{"лига конференций", LeagueConferenceLeague},
	{"лиги конференций", LeagueConferenceLeague},
	{"лигу конференций", LeagueConferenceLeague},
	{"лиге конференций", LeagueConferenceLeague},
	{"ліга конференцій", LeagueConferenceLeague},
	{"konferans ligi", LeagueConferenceLeague},

	// Russia / Ukraine
	{"russian premier league", LeagueRussianPremier},
	{"рпл", LeagueRussianPremier},
	{"российская премьер-лига", LeagueRussianPremier},
	{"российской премьер-лиги", LeagueRussianPremier},
	{"российскую премьер-лигу", LeagueRussianPremier},
	{"российской премьер-лиге", LeagueRussianPremier},
	{"российской премьер лиги", LeagueRussianPremier},
	{"российская премьер лига", LeagueRussianPremier},
	{"чемпионат россии", LeagueRussianPremier},
	{"чемпионата россии", LeagueRussianPremier},
	{"чемпионате россии", LeagueRussianPremier},
	{"россии", LeagueRussianPremier},
	{"россия", LeagueRussianPremier},
	{"рфпл", LeagueRussianPremier},
	{"упл", LeagueUkrainianPremier},
	{"українська прем'єр-ліга", LeagueUkrainianPremier},
	{"української прем'єр-ліги", LeagueUkrainianPremier},
	{"чемпіонат україни", LeagueUkrainianPremier},
	{"ukrainian premier league", LeagueUkrainianPremier},

	// Rest of Europe
	{"eredivisie", LeagueEredivisie},
	{"эредивизи", LeagueEredivisie},
	{"нидерланды", LeagueEredivisie},
	{"нидерландов", LeagueEredivisie},
	{"primeira liga", LeaguePrimeiraLiga},
	{"liga portugal", LeaguePrimeiraLiga},
	{"примейра", LeaguePrimeiraLiga},
	{"примейры", LeaguePrimeiraLiga},
	{"португалия", LeaguePrimeiraLiga},
	{"португалии", LeaguePrimeiraLiga},
	{"super lig", LeagueSuperLig},
	{"süper lig", LeagueSuperLig},
	{"суперлига турции", LeagueSuperLig},
	{"турция", LeagueSuperLig},
	{"турции", LeagueSuperLig},
	{"jupiler pro league", LeagueBelgianPro},
	{"belgian pro league", LeagueBelgianPro},
	{"бельгия", LeagueBelgianPro},
	{"scottish premiership", LeagueScottishPrem},
	{"шотландия", LeagueScottishPrem},

	// Americas / Asia
	{"brasileirao", LeagueBrasileirao},
	{"brasileirão", LeagueBrasileirao},
	{"serie a brazil", LeagueBrasileirao},
	{"бразилия", LeagueBrasileirao},
	{"liga profesional", LeagueArgentina},
	{"аргентина", LeagueArgentina},
	{"mls", LeagueMLS},
	{"млс", LeagueMLS},
	{"saudi pro league", LeagueSaudiPro},
	{"roshn", LeagueSaudiPro},
	{"саудовская", LeagueSaudiPro},
	{"الدوري السعودي", LeagueSaudiPro},
	{"دوري روشن", LeagueSaudiPro},

	// National teams
	{"world cup", LeagueWorldCup},
	{"чемпионат мира", LeagueWorldCup},
	{"чемпионата мира", LeagueWorldCup},
	{"чемпионате мира", LeagueWorldCup},
	{"чм", LeagueWorldCup},
	{"mundial", LeagueWorldCup},
	{"copa do mundo", LeagueWorldCup},
	{"coupe du monde", LeagueWorldCup},
	{"weltmeisterschaft", LeagueWorldCup},
	{"dünya kupası", LeagueWorldCup},
	{"كأس العالم", LeagueWorldCup},
	{"世界杯", LeagueWorldCup},
	{"euro 2028", LeagueEuro},
	{"чемпионат европы", LeagueEuro},
	{"чемпионата европы", LeagueEuro},
	{"чемпионате европы", LeagueEuro},
	{"евро", LeagueEuro},
	{"eurocopa", LeagueEuro},
}

var leagueNames = []struct {
	id   int
	name string
}{
	{LeaguePremierLeague, "Premier League"},
	{LeagueLaLiga, "La Liga"},
	{LeagueSerieA, "Serie A"},
	{LeagueBundesliga, "Bundesliga"},
	{LeagueLigue1, "Ligue 1"},
	{LeagueChampionsLeague, "UEFA Champions League"},
	{LeagueEuropaLeague, "UEFA Europa League"},
	{LeagueConferenceLeague, "UEFA Europa Conference League"},
	{LeagueRussianPremier, "Russian Premier League"},
	{LeagueUkrainianPremier, "Ukrainian Premier League"},
	{LeagueEredivisie, "Eredivisie"},
	{LeaguePrimeiraLiga, "Primeira Liga"},
	{LeagueSuperLig, "Süper Lig"},
	{LeagueBelgianPro, "Jupiler Pro League"},
	{LeagueScottishPrem, "Premiership"},
	{LeagueChampionship, "Championship"},
	{LeagueFACup, "FA Cup"},
	{LeagueBrasileirao, "Serie A (Brazil)"},
	{LeagueArgentina, "Liga Profesional Argentina"},
	{LeagueMLS, "Major League Soccer"},
	{LeagueSaudiPro, "Pro League (Saudi Arabia)"},
	{LeagueWorldCup, "World Cup"},
	{LeagueEuro, "Euro Championship"},
}

var topLeagues = []int{
	LeagueChampionsLeague,
	LeaguePremierLeague,
	LeagueLaLiga,
	LeagueSerieA,
	LeagueBundesliga,
	LeagueLigue1,
	LeagueEuropaLeague,
	LeagueConferenceLeague,
	LeagueRussianPremier,
	LeagueEredivisie,
	LeaguePrimeiraLiga,
	LeagueSuperLig,
	LeagueWorldCup,
	LeagueEuro,
}
