package lexicon

var todayWords = []string{
	// en
	"today", "tonight",
	// ru
	"сегодня", "сегодняшние", "сегодняшний", "сегодняшних", "седня",
	// uk
	"сьогодні",
	// es
	"hoy", "esta noche",
	// pt
	"hoje",
	// fr
	"aujourd'hui", "ce soir",
	// de
	"heute",
	// it
	"oggi", "stasera",
	// tr
	"bugün", "bu akşam",
	// pl
	"dzisiaj", "dziś",
	// nl
	"vandaag",
	// ar
	"اليوم",
	// id
	"hari ini",
	// vi
	"hôm nay",
	// zh
	"今天", "今日",
	// hi
	"आज",
	// uz / kk
	"bugun", "бүгін",
}

var tomorrowWords = []string{
	"tomorrow",
	"завтра", "завтрашние", "завтрашний", "завтрашних",
	"mañana",
	"amanhã",
	"demain",
	"morgen",
	"domani",
	"yarın",
	"jutro",
	"غدا", "غداً", "بكرة",
	"besok",
	"ngày mai",
	"明天", "明日",
	"कल",
	"ertaga", "ертең",
}

var liveWords = []string{
	"live", "in play", "in-play", "playing now", "right now",
	"лайв", "сейчас идут", "идут сейчас", "в прямом эфире", "в эфире", "онлайн",
	"наживо", "зараз",
	"en vivo", "en directo",
	"ao vivo",
	"en direct",
	"in diretta",
	"canlı",
	"na żywo",
	"langsung",
	"trực tiếp",
	"直播",
	"مباشر",
	"लाइव",
}

var bestBetWords = []string{
	"best bet", "best bets", "bet of the day", "sure bet", "what to bet", "tip", "tips",
	"prediction", "predictions",
	"прогноз", "прогнозы", "прогноз дня", "ставка", "ставки", "ставку", "ставка дня",
	"что поставить", "на что поставить", "экспресс",
	"прогнози", "що поставити",
	"pronóstico", "pronósticos", "apuesta", "apuestas",
	"palpite", "palpites", "aposta",
	"pronostic", "pronostics", "pari",
	"tipp", "tipps", "wette",
	"pronostico", "pronostici", "scommessa",
	"tahmin", "iddaa", "kupon",
	"typ", "typy", "zakład",
	"voorspelling",
	"توقع", "توقعات", "رهان",
	"prediksi", "taruhan",
	"dự đoán", "kèo",
	"预测", "推荐",
	"भविष्यवाणी",
}

var noisePrefixes = []string{
	"match", "game", "predict", "prediction for", "tip for", "tips for", "odds for",
	"who will win", "who wins", "bet on",
	"матч", "игра", "прогноз на матч", "прогноз на", "ставка на", "ставки на",
	"коэффициенты на", "кэфы на", "кто выиграет", "кто победит",
	"хто виграє",
	"partido", "pronóstico para", "quién gana",
	"jogo", "palpite para", "quem ganha",
	"pronostic pour", "qui va gagner",
	"spiel", "tipp für", "wer gewinnt",
	"partita", "pronostico per", "chi vince",
	"maç", "mecz", "typ na", "wedstrijd",
}

var noiseSuffixes = []string{
	"odds", "bet", "bets", "preview", "match", "game", "result", "score",
	"коэффициенты", "кэфы", "кэф", "матч", "счет", "счёт",
	"коефіцієнти",
	"cuotas", "partido",
	"jogo",
	"cotes", "quoten", "quote", "spiel", "partita",
	"oranları", "maçı", "kursy",
}

// stopWords never name a club on their own. A captured name made only of
// these (and day, live or tip words) is rejected.
var stopWords = []string{
	// en
	"a", "an", "the", "for", "any", "some", "what", "which", "who", "whom", "how", "when", "where",
	"is", "are", "was", "be", "do", "does", "did", "can", "could", "should", "would", "will",
	"i", "me", "my", "we", "us", "you", "your", "it", "this", "that", "these", "those", "there",
	"to", "of", "on", "in", "at", "by", "with", "and", "or", "about", "please", "pls",
	"best", "good", "top", "safe", "bet", "pick", "picks", "idea", "ideas", "advice", "think",
	// ru
	"на", "в", "во", "с", "со", "к", "по", "за", "для", "о", "об", "про", "и", "или", "а", "но",
	"что", "какой", "какая", "какие", "какую", "кто", "как", "где", "когда", "есть", "будет",
	"я", "мне", "мы", "нам", "ты", "вы", "вам", "это", "этот", "эта", "эти", "там", "тут",
	"лучшая", "лучший", "лучшие", "лучшую", "хорошая", "надежная", "надёжная", "идеи", "идея",
	"посоветуй", "подскажи", "подскажите", "пожалуйста", "думаете", "думаешь",
	// uk
	"що", "який", "яка", "які", "хто", "як", "найкраща", "найкращий",
	// es / pt / it / fr / de
	"el", "la", "los", "las", "de", "del", "para", "por", "que", "qué", "mejor", "algún", "alguna",
	"o", "os", "as", "um", "uma", "melhor", "il", "lo", "di", "per", "che", "migliore",
	"le", "les", "du", "des", "pour", "quel", "quelle", "meilleur", "meilleure",
	"der", "die", "das", "für", "welche", "beste", "bester",
	// tr / pl
	"için", "en", "iyi", "ne", "dla", "jaki", "jaka", "najlepszy", "najlepsza",
}
