package lang

// disasterTypes names the disaster categories the safety guides cover.
var disasterTypes = map[string]map[string]string{
	"earthquake": {
		"ja":      "地震",
		"en":      "Earthquake",
		"zh":      "地震",
		"ko":      "지진",
		"vi":      "Động đất",
		"easy_ja": "じしん",
	},
	"tsunami": {
		"ja":      "津波",
		"en":      "Tsunami",
		"zh":      "海啸",
		"ko":      "쓰나미",
		"vi":      "Sóng thần",
		"easy_ja": "つなみ",
	},
	"flood": {
		"ja":      "洪水",
		"en":      "Flood",
		"zh":      "洪水",
		"ko":      "홍수",
		"vi":      "Lũ lụt",
		"easy_ja": "こうずい",
	},
	"typhoon": {
		"ja":      "台風",
		"en":      "Typhoon",
		"zh":      "台风",
		"ko":      "태풍",
		"vi":      "Bão",
		"easy_ja": "たいふう",
	},
	"volcano": {
		"ja":      "火山噴火",
		"en":      "Volcanic Eruption",
		"zh":      "火山喷发",
		"ko":      "화산 분화",
		"vi":      "Núi lửa phun trào",
		"easy_ja": "かざんの ふんか",
	},
	"landslide": {
		"ja":      "土砂災害",
		"en":      "Landslide",
		"zh":      "泥石流灾害",
		"ko":      "토사 재해",
		"vi":      "Sạt lở đất",
		"easy_ja": "どしゃさいがい",
	},
}

// DisasterType looks up the display name of a disaster category.
func DisasterType(kind, target string) (string, bool) {
	row, ok := disasterTypes[kind]
	if !ok {
		return "", false
	}
	v, ok := row[target]
	return v, ok
}

// IsDisasterType reports whether the category is one the service knows.
func IsDisasterType(kind string) bool {
	_, ok := disasterTypes[kind]
	return ok
}

// DisasterTypes returns the category -> Japanese name map used by the
// guide type listing.
func DisasterTypes() map[string]string {
	out := make(map[string]string, len(disasterTypes))
	for kind, row := range disasterTypes {
		out[kind] = row["ja"]
	}
	return out
}
