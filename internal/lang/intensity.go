package lang

// intensityTable translates the split JMA intensity grades. Numeric grades
// (0 through 4 and 7) read the same in every language and fall through to
// the source value.
var intensityTable = map[string]map[string]string{
	"5弱": {
		"en":      "5 Lower",
		"zh":      "5弱",
		"ko":      "5약",
		"vi":      "5 yếu",
		"easy_ja": "5じゃく",
	},
	"5強": {
		"en":      "5 Upper",
		"zh":      "5强",
		"ko":      "5강",
		"vi":      "5 mạnh",
		"easy_ja": "5きょう",
	},
	"6弱": {
		"en":      "6 Lower",
		"zh":      "6弱",
		"ko":      "6약",
		"vi":      "6 yếu",
		"easy_ja": "6じゃく",
	},
	"6強": {
		"en":      "6 Upper",
		"zh":      "6强",
		"ko":      "6강",
		"vi":      "6 mạnh",
		"easy_ja": "6きょう",
	},
}

// Intensity looks up a seismic intensity grade in the target language.
func Intensity(grade, target string) (string, bool) {
	row, ok := intensityTable[grade]
	if !ok {
		return "", false
	}
	v, ok := row[target]
	return v, ok
}
