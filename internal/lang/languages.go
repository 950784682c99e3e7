package lang

// Default is the source language of all upstream feeds.
const Default = "ja"

// nativeNames maps every supported language code to its self-designation.
// This is the set the public API advertises.
var nativeNames = map[string]string{
	"ja":      "日本語",
	"en":      "English",
	"zh":      "简体中文",
	"zh-TW":   "繁體中文",
	"ko":      "한국어",
	"vi":      "Tiếng Việt",
	"th":      "ภาษาไทย",
	"id":      "Bahasa Indonesia",
	"ms":      "Bahasa Melayu",
	"tl":      "Filipino",
	"fr":      "Français",
	"de":      "Deutsch",
	"it":      "Italiano",
	"es":      "Español",
	"ne":      "नेपाली",
	"easy_ja": "やさしい日本語",
}

// displayNames are the English names used when asking an AI model for a
// translation ("Translate ... to Korean").
var displayNames = map[string]string{
	"ja":      "Japanese",
	"en":      "English",
	"zh":      "Chinese (Simplified)",
	"zh-TW":   "Chinese (Traditional)",
	"ko":      "Korean",
	"vi":      "Vietnamese",
	"th":      "Thai",
	"id":      "Indonesian",
	"ms":      "Malay",
	"tl":      "Filipino",
	"fr":      "French",
	"de":      "German",
	"it":      "Italian",
	"es":      "Spanish",
	"ne":      "Nepali",
	"easy_ja": "Simple Japanese",
}

// staticallyCovered are the languages every static table carries. The
// remaining languages go through the AI path for generated text.
var staticallyCovered = map[string]bool{
	"ja":      true,
	"en":      true,
	"zh":      true,
	"ko":      true,
	"vi":      true,
	"easy_ja": true,
}

// Supported returns the code -> native name map of all supported languages.
func Supported() map[string]string {
	out := make(map[string]string, len(nativeNames))
	for code, name := range nativeNames {
		out[code] = name
	}
	return out
}

func IsSupported(code string) bool {
	_, ok := nativeNames[code]
	return ok
}

// DisplayName returns the English name of a language for use in prompts.
// Unknown codes are returned as-is.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return code
}

// NativeName returns the language's self-designation, or the code itself
// when unknown.
func NativeName(code string) string {
	if name, ok := nativeNames[code]; ok {
		return name
	}
	return code
}

// StaticallyCovered reports whether the warning tables carry this language
// directly, without an AI round trip.
func StaticallyCovered(code string) bool {
	return staticallyCovered[code]
}
