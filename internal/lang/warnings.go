package lang

import "strings"

// warningCode is one JMA warning or advisory code with its static
// translations and severity class.
type warningCode struct {
	names    map[string]string
	severity string
}

// warningCodes maps the JMA code table. Codes 02-08 are warnings, 10-26
// advisories, 32-38 emergency warnings.
var warningCodes = map[string]warningCode{
	"02": {names: map[string]string{"ja": "暴風雪警報", "en": "Blizzard Warning", "zh": "暴风雪警报", "ko": "폭풍설 경보", "vi": "Cảnh báo bão tuyết", "easy_ja": "ふぶき けいほう"}, severity: "high"},
	"03": {names: map[string]string{"ja": "大雨警報", "en": "Heavy Rain Warning", "zh": "大雨警报", "ko": "호우 경보", "vi": "Cảnh báo mưa lớn", "easy_ja": "おおあめ けいほう"}, severity: "high"},
	"04": {names: map[string]string{"ja": "洪水警報", "en": "Flood Warning", "zh": "洪水警报", "ko": "홍수 경보", "vi": "Cảnh báo lũ lụt", "easy_ja": "こうずい けいほう"}, severity: "high"},
	"05": {names: map[string]string{"ja": "暴風警報", "en": "Storm Warning", "zh": "暴风警报", "ko": "폭풍 경보", "vi": "Cảnh báo bão", "easy_ja": "ぼうふう けいほう"}, severity: "high"},
	"06": {names: map[string]string{"ja": "大雪警報", "en": "Heavy Snow Warning", "zh": "大雪警报", "ko": "대설 경보", "vi": "Cảnh báo tuyết lớn", "easy_ja": "おおゆき けいほう"}, severity: "high"},
	"07": {names: map[string]string{"ja": "波浪警報", "en": "High Waves Warning", "zh": "海浪警报", "ko": "파랑 경보", "vi": "Cảnh báo sóng lớn", "easy_ja": "なみ けいほう"}, severity: "high"},
	"08": {names: map[string]string{"ja": "高潮警報", "en": "Storm Surge Warning", "zh": "风暴潮警报", "ko": "해일 경보", "vi": "Cảnh báo triều cường", "easy_ja": "たかしお けいほう"}, severity: "high"},
	"10": {names: map[string]string{"ja": "大雨注意報", "en": "Heavy Rain Advisory", "zh": "大雨注意报", "ko": "호우 주의보", "vi": "Chú ý mưa lớn", "easy_ja": "おおあめ ちゅういほう"}, severity: "medium"},
	"12": {names: map[string]string{"ja": "大雪注意報", "en": "Heavy Snow Advisory", "zh": "大雪注意报", "ko": "대설 주의보", "vi": "Chú ý tuyết lớn", "easy_ja": "おおゆき ちゅういほう"}, severity: "medium"},
	"13": {names: map[string]string{"ja": "風雪注意報", "en": "Wind Snow Advisory", "zh": "风雪注意报", "ko": "풍설 주의보", "vi": "Chú ý gió tuyết", "easy_ja": "ふうせつ ちゅういほう"}, severity: "medium"},
	"14": {names: map[string]string{"ja": "雷注意報", "en": "Thunder Advisory", "zh": "雷电注意报", "ko": "뇌우 주의보", "vi": "Chú ý sấm sét", "easy_ja": "かみなり ちゅういほう"}, severity: "medium"},
	"15": {names: map[string]string{"ja": "強風注意報", "en": "Strong Wind Advisory", "zh": "强风注意报", "ko": "강풍 주의보", "vi": "Chú ý gió mạnh", "easy_ja": "つよいかぜ ちゅういほう"}, severity: "medium"},
	"16": {names: map[string]string{"ja": "波浪注意報", "en": "High Waves Advisory", "zh": "海浪注意报", "ko": "파랑 주의보", "vi": "Chú ý sóng lớn", "easy_ja": "なみ ちゅういほう"}, severity: "medium"},
	"17": {names: map[string]string{"ja": "融雪注意報", "en": "Snowmelt Advisory", "zh": "融雪注意报", "ko": "융설 주의보", "vi": "Chú ý tan tuyết", "easy_ja": "ゆきどけ ちゅういほう"}, severity: "medium"},
	"18": {names: map[string]string{"ja": "洪水注意報", "en": "Flood Advisory", "zh": "洪水注意报", "ko": "홍수 주의보", "vi": "Chú ý lũ lụt", "easy_ja": "こうずい ちゅういほう"}, severity: "medium"},
	"19": {names: map[string]string{"ja": "高潮注意報", "en": "Storm Surge Advisory", "zh": "风暴潮注意报", "ko": "해일 주의보", "vi": "Chú ý triều cường", "easy_ja": "たかしお ちゅういほう"}, severity: "medium"},
	"20": {names: map[string]string{"ja": "濃霧注意報", "en": "Dense Fog Advisory", "zh": "浓雾注意报", "ko": "짙은 안개 주의보", "vi": "Chú ý sương mù dày", "easy_ja": "きり ちゅういほう"}, severity: "low"},
	"21": {names: map[string]string{"ja": "乾燥注意報", "en": "Dry Air Advisory", "zh": "干燥注意报", "ko": "건조 주의보", "vi": "Chú ý không khí khô", "easy_ja": "かんそう ちゅういほう"}, severity: "low"},
	"22": {names: map[string]string{"ja": "なだれ注意報", "en": "Avalanche Advisory", "zh": "雪崩注意报", "ko": "눈사태 주의보", "vi": "Chú ý lở tuyết", "easy_ja": "なだれ ちゅういほう"}, severity: "medium"},
	"23": {names: map[string]string{"ja": "低温注意報", "en": "Low Temperature Advisory", "zh": "低温注意报", "ko": "저온 주의보", "vi": "Chú ý nhiệt độ thấp", "easy_ja": "さむさ ちゅういほう"}, severity: "low"},
	"24": {names: map[string]string{"ja": "霜注意報", "en": "Frost Advisory", "zh": "霜冻注意报", "ko": "서리 주의보", "vi": "Chú ý sương giá", "easy_ja": "しも ちゅういほう"}, severity: "low"},
	"25": {names: map[string]string{"ja": "着氷注意報", "en": "Icing Advisory", "zh": "结冰注意报", "ko": "착빙 주의보", "vi": "Chú ý đóng băng", "easy_ja": "こおり ちゅういほう"}, severity: "low"},
	"26": {names: map[string]string{"ja": "着雪注意報", "en": "Snow Accretion Advisory", "zh": "积雪注意报", "ko": "착설 주의보", "vi": "Chú ý tuyết bám", "easy_ja": "ゆき ちゅういほう"}, severity: "low"},
	"32": {names: map[string]string{"ja": "暴風雪特別警報", "en": "Blizzard Emergency Warning", "zh": "暴风雪特别警报", "ko": "폭풍설 특별 경보", "vi": "Cảnh báo khẩn cấp bão tuyết", "easy_ja": "ふぶき とくべつけいほう"}, severity: "extreme"},
	"33": {names: map[string]string{"ja": "大雨特別警報", "en": "Heavy Rain Emergency Warning", "zh": "大雨特别警报", "ko": "호우 특별 경보", "vi": "Cảnh báo khẩn cấp mưa lớn", "easy_ja": "おおあめ とくべつけいほう"}, severity: "extreme"},
	"35": {names: map[string]string{"ja": "暴風特別警報", "en": "Storm Emergency Warning", "zh": "暴风特别警报", "ko": "폭풍 특별 경보", "vi": "Cảnh báo khẩn cấp bão", "easy_ja": "ぼうふう とくべつけいほう"}, severity: "extreme"},
	"36": {names: map[string]string{"ja": "大雪特別警報", "en": "Heavy Snow Emergency Warning", "zh": "大雪特别警报", "ko": "대설 특별 경보", "vi": "Cảnh báo khẩn cấp tuyết lớn", "easy_ja": "おおゆき とくべつけいほう"}, severity: "extreme"},
	"37": {names: map[string]string{"ja": "波浪特別警報", "en": "High Waves Emergency Warning", "zh": "海浪特别警报", "ko": "파랑 특별 경보", "vi": "Cảnh báo khẩn cấp sóng lớn", "easy_ja": "なみ とくべつけいほう"}, severity: "extreme"},
	"38": {names: map[string]string{"ja": "高潮特別警報", "en": "Storm Surge Emergency Warning", "zh": "风暴潮特别警报", "ko": "해일 특별 경보", "vi": "Cảnh báo khẩn cấp triều cường", "easy_ja": "たかしお とくべつけいほう"}, severity: "extreme"},
}

// warningAreas translates the sub-area names that appear in warning
// bulletins for the Tokyo region.
var warningAreas = map[string]map[string]string{
	"東京地方":   {"en": "Tokyo Area", "zh": "东京地区", "ko": "도쿄 지역", "vi": "Khu vực Tokyo", "easy_ja": "とうきょう"},
	"伊豆諸島北部": {"en": "Northern Izu Islands", "zh": "伊豆诸岛北部", "ko": "이즈 제도 북부", "vi": "Bắc quần đảo Izu", "easy_ja": "いずしょとう きたぶ"},
	"伊豆諸島南部": {"en": "Southern Izu Islands", "zh": "伊豆诸岛南部", "ko": "이즈 제도 남부", "vi": "Nam quần đảo Izu", "easy_ja": "いずしょとう みなみぶ"},
	"小笠原諸島":  {"en": "Ogasawara Islands", "zh": "小笠原诸岛", "ko": "오가사와라 제도", "vi": "Quần đảo Ogasawara", "easy_ja": "おがさわらしょとう"},
}

// warningDescriptions are sentence templates for warning announcements.
var warningDescriptions = map[string]string{
	"ja":      "{area}に{warning}が発表されています。",
	"en":      "{warning} has been issued for {area}.",
	"zh":      "{area}发布了{warning}。",
	"ko":      "{area}에 {warning}이(가) 발령되었습니다.",
	"vi":      "{warning} đã được ban hành cho {area}.",
	"easy_ja": "{area}に {warning}が でています。",
}

// KnownWarningCode reports whether the JMA code is in the table.
func KnownWarningCode(code string) bool {
	_, ok := warningCodes[code]
	return ok
}

// WarningName resolves a warning code in the target language, falling back
// to English and then Japanese. Unknown codes yield an empty string.
func WarningName(code, target string) string {
	wc, ok := warningCodes[code]
	if !ok {
		return ""
	}
	if name, ok := wc.names[target]; ok {
		return name
	}
	if name, ok := wc.names["en"]; ok {
		return name
	}
	return wc.names["ja"]
}

// WarningSeverity returns the severity class of a warning code, or an
// empty string for unknown codes.
func WarningSeverity(code string) string {
	return warningCodes[code].severity
}

// WarningArea translates a warning sub-area name, keeping the Japanese
// name when no translation is registered.
func WarningArea(name, target string) string {
	if target == Default {
		return name
	}
	if row, ok := warningAreas[name]; ok {
		if v, ok := row[target]; ok {
			return v
		}
	}
	return name
}

// WarningDescription renders the announcement sentence for a warning in
// the target language, falling back to the English template.
func WarningDescription(area, warning, target string) string {
	tmpl, ok := warningDescriptions[target]
	if !ok {
		tmpl = warningDescriptions["en"]
	}
	r := strings.NewReplacer("{area}", area, "{warning}", warning)
	return r.Replace(tmpl)
}
