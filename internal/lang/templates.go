package lang

import (
	"regexp"
	"strings"
)

// templateFamily is one recurring announcement pattern. Families are kept
// in a slice because matching is order-sensitive: the first family whose
// keywords appear in the input wins.
type templateFamily struct {
	key  string
	text map[string]string
}

// templateKeywords are the markers scanned for inside each family's
// Japanese text. A family only matches on keywords it actually contains.
var templateKeywords = []string{"地震", "津波", "避難", "警報", "注意報"}

var templates = []templateFamily{
	{
		key: "earthquake_notice",
		text: map[string]string{
			"ja":      "地震が発生しました。身の安全を確保してください。",
			"en":      "An earthquake has occurred. Please ensure your safety.",
			"zh":      "发生了地震。请确保自身安全。",
			"ko":      "지진이 발생했습니다. 몸의 안전을 확보하세요.",
			"vi":      "Đã xảy ra động đất. Hãy đảm bảo an toàn cho bản thân.",
			"easy_ja": "じしんが ありました。あんぜんな ところに いてください。",
		},
	},
	{
		key: "tsunami_warning",
		text: map[string]string{
			"ja":      "【津波警報】沿岸部の方は直ちに高台に避難してください。",
			"en":      "[Tsunami Warning] Please evacuate to higher ground immediately if you are near the coast.",
			"zh":      "【海啸警报】沿海地区人员请立即撤离到高处。",
			"ko":      "[쓰나미 경보] 해안가에 계신 분은 즉시 높은 곳으로 대피하세요.",
			"vi":      "[Cảnh báo sóng thần] Nếu ở gần bờ biển, hãy sơ tán ngay lên vùng đất cao.",
			"easy_ja": "【つなみ けいほう】うみの ちかくの ひとは すぐに たかい ところへ にげてください。",
		},
	},
	{
		key: "evacuation_order",
		text: map[string]string{
			"ja":      "【避難指示】対象地域の方は速やかに避難してください。",
			"en":      "[Evacuation Order] Residents of the affected area, please evacuate immediately.",
			"zh":      "【避难指示】对象地区的人员请尽快避难。",
			"ko":      "[대피 지시] 대상 지역 주민은 신속히 대피하세요.",
			"vi":      "[Lệnh sơ tán] Người dân khu vực bị ảnh hưởng hãy sơ tán ngay.",
			"easy_ja": "【ひなん してください】あぶない ちいきの ひとは はやく にげてください。",
		},
	},
	{
		key: "no_tsunami_risk",
		text: map[string]string{
			"ja":      "この地震による津波の心配はありません。",
			"en":      "There is no tsunami risk from this earthquake.",
			"zh":      "此次地震无海啸风险。",
			"ko":      "이 지진으로 인한 쓰나미 우려는 없습니다.",
			"vi":      "Không có nguy cơ sóng thần từ trận động đất này.",
			"easy_ja": "この じしんで つなみは きません。",
		},
	},
	{
		key: "shelter_notice",
		text: map[string]string{
			"ja":      "最寄りの避難所は{name}です。距離は約{distance}kmです。",
			"en":      "The nearest shelter is {name}, about {distance} km away.",
			"zh":      "最近的避难所是{name}，距离约{distance}公里。",
			"ko":      "가장 가까운 대피소는 {name}이며, 약 {distance}km 거리입니다.",
			"vi":      "Nơi trú ẩn gần nhất là {name}, cách khoảng {distance} km.",
			"easy_ja": "いちばん ちかい ひなんじょは {name}です。{distance}kmくらい はなれています。",
		},
	},
}

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// MatchTemplate scans the input for template-family keywords and returns
// the matching family's text in the target language. Families that match
// but lack the target language are skipped.
func MatchTemplate(text, target string) (string, bool) {
	for _, fam := range templates {
		ja := fam.text["ja"]
		if !containsFamilyKeyword(text, ja) {
			continue
		}
		if v, ok := fam.text[target]; ok {
			return v, true
		}
	}
	return "", false
}

func containsFamilyKeyword(text, jaTemplate string) bool {
	for _, kw := range templateKeywords {
		if strings.Contains(jaTemplate, kw) && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Template renders a family by key in the target language, falling back
// to Japanese when the language has no entry. Placeholders are filled from
// args; if any placeholder remains unfilled the raw template is returned.
func Template(key, target string, args map[string]string) (string, bool) {
	var fam *templateFamily
	for i := range templates {
		if templates[i].key == key {
			fam = &templates[i]
			break
		}
	}
	if fam == nil {
		return "", false
	}
	tmpl, ok := fam.text[target]
	if !ok || tmpl == "" {
		tmpl, ok = fam.text["ja"]
		if !ok {
			return "", false
		}
	}

	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	out := strings.NewReplacer(pairs...).Replace(tmpl)
	if placeholderPattern.MatchString(out) {
		return tmpl, true
	}
	return out, true
}
