package lang

// tsunamiTable covers the six tsunami statuses the quake feed reports.
var tsunamiTable = map[string]map[string]string{
	"なし": {
		"en":      "None",
		"zh":      "无",
		"ko":      "없음",
		"vi":      "Không có",
		"easy_ja": "なし",
	},
	"不明": {
		"en":      "Unknown",
		"zh":      "不明",
		"ko":      "불명",
		"vi":      "Không rõ",
		"easy_ja": "わかりません",
	},
	"調査中": {
		"en":      "Under investigation",
		"zh":      "调查中",
		"ko":      "조사 중",
		"vi":      "Đang điều tra",
		"easy_ja": "しらべています",
	},
	"若干の海面変動": {
		"en":      "Slight sea level change",
		"zh":      "轻微海面变动",
		"ko":      "약간의 해수면 변동",
		"vi":      "Mực nước biển thay đổi nhẹ",
		"easy_ja": "うみの みずが すこし うごきます",
	},
	"津波注意報": {
		"en":      "Tsunami Advisory",
		"zh":      "海啸注意报",
		"ko":      "쓰나미 주의보",
		"vi":      "Chú ý sóng thần",
		"easy_ja": "つなみ ちゅういほう",
	},
	"津波警報": {
		"en":      "Tsunami Warning",
		"zh":      "海啸警报",
		"ko":      "쓰나미 경보",
		"vi":      "Cảnh báo sóng thần",
		"easy_ja": "つなみ けいほう",
	},
}

// TsunamiLevel looks up a tsunami status string in the target language.
func TsunamiLevel(status, target string) (string, bool) {
	row, ok := tsunamiTable[status]
	if !ok {
		return "", false
	}
	v, ok := row[target]
	return v, ok
}
