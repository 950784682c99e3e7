package domain

// VolcanoInfo is one volcano from the JMA constant list.
type VolcanoInfo struct {
	Code              int     `json:"code"`
	Name              string  `json:"name"`
	NameEN            string  `json:"name_en,omitempty"`
	Latitude          float64 `json:"latitude,omitempty"`
	Longitude         float64 `json:"longitude,omitempty"`
	AlertLevel        int     `json:"alert_level,omitempty"`
	AlertLevelText    string  `json:"alert_level_text,omitempty"`
	IsMonitored       bool    `json:"is_monitored"`
	LastUpdated       string  `json:"last_updated,omitempty"`
	Message           string  `json:"message,omitempty"`
	MessageTranslated string  `json:"message_translated,omitempty"`
}

// VolcanoWarning is an active eruption alert for a monitored volcano.
type VolcanoWarning struct {
	VolcanoCode    int      `json:"volcano_code"`
	VolcanoName    string   `json:"volcano_name,omitempty"`
	AlertLevel     int      `json:"alert_level"`
	AlertLevelName string   `json:"alert_level_name"`
	Severity       Severity `json:"severity"`
	Action         string   `json:"action"`
	IssuedAt       string   `json:"issued_at"`
	Headline       string   `json:"headline,omitempty"`
}

// VolcanoAlertLevel describes one step of the JMA eruption alert scale.
type VolcanoAlertLevel struct {
	Name     string
	Severity Severity
	Action   string
}

// volcanoAlertLevels is the five-step eruption alert scale.
var volcanoAlertLevels = map[int]VolcanoAlertLevel{
	1: {Name: "活火山であることに留意", Severity: SeverityLow, Action: "火口内立入規制"},
	2: {Name: "火口周辺規制", Severity: SeverityMedium, Action: "火口周辺への立入規制"},
	3: {Name: "入山規制", Severity: SeverityHigh, Action: "登山禁止・入山規制"},
	4: {Name: "高齢者等避難", Severity: SeverityHigh, Action: "警戒が必要な居住地域での高齢者等の避難準備"},
	5: {Name: "避難", Severity: SeverityExtreme, Action: "危険な居住地域からの避難"},
}

// AlertLevelInfo returns the scale entry for an eruption alert level.
// Levels outside 1-5 yield a zero entry with severity low.
func AlertLevelInfo(level int) VolcanoAlertLevel {
	if info, ok := volcanoAlertLevels[level]; ok {
		return info
	}
	return VolcanoAlertLevel{Severity: SeverityLow}
}
