package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Tsunami bulletin levels, strongest first.
const (
	TsunamiMajorWarning = "major_warning"
	TsunamiWarning      = "warning"
	TsunamiAdvisory     = "advisory"
	TsunamiNone         = "none"
)

// TsunamiEvent is one entry from the JMA tsunami bulletin list.
type TsunamiEvent struct {
	ID                   string        `json:"id"`
	EventID              string        `json:"event_id"`
	Title                string        `json:"title"`
	TitleEN              string        `json:"title_en,omitempty"`
	ReportDatetime       string        `json:"report_datetime"`
	EarthquakeTime       string        `json:"earthquake_time,omitempty"`
	EarthquakeLocation   string        `json:"earthquake_location"`
	EarthquakeLocationEN string        `json:"earthquake_location_en,omitempty"`
	Magnitude            string        `json:"magnitude,omitempty"`
	Coordinates          string        `json:"coordinates,omitempty"`
	WarningLevel         string        `json:"warning_level"`
	Areas                []TsunamiKind `json:"areas"`
	Message              string        `json:"message"`
	MessageTranslated    string        `json:"message_translated,omitempty"`
}

// TsunamiKind is one classification entry on a tsunami bulletin.
type TsunamiKind struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Active reports whether the event carries a live warning or advisory.
func (t TsunamiEvent) Active() bool {
	switch t.WarningLevel {
	case TsunamiMajorWarning, TsunamiWarning, TsunamiAdvisory:
		return true
	}
	return false
}

// TsunamiLevelFromKinds derives the warning level from bulletin kind names.
// 大津波警報 must be checked before 津波警報, which it contains.
func TsunamiLevelFromKinds(kinds []TsunamiKind) string {
	for _, k := range kinds {
		switch {
		case strings.Contains(k.Name, "大津波警報"):
			return TsunamiMajorWarning
		case strings.Contains(k.Name, "津波警報"):
			return TsunamiWarning
		case strings.Contains(k.Name, "津波注意報"):
			return TsunamiAdvisory
		}
	}
	return TsunamiNone
}

// BuildTsunamiMessage composes the Japanese announcement for a bulletin.
func BuildTsunamiMessage(title, location, magnitude string) string {
	if location == "" {
		location = "不明"
	}
	if magnitude == "" {
		magnitude = "不明"
	}
	switch {
	case strings.Contains(title, "大津波警報") || strings.Contains(title, "津波警報"):
		return fmt.Sprintf("【%s】%sでマグニチュード%sの地震が発生しました。直ちに高台へ避難してください。", title, location, magnitude)
	case strings.Contains(title, "津波注意報"):
		return fmt.Sprintf("【%s】%sでマグニチュード%sの地震が発生しました。海岸から離れてください。", title, location, magnitude)
	default:
		return fmt.Sprintf("【津波情報】%sでマグニチュード%sの地震が発生しました。%s", location, magnitude, title)
	}
}

// ParseEpicenterCoordinates decodes an ISO 6709-style coordinate string
// such as "+40.9+143.0-20000/" into latitude and longitude. Malformed
// input yields (0, 0, false).
func ParseEpicenterCoordinates(s string) (lat, lon float64, ok bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "/")
	if s == "" {
		return 0, 0, false
	}
	// Depth is appended with a minus sign; strip it.
	if i := strings.Index(s, "-"); i > 0 {
		s = s[:i]
	}
	segs := strings.Split(s, "+")
	if len(segs) < 3 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(segs[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(segs[2], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
