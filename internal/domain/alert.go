package domain

import (
	"fmt"
	"time"
)

// Severity classifies warnings on the four-level ladder used across the
// service: low < medium < high < extreme.
type Severity string

const (
	SeverityLow     Severity = "low"
	SeverityMedium  Severity = "medium"
	SeverityHigh    Severity = "high"
	SeverityExtreme Severity = "extreme"
)

// ValidSeverity reports whether s is one of the four severity levels.
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityExtreme:
		return true
	}
	return false
}

// Rank orders severities for comparison. Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityExtreme:
		return 4
	}
	return 0
}

// AlertType maps a severity to the alert type field of a bulletin.
func (s Severity) AlertType() string {
	switch s {
	case SeverityExtreme:
		return "special_warning"
	case SeverityHigh:
		return "warning"
	case SeverityMedium:
		return "advisory"
	}
	return "watch"
}

// Alert is one active warning or advisory for an area.
type Alert struct {
	ID                    string   `json:"id"`
	Type                  string   `json:"type"`
	Title                 string   `json:"title"`
	TitleTranslated       string   `json:"title_translated,omitempty"`
	Description           string   `json:"description"`
	DescriptionTranslated string   `json:"description_translated,omitempty"`
	Area                  string   `json:"area"`
	IssuedAt              string   `json:"issued_at"`
	ExpiresAt             string   `json:"expires_at,omitempty"`
	Severity              Severity `json:"severity"`
	Action                string   `json:"action,omitempty"`
}

// NewAlertID builds the deterministic-within-a-minute alert identifier
// "{areaCode}_{code}_{yyyyMMddHHmm}" from the package clock.
func NewAlertID(areaCode, code string) string {
	return fmt.Sprintf("%s_%s_%s", areaCode, code, clock.Now().Format("200601021504"))
}

// AlertEvent is the payload published to the alert sink topic when the
// watcher detects a new disaster event.
type AlertEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"` // "earthquake", "tsunami", "weather_warning", "test"
	Title      string    `json:"title"`
	Message    string    `json:"message,omitempty"`
	Area       string    `json:"area,omitempty"`
	Severity   Severity  `json:"severity"`
	DetectedAt time.Time `json:"detected_at"`
}
