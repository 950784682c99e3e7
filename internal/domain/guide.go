package domain

// SafetyGuide is a structured disaster guide, either AI-generated or the
// static fallback. Cached reports whether the body came from the
// translation cache; the flag itself is never persisted.
type SafetyGuide struct {
	DisasterType           string   `json:"disaster_type"`
	DisasterTypeTranslated string   `json:"disaster_type_translated,omitempty"`
	Severity               Severity `json:"severity"`
	Location               string   `json:"location,omitempty"`
	LocationTranslated     string   `json:"location_translated,omitempty"`
	Language               string   `json:"language"`
	Title                  string   `json:"title"`
	Summary                string   `json:"summary"`
	ImmediateActions       []string `json:"immediate_actions"`
	PreparationTips        []string `json:"preparation_tips"`
	EvacuationInfo         string   `json:"evacuation_info,omitempty"`
	EmergencyContacts      string   `json:"emergency_contacts,omitempty"`
	AdditionalNotes        string   `json:"additional_notes,omitempty"`
	GeneratedAt            string   `json:"generated_at"`
	Cached                 bool     `json:"cached"`
}

// WarningText is the AI-generated rendering of a weather warning in one
// target language.
type WarningText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Action      string `json:"action"`
}
