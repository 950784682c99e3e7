package domain

import "context"

// Localizer turns Japanese bulletin fields into a target language. The
// translation pipeline implements it; enrichment helpers and the HTTP
// layer consume it. Implementations never fail a text lookup: on any
// internal error they return the source text unchanged.
type Localizer interface {
	// TranslateLocation resolves an epicenter or area name.
	TranslateLocation(ctx context.Context, location, target string) string

	// Translate resolves free-form bulletin text.
	Translate(ctx context.Context, text, target string) string

	// TranslateIntensity resolves a seismic intensity grade. Static only.
	TranslateIntensity(intensity, target string) string

	// TranslateTsunamiLevel resolves a tsunami status string. Static only.
	TranslateTsunamiLevel(status, target string) string

	// EarthquakeMessage composes the full quake announcement in the target
	// language from already-translated parts. tsunamiJA is the Japanese
	// status used to decide between the safe and warning clauses.
	EarthquakeMessage(target, location string, magnitude float64, intensity string, depth int, tsunamiJA, tsunamiTranslated string) string

	// GenerateWarningText produces the localized name, description, and
	// recommended action for a weather warning. The error reports that
	// generation and every fallback failed to improve on the Japanese name.
	GenerateWarningText(ctx context.Context, nameJA, target, area string, severity Severity) (WarningText, error)
}
