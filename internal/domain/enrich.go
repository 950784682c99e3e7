package domain

import (
	"context"
)

// EnrichEarthquake fills the *_translated fields of a quake report for the
// target language. For Japanese the report is returned unchanged. The
// localizer degrades internally, so enrichment always succeeds.
func EnrichEarthquake(ctx context.Context, loc Localizer, eq Earthquake, target string) Earthquake {
	if target == "ja" || loc == nil {
		return eq
	}

	eq.LocationTranslated = loc.TranslateLocation(ctx, eq.Location, target)
	eq.MaxIntensityTranslated = loc.TranslateIntensity(eq.MaxIntensity, target)
	eq.TsunamiWarningTranslated = loc.TranslateTsunamiLevel(eq.TsunamiWarning, target)
	eq.MessageTranslated = loc.EarthquakeMessage(
		target,
		eq.LocationTranslated,
		eq.Magnitude,
		eq.MaxIntensityTranslated,
		eq.Depth,
		eq.TsunamiWarning,
		eq.TsunamiWarningTranslated,
	)
	return eq
}
