package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubLocalizer returns canned translations and records how often the AI
// generation path was taken.
type stubLocalizer struct {
	generateCalls int
	generateErr   error
	warningText   WarningText
}

func (s *stubLocalizer) TranslateLocation(_ context.Context, location, target string) string {
	return location + "/" + target
}

func (s *stubLocalizer) Translate(_ context.Context, text, target string) string {
	return text + "/" + target
}

func (s *stubLocalizer) TranslateIntensity(intensity, target string) string {
	if intensity == "5弱" && target == "en" {
		return "5 Lower"
	}
	return intensity
}

func (s *stubLocalizer) TranslateTsunamiLevel(status, target string) string {
	if status == "なし" && target == "en" {
		return "None"
	}
	return status
}

func (s *stubLocalizer) EarthquakeMessage(target, location string, magnitude float64, intensity string, depth int, tsunamiJA, tsunamiTranslated string) string {
	return fmt.Sprintf("[%s] %s M%.1f %s %dkm %s", target, location, magnitude, intensity, depth, tsunamiTranslated)
}

func (s *stubLocalizer) GenerateWarningText(_ context.Context, nameJA, target, area string, severity Severity) (WarningText, error) {
	s.generateCalls++
	if s.generateErr != nil {
		return WarningText{}, s.generateErr
	}
	if s.warningText != (WarningText{}) {
		return s.warningText, nil
	}
	return WarningText{Name: nameJA + "/" + target, Description: "desc", Action: "act"}, nil
}

var errGenerate = errors.New("generation failed")

func TestEnrichEarthquake(t *testing.T) {
	base := Earthquake{
		ID:             "q1",
		Location:       "東京湾",
		Magnitude:      5.5,
		MaxIntensity:   "5弱",
		Depth:          40,
		TsunamiWarning: "なし",
		Message:        "地震がありました",
		Source:         "気象庁",
	}

	t.Run("japanese is untouched", func(t *testing.T) {
		got := EnrichEarthquake(context.Background(), &stubLocalizer{}, base, "ja")
		assert.Equal(t, base, got)
	})

	t.Run("english fills all translated fields", func(t *testing.T) {
		got := EnrichEarthquake(context.Background(), &stubLocalizer{}, base, "en")

		assert.Equal(t, "東京湾/en", got.LocationTranslated)
		assert.Equal(t, "5 Lower", got.MaxIntensityTranslated)
		assert.Equal(t, "None", got.TsunamiWarningTranslated)
		assert.Equal(t, "[en] 東京湾/en M5.5 5 Lower 40km None", got.MessageTranslated)
		// Source fields stay as delivered by the feed.
		assert.Equal(t, "地震がありました", got.Message)
		assert.Equal(t, "東京湾", got.Location)
	})

	t.Run("nil localizer degrades to identity", func(t *testing.T) {
		got := EnrichEarthquake(context.Background(), nil, base, "en")
		assert.Equal(t, base, got)
	})
}
