package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/lang"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
)

// Translator is the hybrid translation pipeline: static tables first, then
// the persistent cache, then the AI gateway, falling back to the source
// text. It implements domain.Localizer.
type Translator struct {
	cache   *Cache
	gateway *Gateway
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTranslator wires the pipeline.
func NewTranslator(cache *Cache, gateway *Gateway, metrics *observability.Metrics, logger *slog.Logger) *Translator {
	return &Translator{cache: cache, gateway: gateway, metrics: metrics, logger: logger}
}

// TranslateLocation resolves a Japanese epicenter or area name.
func (t *Translator) TranslateLocation(ctx context.Context, location, target string) string {
	if target == lang.Default {
		t.metrics.Translations.WithLabelValues("identity").Inc()
		return location
	}

	if translated, ok := lang.Location(location, target); ok {
		t.metrics.Translations.WithLabelValues("static").Inc()
		return translated
	}

	key := Key(location, target)
	if cached, ok := t.cache.Get(key); ok {
		t.metrics.Translations.WithLabelValues("cache").Inc()
		return cached
	}

	if provider, ok := t.gateway.ActiveProvider(); ok {
		translated, err := t.gateway.TranslateText(ctx, location, target)
		if err == nil && translated != "" {
			t.cache.Set(key, translated)
			t.metrics.Translations.WithLabelValues("ai").Inc()
			return translated
		}
		if err != nil {
			t.logger.Error("ai location translation failed", "provider", string(provider), "error", err)
		}
	}

	t.metrics.Translations.WithLabelValues("fallback").Inc()
	return location
}

// Translate resolves free-form Japanese bulletin text. The cache is
// consulted before provider availability is checked.
func (t *Translator) Translate(ctx context.Context, text, target string) string {
	if target == lang.Default {
		t.metrics.Translations.WithLabelValues("identity").Inc()
		return text
	}

	if translated, ok := lang.MatchTemplate(text, target); ok {
		t.metrics.Translations.WithLabelValues("template").Inc()
		return translated
	}

	key := Key(text, target)
	if cached, ok := t.cache.Get(key); ok {
		t.metrics.Translations.WithLabelValues("cache").Inc()
		return cached
	}

	if provider, ok := t.gateway.ActiveProvider(); ok {
		translated, err := t.gateway.TranslateText(ctx, text, target)
		if err == nil && translated != "" {
			t.cache.Set(key, translated)
			t.metrics.Translations.WithLabelValues("ai").Inc()
			return translated
		}
		if err != nil {
			t.logger.Error("ai translation failed", "provider", string(provider), "error", err)
		}
	}

	t.metrics.Translations.WithLabelValues("fallback").Inc()
	return text
}

// TranslateIntensity resolves a seismic intensity grade from the static
// table. Unmapped grades (the plain numeric ones) pass through unchanged.
func (t *Translator) TranslateIntensity(intensity, target string) string {
	if translated, ok := lang.Intensity(intensity, target); ok {
		return translated
	}
	return intensity
}

// TranslateTsunamiLevel resolves a tsunami status string from the static
// table, passing unknown statuses through unchanged.
func (t *Translator) TranslateTsunamiLevel(status, target string) string {
	if target == lang.Default {
		return status
	}
	if translated, ok := lang.TsunamiLevel(status, target); ok {
		return translated
	}
	return status
}

// warningPayload is the cache and AI wire shape for generated warning text.
type warningPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// GenerateWarningText produces the localized name, description and
// recommended action for a weather warning. Japanese is answered
// deterministically; other languages go through the cache and the AI
// gateway, degrading to a name-only translation.
func (t *Translator) GenerateWarningText(ctx context.Context, nameJA, target, area string, severity domain.Severity) (domain.WarningText, error) {
	if target == lang.Default {
		description := nameJA + "が発表されています。"
		if area != "" {
			description = area + "に" + description
		}
		return domain.WarningText{
			Name:        nameJA,
			Description: description,
			Action:      defaultActionJA(severity),
		}, nil
	}

	key := Key(fmt.Sprintf("warning:%s:%s:%s", nameJA, area, severity), target)
	if cached, ok := t.cache.Get(key); ok {
		var payload warningPayload
		if err := json.Unmarshal([]byte(cached), &payload); err == nil {
			return domain.WarningText(payload), nil
		}
	}

	provider, active := t.gateway.ActiveProvider()
	if active {
		var payload warningPayload
		err := t.gateway.GenerateJSON(ctx, buildWarningPrompt(nameJA, target, area, severity), 500, &payload)
		if err == nil {
			if payload.Name == "" {
				payload.Name = nameJA
			}
			if stored, merr := json.Marshal(payload); merr == nil {
				t.cache.Set(key, string(stored))
			}
			return domain.WarningText(payload), nil
		}
		t.logger.Error("warning text generation failed", "provider", string(provider), "error", err)
	}

	name := nameJA
	if active {
		if translated, err := t.gateway.TranslateText(ctx, nameJA, target); err == nil && translated != "" {
			name = translated
		}
	}
	return domain.WarningText{Name: name}, nil
}

func buildWarningPrompt(nameJA, target, area string, severity domain.Severity) string {
	severityDesc := "advisory"
	switch severity {
	case domain.SeverityLow:
		severityDesc = "minor advisory"
	case domain.SeverityMedium:
		severityDesc = "advisory requiring attention"
	case domain.SeverityHigh:
		severityDesc = "serious warning requiring caution"
	case domain.SeverityExtreme:
		severityDesc = "emergency warning requiring immediate action"
	}

	areaContext := ""
	promptArea := "general"
	if area != "" {
		areaContext = " for " + area
		promptArea = area
	}

	return fmt.Sprintf(`Translate and generate disaster warning information in %s.

Japanese warning name: %s
Severity level: %s
Area: %s

Return ONLY a JSON object with these exact keys (no markdown, no explanation):
{
  "name": "translated warning name",
  "description": "brief explanation of this warning type%s (1 sentence)",
  "action": "recommended immediate action for people in affected area (1-2 sentences)"
}

Important:
- Keep translations accurate and culturally appropriate
- For "easy_ja", use simple hiragana and basic vocabulary
- Action should be practical and specific to this warning type`,
		lang.DisplayName(target), nameJA, severityDesc, promptArea, areaContext)
}

func defaultActionJA(severity domain.Severity) string {
	switch severity {
	case domain.SeverityLow:
		return "最新の情報に注意してください。"
	case domain.SeverityHigh:
		return "屋外での活動を控え、安全な場所で待機してください。"
	case domain.SeverityExtreme:
		return "直ちに安全な場所へ避難してください。命を守る行動を取ってください。"
	default:
		return "今後の情報に注意し、必要に応じて安全な場所へ移動してください。"
	}
}
