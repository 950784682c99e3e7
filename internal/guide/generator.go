// Package guide produces structured disaster safety guides, AI-generated
// when a provider is configured and a fixed Japanese guide otherwise.
package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/lang"
	"github.com/kitsunebi/disaster-info-api/internal/translate"
)

const generateMaxTokens = 1500

// Generator assembles safety guides for a disaster type, language, and
// severity. Generated bodies are persisted through the translation cache
// under a composite key, so repeat requests skip the AI entirely.
type Generator struct {
	cache     *translate.Cache
	gateway   *translate.Gateway
	localizer domain.Localizer
	clock     clockwork.Clock
	logger    *slog.Logger
}

func NewGenerator(cache *translate.Cache, gateway *translate.Gateway, localizer domain.Localizer, logger *slog.Logger) *Generator {
	return &Generator{
		cache:     cache,
		gateway:   gateway,
		localizer: localizer,
		clock:     clockwork.NewRealClock(),
		logger:    logger,
	}
}

// guideBody is the cacheable part of a guide. The Cached flag lives only on
// the assembled SafetyGuide and is never written to the cache.
type guideBody struct {
	Title             string   `json:"title"`
	Summary           string   `json:"summary"`
	ImmediateActions  []string `json:"immediate_actions"`
	PreparationTips   []string `json:"preparation_tips"`
	EvacuationInfo    string   `json:"evacuation_info"`
	EmergencyContacts string   `json:"emergency_contacts"`
	AdditionalNotes   string   `json:"additional_notes"`
}

// Generate returns a complete guide. It never fails: when the AI is
// unavailable or misbehaves the fixed Japanese fallback guide is returned.
func (g *Generator) Generate(ctx context.Context, disasterType, target, location string, severity domain.Severity) domain.SafetyGuide {
	key := translate.Key(fmt.Sprintf("safety:%s:%s:%s", disasterType, location, severity), target)

	if stored, ok := g.cache.Get(key); ok {
		var body guideBody
		if err := json.Unmarshal([]byte(stored), &body); err == nil {
			return g.assemble(ctx, disasterType, target, location, severity, body, true)
		}
	}

	if provider, ok := g.gateway.ActiveProvider(); ok {
		var body guideBody
		prompt := buildGuidePrompt(disasterType, target, location, severity)
		err := g.gateway.GenerateJSON(ctx, prompt, generateMaxTokens, &body)
		if err == nil && body.Title == "" && len(body.ImmediateActions) == 0 {
			err = fmt.Errorf("%s returned an empty guide", provider)
		}
		if err == nil {
			if raw, merr := json.Marshal(body); merr == nil {
				g.cache.Set(key, string(raw))
			}
			return g.assemble(ctx, disasterType, target, location, severity, body, false)
		}
		g.logger.Error("safety guide generation failed",
			"provider", string(provider),
			"disaster_type", disasterType,
			"lang", target,
			"error", err)
	}

	return g.assemble(ctx, disasterType, target, location, severity, fallbackGuide(disasterType), false)
}

func (g *Generator) assemble(ctx context.Context, disasterType, target, location string, severity domain.Severity, body guideBody, cached bool) domain.SafetyGuide {
	typeName, ok := lang.DisasterType(disasterType, target)
	if !ok {
		typeName = disasterType
	}

	locationTranslated := ""
	if location != "" {
		locationTranslated = g.localizer.TranslateLocation(ctx, location, target)
	}

	return domain.SafetyGuide{
		DisasterType:           disasterType,
		DisasterTypeTranslated: typeName,
		Severity:               severity,
		Location:               location,
		LocationTranslated:     locationTranslated,
		Language:               target,
		Title:                  body.Title,
		Summary:                body.Summary,
		ImmediateActions:       body.ImmediateActions,
		PreparationTips:        body.PreparationTips,
		EvacuationInfo:         body.EvacuationInfo,
		EmergencyContacts:      body.EmergencyContacts,
		AdditionalNotes:        body.AdditionalNotes,
		GeneratedAt:            g.clock.Now().Format(time.RFC3339),
		Cached:                 cached,
	}
}

// fallbackGuide is the guide served when no AI provider is available. It is
// always Japanese and always complete.
func fallbackGuide(disasterType string) guideBody {
	name, ok := lang.DisasterType(disasterType, "ja")
	if !ok {
		name = disasterType
	}

	return guideBody{
		Title:   name + "の安全ガイド",
		Summary: name + "が発生した場合の安全対策です。落ち着いて行動してください。",
		ImmediateActions: []string{
			"身の安全を確保してください",
			"最新の情報を確認してください",
			"必要に応じて避難してください",
		},
		PreparationTips: []string{
			"非常用持ち出し袋を準備しておきましょう",
			"避難場所を確認しておきましょう",
		},
		EvacuationInfo:    "市区町村の指示に従って避難してください",
		EmergencyContacts: "警察: 110 / 消防・救急: 119 / 海上保安庁: 118",
		AdditionalNotes:   "正確な情報は公式発表をご確認ください",
	}
}

func buildGuidePrompt(disasterType, target, location string, severity domain.Severity) string {
	severityDesc := "moderate risk"
	switch severity {
	case domain.SeverityLow:
		severityDesc = "minor risk, general awareness needed"
	case domain.SeverityMedium:
		severityDesc = "moderate risk, caution advised"
	case domain.SeverityHigh:
		severityDesc = "serious risk, immediate precautions needed"
	case domain.SeverityExtreme:
		severityDesc = "life-threatening emergency, immediate action required"
	}

	locationContext := ""
	if location != "" {
		locationContext = " in " + location
	}

	targetName := lang.DisplayName(target)

	return fmt.Sprintf(`Generate a comprehensive safety guide for %s%s in %s.

Severity level: %s

Return ONLY a JSON object with these exact keys (no markdown, no explanation):
{
  "title": "Safety guide title in %s",
  "summary": "Brief 1-2 sentence summary of what to do",
  "immediate_actions": ["action 1", "action 2", "action 3", "action 4", "action 5"],
  "preparation_tips": ["tip 1", "tip 2", "tip 3"],
  "evacuation_info": "Information about when and where to evacuate",
  "emergency_contacts": "Emergency numbers and resources (use Japan numbers: Police 110, Fire/Ambulance 119, Coast Guard 118)",
  "additional_notes": "Any additional important information"
}

Important guidelines:
- All text must be in %s
- For "easy_ja", use simple hiragana and basic vocabulary with spaces between words
- immediate_actions should be specific, actionable steps in order of priority
- Include Japan-specific emergency information
- Be culturally appropriate and practical
- Focus on life-saving information first`,
		disasterType, locationContext, targetName, severityDesc, targetName, targetName)
}
