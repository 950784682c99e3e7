package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kitsunebi/disaster-info-api/internal/config"
	"github.com/kitsunebi/disaster-info-api/internal/lang"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
)

// Provider identifies an AI backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
)

// ErrNoProvider is returned when no AI backend has usable credentials.
var ErrNoProvider = errors.New("no ai provider available")

const translateMaxTokens = 100

// Gateway routes translation and generation requests to an AI backend.
// Provider selection is recomputed on every call.
type Gateway struct {
	mode             string
	translateTimeout time.Duration
	generateTimeout  time.Duration
	gemini           *geminiClient
	claude           *claudeClient
	logger           *slog.Logger
}

// NewGateway builds the gateway from configuration. With no credentials the
// gateway still constructs; every call then reports ErrNoProvider and the
// service serves static translations only.
func NewGateway(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Gateway {
	g := &Gateway{
		mode:             cfg.AIProvider,
		translateTimeout: cfg.TranslateTimeout,
		generateTimeout:  cfg.GenerateTimeout,
		gemini: &geminiClient{
			apiKey:     cfg.GeminiAPIKey,
			model:      cfg.GeminiModel,
			baseURL:    cfg.GeminiBaseURL,
			httpClient: &http.Client{},
			metrics:    metrics,
		},
		claude: &claudeClient{
			apiKey:     cfg.AnthropicAPIKey,
			model:      cfg.AnthropicModel,
			version:    cfg.AnthropicVersion,
			baseURL:    cfg.AnthropicBaseURL,
			httpClient: &http.Client{},
			metrics:    metrics,
		},
		logger: logger,
	}

	if p, ok := g.ActiveProvider(); ok {
		metrics.AIEnabled.Set(1)
		logger.Info("ai provider active", "provider", string(p))
	} else {
		metrics.AIEnabled.Set(0)
		logger.Warn("no AI provider credentials configured, AI translation disabled")
	}
	return g
}

// ActiveProvider returns the backend that will serve the next request.
// Explicit AI_PROVIDER selection is honored only when its credential is
// present; "auto" prefers Gemini, then Claude.
func (g *Gateway) ActiveProvider() (Provider, bool) {
	switch g.mode {
	case "gemini":
		if g.gemini.apiKey != "" {
			return ProviderGemini, true
		}
	case "claude":
		if g.claude.apiKey != "" {
			return ProviderClaude, true
		}
	case "auto":
		if g.gemini.apiKey != "" {
			return ProviderGemini, true
		}
		if g.claude.apiKey != "" {
			return ProviderClaude, true
		}
	}
	return "", false
}

// TranslateText translates Japanese text into the target language via the
// active backend.
func (g *Gateway) TranslateText(ctx context.Context, text, targetLang string) (string, error) {
	provider, ok := g.ActiveProvider()
	if !ok {
		return "", ErrNoProvider
	}

	prompt := fmt.Sprintf(
		"Translate this Japanese earthquake location name to %s. Only output the translation, nothing else.\n\n%s",
		lang.DisplayName(targetLang), text,
	)

	switch provider {
	case ProviderGemini:
		return g.gemini.complete(ctx, prompt, translateMaxTokens, g.translateTimeout)
	default:
		return g.claude.complete(ctx, prompt, translateMaxTokens, g.translateTimeout)
	}
}

// GenerateJSON prompts the active backend and decodes the JSON object in its
// reply into out.
func (g *Gateway) GenerateJSON(ctx context.Context, prompt string, maxTokens int, out any) error {
	provider, ok := g.ActiveProvider()
	if !ok {
		return ErrNoProvider
	}

	var (
		text string
		err  error
	)
	switch provider {
	case ProviderGemini:
		text, err = g.gemini.complete(ctx, prompt, maxTokens, g.generateTimeout)
	default:
		text, err = g.claude.complete(ctx, prompt, maxTokens, g.generateTimeout)
	}
	if err != nil {
		return err
	}

	raw, ok := ExtractJSON(text, g.logger)
	if !ok {
		g.logger.Warn("ai reply contained no JSON", "provider", string(provider), "content", truncate(text, 200))
		return fmt.Errorf("%s: reply contained no JSON", provider)
	}
	return json.Unmarshal(raw, out)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
