package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all service settings, populated from environment variables
// and optionally a YAML file pointed to by CONFIG_PATH.
// Priority: ENV > YAML > defaults (via env-default tags).
type Config struct {
	HTTPAddr        string        `yaml:"http_addr"        env:"HTTP_ADDR"        env-default:":8000"`
	Environment     string        `yaml:"environment"      env:"ENVIRONMENT"      env-default:"development"`
	LogLevel        string        `yaml:"log_level"        env:"LOG_LEVEL"        env-default:"info"`
	LogFormat       string        `yaml:"log_format"       env:"LOG_FORMAT"       env-default:"json"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	// AI provider configuration. Keys are optional; with neither key set the
	// service still runs, serving static translations only.
	AIProvider       string        `yaml:"ai_provider"          env:"AI_PROVIDER"          env-default:"auto"`
	GeminiAPIKey     string        `yaml:"gemini_api_key"       env:"GEMINI_API_KEY"`
	GeminiModel      string        `yaml:"gemini_model"         env:"GEMINI_MODEL"         env-default:"gemini-2.0-flash-exp"`
	GeminiBaseURL    string        `yaml:"gemini_base_url"      env:"GEMINI_BASE_URL"      env-default:"https://generativelanguage.googleapis.com/v1beta"`
	AnthropicAPIKey  string        `yaml:"anthropic_api_key"    env:"ANTHROPIC_API_KEY"`
	AnthropicModel   string        `yaml:"anthropic_model"      env:"ANTHROPIC_MODEL"      env-default:"claude-3-haiku-20240307"`
	AnthropicVersion string        `yaml:"anthropic_version"    env:"ANTHROPIC_VERSION"    env-default:"2023-06-01"`
	AnthropicBaseURL string        `yaml:"anthropic_base_url"   env:"ANTHROPIC_BASE_URL"   env-default:"https://api.anthropic.com/v1"`
	TranslateTimeout time.Duration `yaml:"ai_timeout_translate" env:"AI_TIMEOUT_TRANSLATE" env-default:"15s"`
	GenerateTimeout  time.Duration `yaml:"ai_timeout_generate"  env:"AI_TIMEOUT_GENERATE"  env-default:"30s"`

	// Translation cache persistence.
	CacheFile           string `yaml:"translation_cache_file" env:"TRANSLATION_CACHE_FILE" env-default:"data/translation_cache.json"`
	CacheFlushThreshold int    `yaml:"cache_flush_threshold"  env:"CACHE_FLUSH_THRESHOLD"  env-default:"10"`

	// Upstream disaster feeds.
	JMABaseURL string        `yaml:"jma_base_url" env:"JMA_BASE_URL" env-default:"https://www.jma.go.jp/bosai"`
	P2PBaseURL string        `yaml:"p2p_base_url" env:"P2P_BASE_URL" env-default:"https://api.p2pquake.net/v2"`
	APITimeout time.Duration `yaml:"api_timeout"  env:"API_TIMEOUT"  env-default:"10s"`

	MaxTranslateTextLength int `yaml:"max_translate_text_length" env:"MAX_TRANSLATE_TEXT_LENGTH" env-default:"5000"`

	// Local data files.
	ShelterDataFile       string `yaml:"shelter_data_file"       env:"SHELTER_DATA_FILE"       env-default:"data/sample_shelters.json"`
	PushSubscriptionsFile string `yaml:"push_subscriptions_file" env:"PUSH_SUBSCRIPTIONS_FILE" env-default:"data/push_subscriptions.json"`

	// Alert publishing. Disabled unless KAFKA_BROKERS is set
	// (ALERTS_ENABLED overrides either way).
	KafkaBrokers    []string      `yaml:"kafka_brokers"     env:"KAFKA_BROKERS"     env-separator:","`
	KafkaAlertTopic string        `yaml:"kafka_alert_topic" env:"KAFKA_ALERT_TOPIC" env-default:"disaster-alerts"`
	WatchInterval   time.Duration `yaml:"watch_interval"    env:"WATCH_INTERVAL"    env-default:"60s"`
	AlertsEnabled   bool          `yaml:"-"                 env:"-"`

	// HTTP hardening.
	RateLimitRPS   float64 `yaml:"rate_limit_rps"   env:"RATE_LIMIT_RPS"   env-default:"10"`
	RateLimitBurst int     `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST" env-default:"20"`
	CORSOrigins    string  `yaml:"cors_origins"     env:"CORS_ORIGINS"     env-default:"*"`
}

// Load reads configuration, applying defaults where unset.
// The YAML file path comes from CONFIG_PATH (fallback "./config.yaml");
// if the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.KafkaBrokers = normalizeBrokers(cfg.KafkaBrokers)
	cfg.AlertsEnabled = len(cfg.KafkaBrokers) > 0
	if v := os.Getenv("ALERTS_ENABLED"); v != "" {
		cfg.AlertsEnabled = v == "true"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks cross-field constraints that tag defaults cannot express.
func (c *Config) validate() error {
	if c.ShutdownTimeout <= 0 {
		return errors.New("invalid SHUTDOWN_TIMEOUT")
	}

	switch c.AIProvider {
	case "auto", "gemini", "claude", "none":
	default:
		return fmt.Errorf("invalid AI_PROVIDER %q (want auto, gemini, claude or none)", c.AIProvider)
	}
	if c.AIProvider == "gemini" && c.GeminiAPIKey == "" {
		return errors.New("AI_PROVIDER is gemini but GEMINI_API_KEY is not set")
	}
	if c.AIProvider == "claude" && c.AnthropicAPIKey == "" {
		return errors.New("AI_PROVIDER is claude but ANTHROPIC_API_KEY is not set")
	}
	if c.TranslateTimeout <= 0 {
		return errors.New("invalid AI_TIMEOUT_TRANSLATE")
	}
	if c.GenerateTimeout <= 0 {
		return errors.New("invalid AI_TIMEOUT_GENERATE")
	}

	if c.CacheFile == "" {
		return errors.New("TRANSLATION_CACHE_FILE is required")
	}
	if c.CacheFlushThreshold < 1 {
		return errors.New("CACHE_FLUSH_THRESHOLD must be at least 1")
	}

	if c.APITimeout <= 0 {
		return errors.New("invalid API_TIMEOUT")
	}
	if c.MaxTranslateTextLength < 1 {
		return errors.New("MAX_TRANSLATE_TEXT_LENGTH must be at least 1")
	}

	if c.AlertsEnabled && len(c.KafkaBrokers) == 0 {
		return errors.New("ALERTS_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if c.KafkaAlertTopic == "" {
		return errors.New("KAFKA_ALERT_TOPIC is required")
	}
	if c.WatchInterval <= 0 {
		return errors.New("invalid WATCH_INTERVAL")
	}

	if c.RateLimitRPS <= 0 {
		return errors.New("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_BURST must be at least 1")
	}

	return nil
}

// IsProduction reports whether the service hides upstream error details
// from API responses.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func normalizeBrokers(in []string) []string {
	out := make([]string, 0, len(in))
	for _, b := range in {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
