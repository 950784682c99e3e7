// Package httpapi exposes the disaster information REST surface together
// with the operational health, readiness, and metrics endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kitsunebi/disaster-info-api/internal/adapter/jma"
	"github.com/kitsunebi/disaster-info-api/internal/config"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serviceName    = "災害対応AIエージェント"
	serviceVersion = "1.0.0"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// QuakeFeed lists recent earthquakes, newest first.
type QuakeFeed interface {
	RecentQuakes(ctx context.Context, limit int) ([]domain.Earthquake, error)
}

// WeatherFeed serves prefecture forecast overviews.
type WeatherFeed interface {
	Overview(ctx context.Context, areaCode string) (domain.WeatherReport, error)
}

// WarningFeed serves warning bulletins, per prefecture and nationwide.
type WarningFeed interface {
	Warnings(ctx context.Context, areaCode string) (domain.WarningBulletin, error)
	AllPrefectureWarnings(ctx context.Context) []jma.PrefectureBulletin
}

// TsunamiFeed serves tsunami bulletins.
type TsunamiFeed interface {
	TsunamiList(ctx context.Context, limit int) ([]domain.TsunamiEvent, error)
	ActiveTsunami(ctx context.Context) ([]domain.TsunamiEvent, error)
}

// VolcanoFeed serves the volcano catalog and eruption alerts.
type VolcanoFeed interface {
	VolcanoList(ctx context.Context) ([]domain.VolcanoInfo, error)
	VolcanoWarnings(ctx context.Context) []domain.VolcanoWarning
}

// GuideGenerator produces safety guides. It never fails; offline it serves
// the built-in Japanese guidance.
type GuideGenerator interface {
	Generate(ctx context.Context, disasterType, target, location string, severity domain.Severity) domain.SafetyGuide
}

// ShelterStore answers evacuation shelter queries.
type ShelterStore interface {
	Nearby(lat, lon, radiusKm float64, limit int, disasterType string) []domain.Shelter
}

// SubscriptionStore keeps the push subscription registry.
type SubscriptionStore interface {
	Subscribe(endpoint string, keys map[string]string, language string) (domain.PushSubscription, error)
	Unsubscribe(endpoint string) (bool, error)
}

// AlertSink receives alert events for publication.
type AlertSink interface {
	Publish(ctx context.Context, events ...domain.AlertEvent) error
}

// Deps bundles everything the API serves from.
type Deps struct {
	Quakes     QuakeFeed
	Weather    WeatherFeed
	Warnings   WarningFeed
	Tsunami    TsunamiFeed
	Volcanoes  VolcanoFeed
	Localizer  domain.Localizer
	Guides     GuideGenerator
	Shelters   ShelterStore
	Push       SubscriptionStore
	Alerts     AlertSink // nil when alert publishing is disabled
	Ready      ReadinessChecker
	Metrics    *observability.Metrics
	Logger     *slog.Logger
}

// Server is the HTTP front of the service.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	deps       Deps
	limiter    *clientLimiter
	logger     *slog.Logger
}

// NewServer wires all routes and middleware.
func NewServer(cfg *config.Config, deps Deps) *Server {
	mux := http.NewServeMux()

	s := &Server{
		cfg:     cfg,
		deps:    deps,
		limiter: newClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		logger:  deps.Logger,
	}

	handler := s.sizeLimit(s.securityHeaders(s.cors(mux)))
	s.httpServer = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Operational trio, never rate limited.
	s.route(mux, "GET /healthz", s.handleHealth, false)
	s.route(mux, "GET /readyz", s.handleReady, false)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.route(mux, "GET /{$}", s.handleRoot, false)

	s.route(mux, "GET /api/v1/earthquakes", s.handleEarthquakes, true)
	s.route(mux, "GET /api/v1/weather/{areaCode}", s.handleWeather, true)
	s.route(mux, "GET /api/v1/alerts", s.handleAlerts, true)
	s.route(mux, "GET /api/v1/warnings/special", s.handleSpecialWarnings, true)
	s.route(mux, "POST /api/v1/translate", s.handleTranslate, true)
	s.route(mux, "GET /api/v1/shelters", s.handleShelters, true)
	s.route(mux, "GET /api/v1/shelters/types", s.handleShelterTypes, false)
	s.route(mux, "GET /api/v1/tsunami", s.handleTsunami, true)
	s.route(mux, "GET /api/v1/tsunami/active", s.handleActiveTsunami, true)
	s.route(mux, "GET /api/v1/volcanoes", s.handleVolcanoes, true)
	s.route(mux, "GET /api/v1/volcanoes/warnings", s.handleVolcanoWarnings, true)
	s.route(mux, "GET /api/v1/volcanoes/{code}", s.handleVolcanoByCode, true)
	s.route(mux, "GET /api/v1/languages", s.handleLanguages, false)
	s.route(mux, "GET /api/v1/safety-guide", s.handleSafetyGuide, true)
	s.route(mux, "GET /api/v1/safety-guide/types", s.handleSafetyGuideTypes, false)
	s.route(mux, "POST /api/v1/push/subscribe", s.handlePushSubscribe, true)
	s.route(mux, "POST /api/v1/push/unsubscribe", s.handlePushUnsubscribe, true)
	s.route(mux, "POST /api/v1/push/test", s.handlePushTest, true)

	return s
}

// route registers a handler wrapped with instrumentation and, for limited
// routes, the per-client rate limiter.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc, limited bool) {
	if limited {
		h = s.rateLimit(h)
	}
	mux.Handle(pattern, s.instrument(routeName(pattern), h))
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.deps.Ready.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}

// writeError emits the {"detail": ...} error shape. Server-side errors are
// replaced with a generic message in production.
func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	if status >= http.StatusInternalServerError && s.cfg.IsProduction() {
		detail = "内部サーバーエラーが発生しました"
	}
	writeJSON(w, status, map[string]string{"detail": detail})
}
