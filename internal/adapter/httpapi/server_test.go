package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kitsunebi/disaster-info-api/internal/adapter/jma"
	"github.com/kitsunebi/disaster-info-api/internal/config"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quakeFeedStub struct {
	quakes   []domain.Earthquake
	err      error
	gotLimit int
}

func (q *quakeFeedStub) RecentQuakes(_ context.Context, limit int) ([]domain.Earthquake, error) {
	q.gotLimit = limit
	return q.quakes, q.err
}

type weatherFeedStub struct {
	report  domain.WeatherReport
	err     error
	gotArea string
}

func (ws *weatherFeedStub) Overview(_ context.Context, areaCode string) (domain.WeatherReport, error) {
	ws.gotArea = areaCode
	return ws.report, ws.err
}

type warningFeedStub struct {
	bulletin domain.WarningBulletin
	err      error
	all      []jma.PrefectureBulletin
	gotArea  string
}

func (ws *warningFeedStub) Warnings(_ context.Context, areaCode string) (domain.WarningBulletin, error) {
	ws.gotArea = areaCode
	return ws.bulletin, ws.err
}

func (ws *warningFeedStub) AllPrefectureWarnings(context.Context) []jma.PrefectureBulletin {
	return ws.all
}

type tsunamiFeedStub struct {
	events   []domain.TsunamiEvent
	active   []domain.TsunamiEvent
	err      error
	gotLimit int
}

func (ts *tsunamiFeedStub) TsunamiList(_ context.Context, limit int) ([]domain.TsunamiEvent, error) {
	ts.gotLimit = limit
	if ts.err != nil {
		return nil, ts.err
	}
	if limit > 0 && len(ts.events) > limit {
		return ts.events[:limit], nil
	}
	return ts.events, nil
}

func (ts *tsunamiFeedStub) ActiveTsunami(context.Context) ([]domain.TsunamiEvent, error) {
	if ts.err != nil {
		return nil, ts.err
	}
	return ts.active, nil
}

type volcanoFeedStub struct {
	volcanoes []domain.VolcanoInfo
	warnings  []domain.VolcanoWarning
	err       error
}

func (vs *volcanoFeedStub) VolcanoList(context.Context) ([]domain.VolcanoInfo, error) {
	return vs.volcanoes, vs.err
}

func (vs *volcanoFeedStub) VolcanoWarnings(context.Context) []domain.VolcanoWarning {
	return vs.warnings
}

// localizerStub suffixes inputs with the target language so tests can tell
// exactly which text went through which call.
type localizerStub struct{}

func (localizerStub) TranslateLocation(_ context.Context, location, target string) string {
	return location + ":" + target
}

func (localizerStub) Translate(_ context.Context, text, target string) string {
	return text + ":" + target
}

func (localizerStub) TranslateIntensity(intensity, target string) string {
	return intensity + ":" + target
}

func (localizerStub) TranslateTsunamiLevel(status, target string) string {
	return status + ":" + target
}

func (localizerStub) EarthquakeMessage(target, _ string, _ float64, _ string, _ int, _, _ string) string {
	return "quake message:" + target
}

func (localizerStub) GenerateWarningText(_ context.Context, nameJA, target, _ string, _ domain.Severity) (domain.WarningText, error) {
	return domain.WarningText{Name: nameJA + ":" + target, Description: "desc:" + target, Action: "act:" + target}, nil
}

type guideStub struct {
	gotType     string
	gotTarget   string
	gotLocation string
	gotSeverity domain.Severity
}

func (g *guideStub) Generate(_ context.Context, disasterType, target, location string, severity domain.Severity) domain.SafetyGuide {
	g.gotType, g.gotTarget, g.gotLocation, g.gotSeverity = disasterType, target, location, severity
	return domain.SafetyGuide{
		DisasterType: disasterType,
		Severity:     severity,
		Language:     target,
		Title:        "地震の安全ガイド",
	}
}

type shelterStoreStub struct {
	shelters       []domain.Shelter
	gotLat, gotLon float64
	gotRadius      float64
	gotLimit       int
	gotType        string
}

func (ss *shelterStoreStub) Nearby(lat, lon, radiusKm float64, limit int, disasterType string) []domain.Shelter {
	ss.gotLat, ss.gotLon, ss.gotRadius, ss.gotLimit, ss.gotType = lat, lon, radiusKm, limit, disasterType
	return ss.shelters
}

type pushStub struct {
	subscribeErr   error
	unsubscribedOK bool
	unsubscribeErr error
	gotEndpoint    string
	gotKeys        map[string]string
	gotLanguage    string
}

func (p *pushStub) Subscribe(endpoint string, keys map[string]string, language string) (domain.PushSubscription, error) {
	p.gotEndpoint, p.gotKeys, p.gotLanguage = endpoint, keys, language
	if p.subscribeErr != nil {
		return domain.PushSubscription{}, p.subscribeErr
	}
	return domain.PushSubscription{ID: "sub-1", Endpoint: endpoint}, nil
}

func (p *pushStub) Unsubscribe(endpoint string) (bool, error) {
	p.gotEndpoint = endpoint
	return p.unsubscribedOK, p.unsubscribeErr
}

type alertSinkStub struct {
	events []domain.AlertEvent
	err    error
}

func (a *alertSinkStub) Publish(_ context.Context, events ...domain.AlertEvent) error {
	if a.err != nil {
		return a.err
	}
	a.events = append(a.events, events...)
	return nil
}

type readyStub struct{ err error }

func (r *readyStub) CheckReadiness(context.Context) error { return r.err }

// fixture bundles the stubbed dependencies behind a Server so tests can
// seed inputs and inspect captured arguments.
type fixture struct {
	cfg       *config.Config
	quakes    *quakeFeedStub
	weather   *weatherFeedStub
	warnings  *warningFeedStub
	tsunami   *tsunamiFeedStub
	volcanoes *volcanoFeedStub
	guides    *guideStub
	shelters  *shelterStoreStub
	push      *pushStub
	alerts    *alertSinkStub
	ready     *readyStub
}

func newFixture() *fixture {
	return &fixture{
		cfg: &config.Config{
			HTTPAddr:               ":0",
			Environment:            "development",
			MaxTranslateTextLength: 5000,
			RateLimitRPS:           1000,
			RateLimitBurst:         1000,
			CORSOrigins:            "*",
		},
		quakes:    &quakeFeedStub{},
		weather:   &weatherFeedStub{},
		warnings:  &warningFeedStub{},
		tsunami:   &tsunamiFeedStub{},
		volcanoes: &volcanoFeedStub{},
		guides:    &guideStub{},
		shelters:  &shelterStoreStub{},
		push:      &pushStub{},
		alerts:    &alertSinkStub{},
		ready:     &readyStub{},
	}
}

func (f *fixture) server() *Server {
	// Assigning a nil *alertSinkStub directly would produce a non-nil
	// interface; disabled publishing must be a nil interface.
	var alerts AlertSink
	if f.alerts != nil {
		alerts = f.alerts
	}
	return NewServer(f.cfg, Deps{
		Quakes:    f.quakes,
		Weather:   f.weather,
		Warnings:  f.warnings,
		Tsunami:   f.tsunami,
		Volcanoes: f.volcanoes,
		Localizer: localizerStub{},
		Guides:    f.guides,
		Shelters:  f.shelters,
		Push:      f.push,
		Alerts:    alerts,
		Ready:     f.ready,
		Metrics:   observability.NewMetricsForTesting(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func doRequest(t *testing.T, s *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	req.RemoteAddr = "203.0.113.7:34567"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.NoError(t, json.NewDecoder(w.Body).Decode(v))
}

func errorDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, w, &body)
	return body.Detail
}

func TestRoot(t *testing.T) {
	w := doRequest(t, newFixture().server(), http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, serviceName, body["service"])
	assert.Equal(t, serviceVersion, body["version"])
	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestHealthz(t *testing.T) {
	w := doRequest(t, newFixture().server(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyz(t *testing.T) {
	f := newFixture()
	w := doRequest(t, f.server(), http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "ready", body["status"])
}

func TestReadyz_NotReady(t *testing.T) {
	f := newFixture()
	f.ready.err = context.DeadlineExceeded
	w := doRequest(t, f.server(), http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "not ready", body["status"])
	assert.NotEmpty(t, body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	w := doRequest(t, newFixture().server(), http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestUnknownRouteReturns404(t *testing.T) {
	w := doRequest(t, newFixture().server(), http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductionMasksServerErrors(t *testing.T) {
	f := newFixture()
	f.cfg.Environment = "production"
	f.push.subscribeErr = context.DeadlineExceeded

	w := doRequest(t, f.server(), http.MethodPost, "/api/v1/push/subscribe",
		map[string]any{"endpoint": "https://push.example/ep1"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "内部サーバーエラーが発生しました", errorDetail(t, w))
}
