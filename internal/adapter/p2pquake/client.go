// Package p2pquake fetches earthquake reports from the P2P地震情報 API.
package p2pquake

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/kitsunebi/disaster-info-api/internal/config"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
)

const upstream = "p2pquake"

// History feed type codes.
const (
	codeEarthquake = "551"
	codeUserReport = "555"
)

// intensityScale maps the feed's numeric scale to JMA intensity grades.
var intensityScale = map[int]string{
	10: "1",
	20: "2",
	30: "3",
	40: "4",
	45: "5弱",
	50: "5強",
	55: "6弱",
	60: "6強",
	70: "7",
}

// tsunamiLevels maps the feed's domestic tsunami classification to the
// Japanese announcement terms.
var tsunamiLevels = map[string]string{
	"None":         "なし",
	"Unknown":      "不明",
	"Checking":     "調査中",
	"NonEffective": "若干の海面変動",
	"Watch":        "津波注意報",
	"Warning":      "津波警報",
}

// Client talks to the p2pquake v2 history API.
type Client struct {
	http    *resty.Client
	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.P2PBaseURL, "/")).
		SetTimeout(cfg.APITimeout)

	return &Client{
		http:    rc,
		metrics: metrics,
		logger:  logger,
	}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) history(ctx context.Context, code string, limit int, out any) error {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("codes", code).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(out).
		Get("/history")
	c.metrics.FeedAPIDuration.WithLabelValues(upstream).Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.FeedRequests.WithLabelValues(upstream, "error").Inc()
		return fmt.Errorf("p2pquake: history codes=%s: %w", code, err)
	}
	if resp.IsError() {
		c.metrics.FeedRequests.WithLabelValues(upstream, "error").Inc()
		return fmt.Errorf("p2pquake: history codes=%s: status %d", code, resp.StatusCode())
	}
	c.metrics.FeedRequests.WithLabelValues(upstream, "success").Inc()
	return nil
}

// RecentQuakes fetches the latest earthquake reports, newest first.
func (c *Client) RecentQuakes(ctx context.Context, limit int) ([]domain.Earthquake, error) {
	var items []quakeItem
	if err := c.history(ctx, codeEarthquake, limit, &items); err != nil {
		return nil, err
	}

	quakes := make([]domain.Earthquake, 0, len(items))
	for _, item := range items {
		quakes = append(quakes, parseQuake(item))
	}
	return quakes, nil
}

// UserReports fetches the latest felt-shaking reports.
func (c *Client) UserReports(ctx context.Context, limit int) ([]UserReport, error) {
	var reports []UserReport
	if err := c.history(ctx, codeUserReport, limit, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func parseQuake(item quakeItem) domain.Earthquake {
	intensity, ok := intensityScale[item.Earthquake.MaxScale]
	if !ok {
		intensity = "不明"
	}

	domestic := item.Earthquake.DomesticTsunami
	if domestic == "" {
		domestic = "Unknown"
	}
	tsunami, ok := tsunamiLevels[domestic]
	if !ok {
		tsunami = "不明"
	}

	location := item.Earthquake.Hypocenter.Name
	if location == "" {
		location = "不明"
	}

	return domain.Earthquake{
		ID:             item.ID,
		Time:           item.Earthquake.Time,
		Location:       location,
		Magnitude:      item.Earthquake.Hypocenter.Magnitude,
		MaxIntensity:   intensity,
		Depth:          item.Earthquake.Hypocenter.Depth,
		Latitude:       item.Earthquake.Hypocenter.Latitude,
		Longitude:      item.Earthquake.Hypocenter.Longitude,
		TsunamiWarning: tsunami,
		Message:        buildQuakeMessage(location, item.Earthquake.Hypocenter.Magnitude, intensity, item.Earthquake.Hypocenter.Depth, tsunami),
		Source:         "気象庁",
	}
}

// buildQuakeMessage composes the Japanese announcement for a quake report.
func buildQuakeMessage(location string, magnitude float64, intensity string, depth int, tsunami string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "【地震情報】%sで地震がありました。", location)
	fmt.Fprintf(&b, "マグニチュード%s、最大震度%s。", strconv.FormatFloat(magnitude, 'f', 1, 64), intensity)
	fmt.Fprintf(&b, "震源の深さは約%dkm。", depth)
	if tsunami != "なし" {
		fmt.Fprintf(&b, "津波情報：%s。", tsunami)
	} else {
		b.WriteString("この地震による津波の心配はありません。")
	}
	return b.String()
}

// p2pquake v2 wire types.

type quakeItem struct {
	ID         string     `json:"id"`
	Earthquake quakeInner `json:"earthquake"`
}

type quakeInner struct {
	Time            string     `json:"time"`
	MaxScale        int        `json:"maxScale"`
	DomesticTsunami string     `json:"domesticTsunami"`
	Hypocenter      hypocenter `json:"hypocenter"`
}

type hypocenter struct {
	Name      string  `json:"name"`
	Magnitude float64 `json:"magnitude"`
	Depth     int     `json:"depth"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserReport is one felt-shaking report from the history feed.
type UserReport struct {
	ID    string           `json:"id"`
	Time  string           `json:"time"`
	Areas []UserReportArea `json:"areas"`
}

// UserReportArea is one reporting area with its peer count.
type UserReportArea struct {
	ID   int `json:"id"`
	Peer int `json:"peer"`
}
