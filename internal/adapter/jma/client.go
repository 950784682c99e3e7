// Package jma fetches and decodes the Japan Meteorological Agency bosai
// feeds: forecast overviews, weather warnings, tsunami bulletins, and
// volcano data.
package jma

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"resty.dev/v3"

	"github.com/kitsunebi/disaster-info-api/internal/config"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
)

const upstream = "jma"

// maxConcurrentFetches bounds the nationwide warning fan-out so a full
// scan never opens 47 connections to the JMA at once.
const maxConcurrentFetches = 10

// Client talks to the JMA bosai endpoints. All methods decode into domain
// types; callers decide how to degrade when a fetch fails.
type Client struct {
	http    *resty.Client
	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.JMABaseURL, "/")).
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

// get fetches one feed path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	c.metrics.FeedAPIDuration.WithLabelValues(upstream).Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.FeedRequests.WithLabelValues(upstream, "error").Inc()
		return fmt.Errorf("jma: get %s: %w", path, err)
	}
	if resp.IsError() {
		c.metrics.FeedRequests.WithLabelValues(upstream, "error").Inc()
		return fmt.Errorf("jma: get %s: status %d", path, resp.StatusCode())
	}
	c.metrics.FeedRequests.WithLabelValues(upstream, "success").Inc()
	return nil
}

// Overview fetches the prose forecast overview for one area.
func (c *Client) Overview(ctx context.Context, areaCode string) (domain.WeatherReport, error) {
	var body overviewResponse
	if err := c.get(ctx, fmt.Sprintf("/forecast/data/overview_forecast/%s.json", areaCode), &body); err != nil {
		return domain.WeatherReport{}, err
	}

	office := body.PublishingOffice
	if office == "" {
		office = "気象庁"
	}
	return domain.WeatherReport{
		Area:             body.TargetArea,
		AreaCode:         areaCode,
		PublishingOffice: office,
		ReportDatetime:   body.ReportDatetime,
		Headline:         body.HeadlineText,
		Text:             body.Text,
	}, nil
}

// Warnings fetches the warning bulletin for one area. Every entry is
// returned with its status; filtering to in-force warnings happens when
// alerts are built from the bulletin.
func (c *Client) Warnings(ctx context.Context, areaCode string) (domain.WarningBulletin, error) {
	var body warningResponse
	if err := c.get(ctx, fmt.Sprintf("/warning/data/warning/%s.json", areaCode), &body); err != nil {
		return domain.WarningBulletin{}, err
	}

	bulletin := domain.WarningBulletin{ReportDatetime: body.ReportDatetime}
	for _, areaType := range body.AreaTypes {
		for _, area := range areaType.Areas {
			for _, w := range area.Warnings {
				bulletin.Warnings = append(bulletin.Warnings, domain.RawWarning{
					AreaName: area.Name,
					Code:     w.Code,
					Status:   w.Status,
				})
			}
		}
	}
	return bulletin, nil
}

// PrefectureBulletin pairs one prefecture's warning bulletin with its
// area code.
type PrefectureBulletin struct {
	Prefecture string
	AreaCode   string
	Bulletin   domain.WarningBulletin
}

// AllPrefectureWarnings scans every prefecture's warning feed with
// bounded concurrency. Prefectures whose fetch fails are logged and
// omitted; the scan itself always completes. Results are ordered by
// area code.
func (c *Client) AllPrefectureWarnings(ctx context.Context) []PrefectureBulletin {
	sem := make(chan struct{}, maxConcurrentFetches)
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		out []PrefectureBulletin
	)

	for name, code := range prefectureCodes {
		wg.Add(1)
		go func(name, code string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			bulletin, err := c.Warnings(ctx, code)
			if err != nil {
				c.logger.Warn("prefecture warning fetch failed", "prefecture", name, "error", err)
				return
			}
			mu.Lock()
			out = append(out, PrefectureBulletin{Prefecture: name, AreaCode: code, Bulletin: bulletin})
			mu.Unlock()
		}(name, code)
	}
	wg.Wait()

	sort.Slice(out, func(i, j int) bool { return out[i].AreaCode < out[j].AreaCode })
	return out
}

// JMA forecast and warning feed wire types.

type overviewResponse struct {
	PublishingOffice string `json:"publishingOffice"`
	ReportDatetime   string `json:"reportDatetime"`
	TargetArea       string `json:"targetArea"`
	HeadlineText     string `json:"headlineText"`
	Text             string `json:"text"`
}

type warningResponse struct {
	ReportDatetime string            `json:"reportDatetime"`
	AreaTypes      []warningAreaType `json:"areaTypes"`
}

type warningAreaType struct {
	Areas []warningArea `json:"areas"`
}

type warningArea struct {
	Name     string         `json:"name"`
	Warnings []warningEntry `json:"warnings"`
}

type warningEntry struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}
