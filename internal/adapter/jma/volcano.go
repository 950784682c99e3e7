package jma

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kitsunebi/disaster-info-api/internal/domain"
)

// monitoredVolcanoes are the continuously observed volcanoes whose warning
// feeds are polled individually, keyed by JMA volcano code.
var monitoredVolcanoes = map[int]string{
	314: "富士山",
	312: "箱根山",
	503: "阿蘇山",
	506: "桜島",
	507: "霧島山",
	502: "雲仙岳",
	306: "浅間山",
	101: "十勝岳",
	102: "樽前山",
	103: "有珠山",
	202: "岩手山",
	205: "蔵王山",
	301: "那須岳",
	302: "日光白根山",
	303: "草津白根山",
	504: "薩摩硫黄島",
	505: "口永良部島",
	601: "諏訪之瀬島",
	509: "新燃岳",
	510: "硫黄島",
}

// VolcanoList fetches the constant list of volcanoes. A volcano is marked
// monitored when it is on the continuous-observation watchlist or the feed
// flags it for level operation.
func (c *Client) VolcanoList(ctx context.Context) ([]domain.VolcanoInfo, error) {
	var items []volcanoItem
	if err := c.get(ctx, "/volcano/const/volcano_list.json", &items); err != nil {
		return nil, err
	}

	volcanoes := make([]domain.VolcanoInfo, 0, len(items))
	for _, item := range items {
		var lat, lon float64
		if len(item.LatLon) > 0 {
			lat = item.LatLon[0]
		}
		if len(item.LatLon) > 1 {
			lon = item.LatLon[1]
		}

		_, watched := monitoredVolcanoes[item.Code]
		volcanoes = append(volcanoes, domain.VolcanoInfo{
			Code:        item.Code,
			Name:        item.NameJP,
			NameEN:      item.NameEN,
			Latitude:    lat,
			Longitude:   lon,
			IsMonitored: watched || item.LevelOperation,
		})
	}
	return volcanoes, nil
}

// VolcanoWarnings polls the warning feed of every monitored volcano and
// returns the active eruption alerts. Volcanoes whose feed fails or
// carries no level are skipped; the poll itself always completes. Results
// are ordered by volcano code.
func (c *Client) VolcanoWarnings(ctx context.Context) []domain.VolcanoWarning {
	sem := make(chan struct{}, maxConcurrentFetches)
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		out []domain.VolcanoWarning
	)

	for code, name := range monitoredVolcanoes {
		wg.Add(1)
		go func(code int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			var body volcanoWarningResponse
			if err := c.get(ctx, fmt.Sprintf("/volcano/data/warning/%d.json", code), &body); err != nil {
				c.logger.Warn("volcano warning fetch failed", "volcano_code", code, "error", err)
				return
			}
			if body.Level == nil {
				return
			}

			info := domain.AlertLevelInfo(*body.Level)
			mu.Lock()
			out = append(out, domain.VolcanoWarning{
				VolcanoCode:    code,
				VolcanoName:    name,
				AlertLevel:     *body.Level,
				AlertLevelName: info.Name,
				Severity:       info.Severity,
				Action:         info.Action,
				IssuedAt:       body.ReportDatetime,
				Headline:       body.HeadlineText,
			})
			mu.Unlock()
		}(code, name)
	}
	wg.Wait()

	sort.Slice(out, func(i, j int) bool { return out[i].VolcanoCode < out[j].VolcanoCode })
	return out
}

// JMA volcano feed wire types.

type volcanoItem struct {
	Code           int       `json:"code"`
	NameJP         string    `json:"name_jp"`
	NameEN         string    `json:"name_en"`
	LatLon         []float64 `json:"latlon"`
	LevelOperation bool      `json:"levelOperation"`
}

type volcanoWarningResponse struct {
	Level          *int   `json:"level"`
	ReportDatetime string `json:"reportDatetime"`
	HeadlineText   string `json:"headlineText"`
}
