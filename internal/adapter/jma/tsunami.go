package jma

import (
	"context"

	"github.com/kitsunebi/disaster-info-api/internal/domain"
)

// activeScanLimit is how many recent bulletins are inspected when looking
// for live warnings.
const activeScanLimit = 20

// TsunamiList fetches the most recent tsunami bulletins, newest first.
func (c *Client) TsunamiList(ctx context.Context, limit int) ([]domain.TsunamiEvent, error) {
	var items []tsunamiItem
	if err := c.get(ctx, "/tsunami/data/list.json", &items); err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	events := make([]domain.TsunamiEvent, 0, len(items))
	for _, item := range items {
		kinds := make([]domain.TsunamiKind, 0, len(item.Kind))
		for _, k := range item.Kind {
			kinds = append(kinds, domain.TsunamiKind{Name: k.Name, Code: k.Code})
		}

		events = append(events, domain.TsunamiEvent{
			ID:                   item.ID,
			EventID:              item.EventID,
			Title:                item.Title,
			TitleEN:              item.TitleEN,
			ReportDatetime:       item.ReportDatetime,
			EarthquakeTime:       item.EarthquakeTime,
			EarthquakeLocation:   item.AreaName,
			EarthquakeLocationEN: item.AreaNameEN,
			Magnitude:            item.Magnitude,
			Coordinates:          item.Coordinates,
			WarningLevel:         domain.TsunamiLevelFromKinds(kinds),
			Areas:                kinds,
			Message:              domain.BuildTsunamiMessage(item.Title, item.AreaName, item.Magnitude),
		})
	}
	return events, nil
}

// ActiveTsunami returns the bulletins that currently carry a warning or
// advisory.
func (c *Client) ActiveTsunami(ctx context.Context) ([]domain.TsunamiEvent, error) {
	events, err := c.TsunamiList(ctx, activeScanLimit)
	if err != nil {
		return nil, err
	}

	var active []domain.TsunamiEvent
	for _, e := range events {
		if e.Active() {
			active = append(active, e)
		}
	}
	return active, nil
}

// JMA tsunami feed wire types.

type tsunamiItem struct {
	ID             string        `json:"ctt"`
	EventID        string        `json:"eid"`
	Title          string        `json:"ttl"`
	TitleEN        string        `json:"en_ttl"`
	ReportDatetime string        `json:"rdt"`
	EarthquakeTime string        `json:"at"`
	AreaName       string        `json:"anm"`
	AreaNameEN     string        `json:"en_anm"`
	Magnitude      string        `json:"mag"`
	Coordinates    string        `json:"cod"`
	Kind           []tsunamiKind `json:"kind"`
}

type tsunamiKind struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
