// Package watch polls the disaster feeds and publishes newly observed
// events to the alert topic.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second

	// quakeFetchLimit bounds each sweep's earthquake fetch; anything older
	// is either already seen or stale.
	quakeFetchLimit = 10

	// maxSeenEvents bounds the dedupe set. The feeds only return recent
	// items, so a few hundred IDs cover far more history than one sweep.
	maxSeenEvents = 512
)

// QuakeSource lists recent earthquakes, newest first.
type QuakeSource interface {
	RecentQuakes(ctx context.Context, limit int) ([]domain.Earthquake, error)
}

// TsunamiSource lists tsunami bulletins with a live warning or advisory.
type TsunamiSource interface {
	ActiveTsunami(ctx context.Context) ([]domain.TsunamiEvent, error)
}

// AlertSink receives the alert events for publication.
type AlertSink interface {
	Publish(ctx context.Context, events ...domain.AlertEvent) error
}

// Watcher polls the quake and tsunami feeds on an interval and pushes
// events it has not seen before into the sink.
type Watcher struct {
	quakes   QuakeSource
	tsunami  TsunamiSource
	sink     AlertSink
	interval time.Duration
	clock    clockwork.Clock
	metrics  *observability.Metrics
	logger   *slog.Logger

	ready     atomic.Bool
	seen      map[string]struct{}
	seenOrder []string
}

// New creates a Watcher polling at the given interval.
func New(quakes QuakeSource, tsunami TsunamiSource, sink AlertSink, interval time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Watcher {
	return &Watcher{
		quakes:   quakes,
		tsunami:  tsunami,
		sink:     sink,
		interval: interval,
		clock:    clockwork.NewRealClock(),
		metrics:  metrics,
		logger:   logger,
		seen:     make(map[string]struct{}),
	}
}

// CheckReadiness returns nil once at least one sweep has completed, or an
// error describing why the service is not yet ready.
func (w *Watcher) CheckReadiness(_ context.Context) error {
	if !w.ready.Load() {
		return errors.New("watcher has not completed a sweep yet")
	}
	return nil
}

// Run executes the poll loop until the context is cancelled. The first
// sweep happens immediately so readiness does not wait out a full interval.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("disaster watch started", "interval", w.interval)
	w.metrics.WatcherRunning.Set(1)
	defer w.metrics.WatcherRunning.Set(0)

	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	// Keeps retry loops short without hammering a struggling upstream.
	backoff := initialBackoff

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("disaster watch stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if err := w.sweep(ctx); err != nil {
			if ctx.Err() != nil {
				w.logger.Info("disaster watch stopping", "reason", ctx.Err())
				return nil
			}
			w.metrics.WatchCycleErrors.Inc()
			w.logger.Error("watch sweep failed", "error", err)
			if !w.sleep(ctx, backoff) {
				return nil
			}
			backoff = nextBackoff(backoff)
			continue
		}

		backoff = initialBackoff
		w.ready.Store(true)

		if !w.sleep(ctx, w.interval) {
			w.logger.Info("disaster watch stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// sweep fetches both feeds and publishes the events not seen before. Seen
// IDs are recorded only after a successful publish so failed events are
// retried on the next sweep.
func (w *Watcher) sweep(ctx context.Context) error {
	quakes, err := w.quakes.RecentQuakes(ctx, quakeFetchLimit)
	if err != nil {
		return fmt.Errorf("recent quakes: %w", err)
	}
	tsunamis, err := w.tsunami.ActiveTsunami(ctx)
	if err != nil {
		return fmt.Errorf("active tsunami: %w", err)
	}

	now := w.clock.Now()
	events := make([]domain.AlertEvent, 0)
	keys := make([]string, 0)

	for _, q := range quakes {
		key := "quake:" + q.ID
		if _, ok := w.seen[key]; ok {
			continue
		}
		events = append(events, domain.AlertEvent{
			ID:         q.ID,
			Kind:       "earthquake",
			Title:      "地震情報",
			Message:    q.Message,
			Area:       q.Location,
			Severity:   quakeSeverity(q.MaxIntensity),
			DetectedAt: now,
		})
		keys = append(keys, key)
	}

	for _, e := range tsunamis {
		key := "tsunami:" + e.ID
		if _, ok := w.seen[key]; ok {
			continue
		}
		events = append(events, domain.AlertEvent{
			ID:         e.ID,
			Kind:       "tsunami",
			Title:      e.Title,
			Message:    e.Message,
			Area:       e.EarthquakeLocation,
			Severity:   tsunamiSeverity(e.WarningLevel),
			DetectedAt: now,
		})
		keys = append(keys, key)
	}

	if len(events) == 0 {
		return nil
	}

	if err := w.sink.Publish(ctx, events...); err != nil {
		return fmt.Errorf("publish alerts: %w", err)
	}
	for _, key := range keys {
		w.markSeen(key)
	}
	w.logger.Info("alerts published", "count", len(events))
	return nil
}

func (w *Watcher) markSeen(key string) {
	if _, ok := w.seen[key]; ok {
		return
	}
	w.seen[key] = struct{}{}
	w.seenOrder = append(w.seenOrder, key)
	if len(w.seenOrder) > maxSeenEvents {
		delete(w.seen, w.seenOrder[0])
		w.seenOrder = w.seenOrder[1:]
	}
}

// sleep waits for d on the watcher clock. Returns false when the context
// ends first.
func (w *Watcher) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := w.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

// quakeSeverity grades an earthquake by its JMA intensity class.
func quakeSeverity(intensity string) domain.Severity {
	switch intensity {
	case "7", "6強", "6弱":
		return domain.SeverityExtreme
	case "5強", "5弱":
		return domain.SeverityHigh
	case "4":
		return domain.SeverityMedium
	}
	return domain.SeverityLow
}

// tsunamiSeverity grades a tsunami bulletin by its warning level.
func tsunamiSeverity(level string) domain.Severity {
	switch level {
	case domain.TsunamiMajorWarning:
		return domain.SeverityExtreme
	case domain.TsunamiWarning:
		return domain.SeverityHigh
	case domain.TsunamiAdvisory:
		return domain.SeverityMedium
	}
	return domain.SeverityLow
}

// Disabled is the watcher stand-in when alert publishing is off. It is
// always ready and publishes nothing.
type Disabled struct{}

// Run blocks until the context is cancelled.
func (Disabled) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// CheckReadiness always succeeds.
func (Disabled) CheckReadiness(context.Context) error { return nil }
