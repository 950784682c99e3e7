package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kitsunebi/disaster-info-api/internal/adapter/httpapi"
	"github.com/kitsunebi/disaster-info-api/internal/adapter/jma"
	kafkaadapter "github.com/kitsunebi/disaster-info-api/internal/adapter/kafka"
	"github.com/kitsunebi/disaster-info-api/internal/adapter/p2pquake"
	"github.com/kitsunebi/disaster-info-api/internal/config"
	"github.com/kitsunebi/disaster-info-api/internal/guide"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
	"github.com/kitsunebi/disaster-info-api/internal/push"
	"github.com/kitsunebi/disaster-info-api/internal/shelter"
	"github.com/kitsunebi/disaster-info-api/internal/translate"
	"github.com/kitsunebi/disaster-info-api/internal/watch"
)

// runner is the background loop behind the readiness probe: the feed
// watcher when alert publishing is on, a no-op otherwise.
type runner interface {
	Run(ctx context.Context) error
	CheckReadiness(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	cache := translate.NewCache(cfg.CacheFile, cfg.CacheFlushThreshold, metrics, logger)
	gateway := translate.NewGateway(cfg, metrics, logger)
	translator := translate.NewTranslator(cache, gateway, metrics, logger)
	guides := guide.NewGenerator(cache, gateway, translator, logger)

	jmaClient := jma.NewClient(cfg, metrics, logger)
	quakeClient := p2pquake.NewClient(cfg, metrics, logger)
	shelters := shelter.NewStore(cfg.ShelterDataFile, logger)
	subscriptions := push.NewRegistry(cfg.PushSubscriptionsFile, logger)

	// Alert publishing is feature-flagged via KAFKA_BROKERS / ALERTS_ENABLED.
	// Without it the watcher idles and readiness reports ready immediately.
	var (
		publisher *kafkaadapter.Publisher
		alertSink httpapi.AlertSink
		watcher   runner
	)
	if cfg.AlertsEnabled {
		publisher = kafkaadapter.NewPublisher(cfg, metrics, logger)
		w := watch.New(quakeClient, jmaClient, publisher, cfg.WatchInterval, metrics, logger)
		alertSink = publisher
		watcher = w
		logger.Info("alert publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaAlertTopic, "interval", cfg.WatchInterval)
	} else {
		watcher = watch.Disabled{}
		logger.Info("alert publishing disabled")
	}

	srv := httpapi.NewServer(cfg, httpapi.Deps{
		Quakes:    quakeClient,
		Weather:   jmaClient,
		Warnings:  jmaClient,
		Tsunami:   jmaClient,
		Volcanoes: jmaClient,
		Localizer: translator,
		Guides:    guides,
		Shelters:  shelters,
		Push:      subscriptions,
		Alerts:    alertSink,
		Ready:     watcher,
		Metrics:   metrics,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the disaster feed watcher.
	go func() {
		if err := watcher.Run(ctx); err != nil {
			logger.Error("watcher error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("alert publisher close error", "error", err)
		}
	}
	if err := jmaClient.Close(); err != nil {
		logger.Error("jma client close error", "error", err)
	}
	if err := quakeClient.Close(); err != nil {
		logger.Error("p2pquake client close error", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Error("translation cache flush error", "error", err)
	}

	logger.Info("shutdown complete")
}
