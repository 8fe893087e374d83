package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/quake-map/internal/adapter/file"
	httpadapter "github.com/couchcryptid/quake-map/internal/adapter/http"
	"github.com/couchcryptid/quake-map/internal/adapter/page"
	"github.com/couchcryptid/quake-map/internal/adapter/usgs"
	"github.com/couchcryptid/quake-map/internal/config"
	"github.com/couchcryptid/quake-map/internal/mapview"
	"github.com/couchcryptid/quake-map/internal/observability"
	"github.com/couchcryptid/quake-map/internal/pipeline"
	"github.com/paulmach/orb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := usgs.NewClient(cfg.FeedURL, cfg.FeedTimeout, metrics, logger)
	view := mapview.View{Center: orb.Point{cfg.CenterLon, cfg.CenterLat}, Zoom: cfg.Zoom}
	composer := pipeline.NewComposer(view, cfg.Language, cfg.Location, metrics)
	renderer := page.NewRenderer(metrics, logger)

	var publishers []pipeline.Publisher
	if cfg.OutputPath != "" {
		publishers = append(publishers, file.NewWriter(cfg.OutputPath, logger))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.ServeEnabled {
		p := pipeline.New(fetcher, composer, renderer, publishers, logger, metrics)
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
			os.Exit(1)
		}
		return
	}

	// Preview mode: the server is both a publisher and reports the pipeline's readiness.
	var p *pipeline.Pipeline
	srv := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.ReadinessFunc(func(ctx context.Context) error {
		return p.CheckReadiness(ctx)
	}), logger)
	p = pipeline.New(fetcher, composer, renderer, append(publishers, srv), logger, metrics)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	exitCode := 0
	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("pipeline error", "error", err)
		exitCode = 1
		stop()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
