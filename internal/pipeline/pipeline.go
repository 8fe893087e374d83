package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/quake-map/internal/adapter/page"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/observability"
)

// FeedFetcher retrieves and decodes the earthquake feed.
type FeedFetcher interface {
	Fetch(ctx context.Context) (domain.Feed, error)
}

// Composer builds a page document from a feed; nil means the fetch failed.
type Composer interface {
	Compose(feed *domain.Feed) page.Document
}

// Renderer turns a document into HTML.
type Renderer interface {
	Render(ctx context.Context, doc page.Document) ([]byte, error)
}

// Publisher makes a rendered page available (file, preview server).
type Publisher interface {
	Publish(ctx context.Context, page []byte) error
}

// Pipeline performs the single fetch-render-publish pass.
type Pipeline struct {
	fetcher    FeedFetcher
	composer   Composer
	renderer   Renderer
	publishers []Publisher
	logger     *slog.Logger
	metrics    *observability.Metrics
	ready      atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(f FeedFetcher, c Composer, r Renderer, publishers []Publisher, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:    f,
		composer:   c,
		renderer:   r,
		publishers: publishers,
		logger:     logger,
		metrics:    metrics,
	}
}

// CheckReadiness returns nil once a page has been published, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("map page has not been published yet")
	}
	return nil
}

// Run fetches the feed once, renders the map and hands it to every publisher.
// A failed fetch is not an error: the map is published without the
// earthquake overlay. Cancellation, rendering and publishing failures are
// returned.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "publishers", len(p.publishers))

	var fetched *domain.Feed
	feed, err := p.fetcher.Fetch(ctx)
	switch {
	case ctx.Err() != nil:
		p.logger.Info("pipeline stopping", "reason", ctx.Err())
		return ctx.Err()
	case err != nil:
		p.logger.Error("feed fetch failed, publishing map without earthquakes", "error", err)
	default:
		fetched = &feed
	}

	start := domain.Now()
	doc := p.composer.Compose(fetched)
	html, err := p.renderer.Render(ctx, doc)
	if err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	p.metrics.RenderDuration.Observe(domain.Since(start).Seconds())

	for _, pub := range p.publishers {
		if err := pub.Publish(ctx, html); err != nil {
			return fmt.Errorf("publish map: %w", err)
		}
	}

	p.metrics.PagePublished.Set(1)
	p.ready.Store(true)
	p.logger.Info("map published",
		"marker_count", doc.Map.MarkerCount(),
		"overlay", len(doc.Map.Overlays) > 0,
		"bytes", len(html),
	)
	return nil
}
