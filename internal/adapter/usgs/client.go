package usgs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/observability"
)

// maxFeedBytes bounds the feed body; the 30-day feed is roughly 10 MB.
const maxFeedBytes = 64 << 20

// Client fetches the earthquake feed from an HTTP(S) URL or a local file.
type Client struct {
	source     string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client. source is an http(s) URL, a file:// URL,
// or a plain filesystem path.
func NewClient(source string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		source: source,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves and decodes the feed.
func (c *Client) Fetch(ctx context.Context) (domain.Feed, error) {
	start := domain.Now()
	feed, err := c.fetch(ctx)
	c.metrics.FeedFetchDuration.Observe(domain.Since(start).Seconds())
	if err != nil {
		c.metrics.FeedFetches.WithLabelValues("error").Inc()
		return domain.Feed{}, err
	}

	c.metrics.FeedFetches.WithLabelValues("success").Inc()
	c.metrics.FeaturesDecoded.Add(float64(len(feed.Quakes)))
	c.logger.Info("feed fetched",
		"feed_url", c.source,
		"title", feed.Title,
		"feature_count", len(feed.Quakes),
	)
	return feed, nil
}

func (c *Client) fetch(ctx context.Context) (domain.Feed, error) {
	data, err := c.FetchRaw(ctx)
	if err != nil {
		return domain.Feed{}, err
	}
	feed, err := DecodeFeed(data)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("decode feed: %w", err)
	}
	return feed, nil
}

// FetchRaw returns the undecoded feed body.
func (c *Client) FetchRaw(ctx context.Context) ([]byte, error) {
	if path, ok := localPath(c.source); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read feed file: %w", err)
		}
		return data, nil
	}
	return c.doRequest(ctx)
}

func (c *Client) doRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed error: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	return data, nil
}

// localPath reports whether source names a file rather than a remote URL.
func localPath(source string) (string, bool) {
	if strings.HasPrefix(source, "file://") {
		u, err := url.Parse(source)
		if err != nil {
			return strings.TrimPrefix(source, "file://"), true
		}
		return u.Path, true
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return "", false
	}
	return source, true
}
