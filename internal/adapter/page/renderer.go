package page

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/a-h/templ"
	"github.com/couchcryptid/quake-map/internal/mapview"
	"github.com/couchcryptid/quake-map/internal/observability"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/text/language"
)

// Leaflet assets pinned to a single release.
const (
	LeafletCSS = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	LeafletJS  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
)

// DefaultTitle is used when the feed carries no title.
const DefaultTitle = "Earthquakes"

// renderedAtLayout formats the footer timestamp.
const renderedAtLayout = "2006-01-02 15:04 MST"

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Document is everything shown on one rendered page.
type Document struct {
	Title      string
	Language   language.Tag
	Location   *time.Location
	RenderedAt time.Time
	Map        mapview.Map
}

// Renderer produces the HTML page for a Document.
type Renderer struct {
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewRenderer creates a page renderer.
func NewRenderer(metrics *observability.Metrics, logger *slog.Logger) *Renderer {
	return &Renderer{metrics: metrics, logger: logger}
}

// Render executes the page template for doc.
func (r *Renderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	data, skipped := r.viewData(doc)
	if skipped > 0 {
		r.metrics.FeaturesSkipped.Add(float64(skipped))
		r.logger.Warn("features without finite coordinates left off the map", "skipped", skipped)
	}

	var buf bytes.Buffer
	if err := Component(data).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// Component wraps the page template as a templ component.
func Component(data ViewData) templ.Component {
	return templ.FromGoHTML(templates.Lookup("map"), data)
}

// ViewData is the template input.
type ViewData struct {
	Lang        string
	Title       string
	LeafletCSS  string
	LeafletJS   string
	RenderedAt  string
	MarkerCount int
	Legend      mapview.Legend
	Config      scriptConfig
}

// scriptConfig is serialized into the page script as a JS object literal.
type scriptConfig struct {
	ContainerID    string          `json:"containerId"`
	Center         [2]float64      `json:"center"` // lat, lon
	Zoom           int             `json:"zoom"`
	Collapsed      bool            `json:"collapsed"`
	LegendPosition string          `json:"legendPosition"`
	BaseLayers     []scriptLayer   `json:"baseLayers"`
	Overlays       []scriptOverlay `json:"overlays"`
}

type scriptLayer struct {
	Name    string       `json:"name"`
	URL     string       `json:"url"`
	Options layerOptions `json:"options"`
}

type layerOptions struct {
	Attribution string `json:"attribution,omitempty"`
	Subdomains  string `json:"subdomains,omitempty"`
	MaxZoom     int    `json:"maxZoom,omitempty"`
}

type scriptOverlay struct {
	Name string                     `json:"name"`
	Data *geojson.FeatureCollection `json:"data"`
}

func (r *Renderer) viewData(doc Document) (ViewData, int) {
	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}
	loc := doc.Location
	if loc == nil {
		loc = time.UTC
	}

	m := doc.Map
	cfg := scriptConfig{
		ContainerID:    m.ContainerID,
		Center:         [2]float64{m.View.Center.Lat(), m.View.Center.Lon()},
		Zoom:           m.View.Zoom,
		Collapsed:      m.ControlCollapsed,
		LegendPosition: m.Legend.Position,
		BaseLayers:     make([]scriptLayer, 0, len(m.BaseLayers)),
		Overlays:       make([]scriptOverlay, 0, len(m.Overlays)),
	}
	for _, l := range m.BaseLayers {
		cfg.BaseLayers = append(cfg.BaseLayers, scriptLayer{
			Name: l.Name,
			URL:  l.URL,
			Options: layerOptions{
				Attribution: l.Attribution,
				Subdomains:  l.Subdomains,
				MaxZoom:     l.MaxZoom,
			},
		})
	}

	skipped, shown := 0, 0
	for _, o := range m.Overlays {
		fc, n := EncodeOverlay(o.Markers)
		skipped += n
		shown += len(fc.Features)
		cfg.Overlays = append(cfg.Overlays, scriptOverlay{Name: o.Name, Data: fc})
	}

	return ViewData{
		Lang:        doc.Language.String(),
		Title:       title,
		LeafletCSS:  LeafletCSS,
		LeafletJS:   LeafletJS,
		RenderedAt:  doc.RenderedAt.In(loc).Format(renderedAtLayout),
		MarkerCount: shown,
		Legend:      m.Legend,
		Config:      cfg,
	}, skipped
}
