package pipeline

import (
	"time"

	"github.com/couchcryptid/quake-map/internal/adapter/page"
	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/couchcryptid/quake-map/internal/mapview"
	"github.com/couchcryptid/quake-map/internal/observability"
	"golang.org/x/text/language"
)

// MapComposer turns a decoded feed into a page document.
type MapComposer struct {
	view     mapview.View
	popups   *mapview.PopupFormatter
	lang     language.Tag
	location *time.Location
	metrics  *observability.Metrics
}

// NewComposer creates a MapComposer for the given viewport, locale and time zone.
func NewComposer(view mapview.View, lang language.Tag, loc *time.Location, metrics *observability.Metrics) *MapComposer {
	if loc == nil {
		loc = time.UTC
	}
	return &MapComposer{
		view:     view,
		popups:   mapview.NewPopupFormatter(lang, loc),
		lang:     lang,
		location: loc,
		metrics:  metrics,
	}
}

// Compose builds the document. A nil feed produces a map without the
// earthquake overlay.
func (c *MapComposer) Compose(feed *domain.Feed) page.Document {
	doc := page.Document{
		Language:   c.lang,
		Location:   c.location,
		RenderedAt: domain.Now(),
	}

	var markers []mapview.Marker
	if feed != nil {
		doc.Title = feed.Title
		markers = mapview.BuildMarkers(feed.Quakes, c.popups)
		for _, m := range markers {
			c.metrics.MarkersRendered.WithLabelValues(domain.BucketLabel(m.Bucket)).Inc()
		}
	}

	doc.Map = mapview.Compose(c.view, markers)
	return doc
}
