package mapview

import (
	"html"
	"math"
	"strings"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/paulmach/orb"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RadiusScale converts magnitude to marker radius in pixels.
const RadiusScale = 3

// Stroke and fill settings shared by every marker. FillOpacity is handed to
// Leaflet as-is, which clamps it to 1.
const (
	StrokeColor   = "black"
	StrokeWeight  = 0.2
	StrokeOpacity = 0.8
	FillOpacity   = 3
)

// popupTimeLayout mimics the browser's Date.prototype.toString output.
const popupTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Marker is a circle marker for one earthquake.
type Marker struct {
	ID        string
	Position  orb.Point // lon, lat
	Radius    float64
	FillColor string
	Bucket    int
	Popup     string
}

// PopupFormatter renders marker popup HTML in a fixed locale and time zone.
type PopupFormatter struct {
	printer  *message.Printer
	location *time.Location
}

// NewPopupFormatter creates a formatter. A nil location means UTC.
func NewPopupFormatter(tag language.Tag, loc *time.Location) *PopupFormatter {
	if loc == nil {
		loc = time.UTC
	}
	return &PopupFormatter{
		printer:  message.NewPrinter(tag),
		location: loc,
	}
}

// Format returns the popup body for q.
func (f *PopupFormatter) Format(q domain.Earthquake) string {
	var b strings.Builder
	b.WriteString("<h3>")
	b.WriteString(html.EscapeString(q.Place))
	b.WriteString("</h3><hr><p>")
	b.WriteString(f.formatTime(q.Time))
	b.WriteString("</p><ul><li>Earthquake Magnitude: ")
	b.WriteString(f.formatNumber(q.Magnitude))
	b.WriteString("</li><li>Earthquake Depth: ")
	b.WriteString(f.formatNumber(q.Depth))
	b.WriteString("</li></ul>")
	return b.String()
}

func (f *PopupFormatter) formatTime(t time.Time) string {
	if t.IsZero() {
		return "Invalid Date"
	}
	return t.In(f.location).Format(popupTimeLayout)
}

func (f *PopupFormatter) formatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return f.printer.Sprint(v)
}

// NewMarker builds the marker for one earthquake. Magnitude and depth are not
// validated; a NaN magnitude yields a NaN radius.
func NewMarker(q domain.Earthquake, popups *PopupFormatter) Marker {
	bucket := domain.DepthBucket(q.Depth)
	return Marker{
		ID:        q.ID,
		Position:  orb.Point{q.Longitude, q.Latitude},
		Radius:    q.Magnitude * RadiusScale,
		FillColor: domain.Colors[bucket],
		Bucket:    bucket,
		Popup:     popups.Format(q),
	}
}

// BuildMarkers converts every earthquake into a marker, preserving feed order.
// The result is non-nil even for an empty input.
func BuildMarkers(quakes []domain.Earthquake, popups *PopupFormatter) []Marker {
	markers := make([]Marker, 0, len(quakes))
	for _, q := range quakes {
		markers = append(markers, NewMarker(q, popups))
	}
	return markers
}
