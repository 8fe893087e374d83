package mapview

import "github.com/couchcryptid/quake-map/internal/domain"

// LegendPosition is the Leaflet control corner the legend is attached to.
const LegendPosition = "bottomright"

// LegendEntry pairs a depth range label with its swatch color.
type LegendEntry struct {
	Label string
	Color string
}

// Legend is a static control listing the depth scale.
type Legend struct {
	Position string
	Entries  []LegendEntry
}

// BuildLegend lists every depth category next to its color in table order.
// The fallback color has no category and is not listed.
func BuildLegend() Legend {
	entries := make([]LegendEntry, len(domain.Categories))
	for i, label := range domain.Categories {
		entries[i] = LegendEntry{Label: label, Color: domain.Colors[i]}
	}
	return Legend{Position: LegendPosition, Entries: entries}
}
