package mapview

import "github.com/paulmach/orb"

// ContainerID is the DOM id of the element the map mounts into.
const ContainerID = "map"

// OverlayName is the layer-control label for the earthquake markers.
const OverlayName = "Earthquakes"

// TileLayer is a raster base layer.
type TileLayer struct {
	Name        string
	URL         string
	Attribution string
	Subdomains  string
	MaxZoom     int
}

// BaseLayers returns the street, topographic and dark tile layers, in the
// order they appear in the layer control. The first one is shown initially.
func BaseLayers() []TileLayer {
	return []TileLayer{
		{
			Name:        "Street Map",
			URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
		},
		{
			Name: "Topographic Map",
			URL:  "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
			Attribution: `Map data: &copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors, ` +
				`<a href="http://viewfinderpanoramas.org">SRTM</a> | Map style: &copy; <a href="https://opentopomap.org">OpenTopoMap</a> ` +
				`(<a href="https://creativecommons.org/licenses/by-sa/3.0/">CC-BY-SA</a>)`,
		},
		{
			Name:        "Dark Map",
			URL:         "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
			Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`,
			Subdomains:  "abcd",
			MaxZoom:     20,
		},
	}
}

// Overlay is a named marker layer that can be toggled in the layer control.
type Overlay struct {
	Name    string
	Markers []Marker
}

// View is the initial map viewport.
type View struct {
	Center orb.Point // lon, lat
	Zoom   int
}

// DefaultView centers the map on the contiguous United States.
func DefaultView() View {
	return View{Center: orb.Point{-95.71, 37.09}, Zoom: 4}
}

// Map is the complete, render-ready description of the page's map.
type Map struct {
	ContainerID string
	View        View
	BaseLayers  []TileLayer
	Overlays    []Overlay
	// ControlCollapsed mirrors Leaflet's layers control option.
	ControlCollapsed bool
	Legend           Legend
}

// Compose assembles the map. A nil markers slice means the feed never
// arrived and the map gets no overlay; an empty slice still adds the
// Earthquakes overlay with nothing in it.
func Compose(view View, markers []Marker) Map {
	m := Map{
		ContainerID:      ContainerID,
		View:             view,
		BaseLayers:       BaseLayers(),
		ControlCollapsed: false,
		Legend:           BuildLegend(),
	}
	if markers != nil {
		m.Overlays = []Overlay{{Name: OverlayName, Markers: markers}}
	}
	return m
}

// MarkerCount returns the number of markers across all overlays.
func (m Map) MarkerCount() int {
	n := 0
	for _, o := range m.Overlays {
		n += len(o.Markers)
	}
	return n
}
