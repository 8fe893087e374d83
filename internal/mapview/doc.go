// Package mapview turns decoded earthquakes into a description of a Leaflet
// map: circle markers with popups, the base tile layers, the layer switcher
// and the depth legend. It has no knowledge of HTML documents; the page
// adapter renders a [Map] into one.
package mapview
