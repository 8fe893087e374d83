package page

import (
	"math"

	"github.com/couchcryptid/quake-map/internal/mapview"
	"github.com/paulmach/orb/geojson"
)

// Feature property keys read by the page script.
const (
	propRadius      = "radius"
	propFillColor   = "fillColor"
	propColor       = "color"
	propWeight      = "weight"
	propOpacity     = "opacity"
	propFillOpacity = "fillOpacity"
	propPopup       = "popup"
	propBucket      = "bucket"
)

// EncodeOverlay converts markers into a GeoJSON FeatureCollection carrying the
// marker style in each feature's properties. Markers whose position is not
// finite cannot be represented in JSON and are left out; the number left out
// is returned.
func EncodeOverlay(markers []mapview.Marker) (*geojson.FeatureCollection, int) {
	fc := geojson.NewFeatureCollection()
	skipped := 0
	for _, m := range markers {
		if !finite(m.Position[0]) || !finite(m.Position[1]) {
			skipped++
			continue
		}

		f := geojson.NewFeature(m.Position)
		if m.ID != "" {
			f.ID = m.ID
		}
		f.Properties[propRadius] = jsonNumber(m.Radius)
		f.Properties[propFillColor] = m.FillColor
		f.Properties[propColor] = mapview.StrokeColor
		f.Properties[propWeight] = mapview.StrokeWeight
		f.Properties[propOpacity] = mapview.StrokeOpacity
		f.Properties[propFillOpacity] = mapview.FillOpacity
		f.Properties[propPopup] = m.Popup
		f.Properties[propBucket] = m.Bucket
		fc.Append(f)
	}
	return fc, skipped
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// jsonNumber maps values JSON cannot carry to null.
func jsonNumber(v float64) any {
	if !finite(v) {
		return nil
	}
	return v
}
