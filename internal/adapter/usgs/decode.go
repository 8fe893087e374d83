package usgs

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when the feed body is not a JSON document.
var ErrInvalidJSON = errors.New("feed is not valid JSON")

// DecodeFeed extracts earthquakes from a GeoJSON FeatureCollection.
// Fields are read leniently: a missing or non-numeric number becomes NaN and
// a missing string becomes "". A document without "features" is an empty feed.
func DecodeFeed(data []byte) (domain.Feed, error) {
	if !gjson.ValidBytes(data) {
		return domain.Feed{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)

	feed := domain.Feed{
		Title:     root.Get("metadata.title").String(),
		Generated: epochMillis(root.Get("metadata.generated")),
	}

	features := root.Get("features")
	if !features.IsArray() {
		return feed, nil
	}

	feed.Quakes = make([]domain.Earthquake, 0, len(features.Array()))
	features.ForEach(func(_, f gjson.Result) bool {
		feed.Quakes = append(feed.Quakes, decodeFeature(f))
		return true
	})
	return feed, nil
}

func decodeFeature(f gjson.Result) domain.Earthquake {
	props := f.Get("properties")
	coords := f.Get("geometry.coordinates")
	return domain.Earthquake{
		ID:        f.Get("id").String(),
		Magnitude: numberOrNaN(props.Get("mag")),
		Place:     props.Get("place").String(),
		Time:      epochMillis(props.Get("time")),
		Longitude: numberOrNaN(coords.Get("0")),
		Latitude:  numberOrNaN(coords.Get("1")),
		Depth:     numberOrNaN(coords.Get("2")),
	}
}

func numberOrNaN(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	default:
		return math.NaN()
	}
}

// epochMillis converts a millisecond timestamp, returning the zero time when absent.
func epochMillis(r gjson.Result) time.Time {
	if r.Type != gjson.Number {
		return time.Time{}
	}
	return time.UnixMilli(r.Int()).UTC()
}
