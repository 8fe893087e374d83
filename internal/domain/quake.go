package domain

import "time"

// Earthquake is one feature from the feed.
type Earthquake struct {
	ID        string
	Magnitude float64
	Place     string
	Time      time.Time
	Longitude float64
	Latitude  float64
	Depth     float64
}

// Feed is a decoded FeatureCollection plus the metadata block USGS attaches.
type Feed struct {
	Title     string
	Generated time.Time
	Quakes    []Earthquake
}
