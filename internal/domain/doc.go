// Package domain models USGS earthquake feed data and the depth color scale
// used to draw it.
//
// # Data Source
//
// Earthquakes come from the USGS Earthquake Hazards Program summary feeds,
// published as GeoJSON at
// https://earthquake.usgs.gov/earthquakes/feed/v1.0/geojson.php. The feeds are
// regenerated every minute; the default is the "all earthquakes, past 30 days"
// feed.
//
// # Feed Conventions
//
// Each feature is a Point:
//
//	geometry.coordinates = [longitude, latitude, depth]
//	properties.mag       = magnitude (may be null for very small events)
//	properties.place     = "10 km SSW of Idyllwild, CA"
//	properties.time      = origin time, milliseconds since the Unix epoch (UTC)
//
// Depth is reported in kilometers below sea level. Shallow events near coasts
// and volcanoes can carry negative depth (above the geoid).
//
// Missing or null values are not rejected: numeric fields decode to NaN and
// string fields to "", and the map draws whatever that produces.
//
// # Depth Scale
//
// Depth is bucketed into six bands (see [DepthBucket]) checked from deepest to
// shallowest, so the first threshold exceeded wins:
//
//	>90 Yellow | >70 Orange | >50 pink | >30 Purple | >10 blue | >-10 Red
//
// Anything at or below -10 km (and NaN) falls through to Green, which the
// legend does not list.
package domain
