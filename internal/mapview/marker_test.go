package mapview

import (
	"math"
	"testing"
	"time"

	"github.com/couchcryptid/quake-map/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testPlace = "10 km SSW of Idyllwild, CA"

func testQuake() domain.Earthquake {
	return domain.Earthquake{
		ID:        "ci40000001",
		Magnitude: 4.5,
		Place:     testPlace,
		Time:      time.Date(2024, 4, 26, 14, 0, 0, 0, time.UTC),
		Longitude: -116.7,
		Latitude:  33.65,
		Depth:     45,
	}
}

func testFormatter() *PopupFormatter {
	return NewPopupFormatter(language.AmericanEnglish, time.UTC)
}

func TestNewMarker(t *testing.T) {
	m := NewMarker(testQuake(), testFormatter())

	want := Marker{
		ID:        "ci40000001",
		Position:  orb.Point{-116.7, 33.65},
		Radius:    13.5,
		FillColor: "Purple",
		Bucket:    2,
		Popup: "<h3>10 km SSW of Idyllwild, CA</h3><hr><p>Fri Apr 26 2024 14:00:00 GMT+0000 (UTC)</p>" +
			"<ul><li>Earthquake Magnitude: 4.5</li><li>Earthquake Depth: 45</li></ul>",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("marker mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMarker_RadiusScalesWithMagnitude(t *testing.T) {
	for _, mag := range []float64{0, 0.1, 1, 2.5, 4.5, 7.8, 9.5, -0.4} {
		q := testQuake()
		q.Magnitude = mag
		m := NewMarker(q, testFormatter())
		assert.Equal(t, mag*3, m.Radius, "magnitude %v", mag)
	}
}

func TestNewMarker_NaNMagnitudePropagates(t *testing.T) {
	q := testQuake()
	q.Magnitude = math.NaN()

	m := NewMarker(q, testFormatter())

	assert.True(t, math.IsNaN(m.Radius))
	assert.Contains(t, m.Popup, "Earthquake Magnitude: NaN")
}

func TestNewMarker_FillColorFollowsDepth(t *testing.T) {
	tests := []struct {
		depth float64
		color string
	}{
		{5, "Red"},
		{20, "blue"},
		{45, "Purple"},
		{60, "pink"},
		{80, "Orange"},
		{150, "Yellow"},
		{-20, "Green"},
	}

	for _, tt := range tests {
		q := testQuake()
		q.Depth = tt.depth
		assert.Equal(t, tt.color, NewMarker(q, testFormatter()).FillColor, "depth %v", tt.depth)
	}
}

func TestPopupFormatter_EscapesPlace(t *testing.T) {
	q := testQuake()
	q.Place = `<script>alert("x")</script>`

	popup := testFormatter().Format(q)

	assert.NotContains(t, popup, "<script>")
	assert.Contains(t, popup, "&lt;script&gt;")
}

func TestPopupFormatter_TimeZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	popup := NewPopupFormatter(language.AmericanEnglish, tokyo).Format(testQuake())

	assert.Contains(t, popup, "<p>Fri Apr 26 2024 23:00:00 GMT+0900 (JST)</p>")
}

func TestPopupFormatter_MissingTime(t *testing.T) {
	q := testQuake()
	q.Time = time.Time{}

	assert.Contains(t, testFormatter().Format(q), "<p>Invalid Date</p>")
}

func TestPopupFormatter_NilLocationDefaultsToUTC(t *testing.T) {
	popup := NewPopupFormatter(language.AmericanEnglish, nil).Format(testQuake())
	assert.Contains(t, popup, "GMT+0000 (UTC)")
}

func TestBuildMarkers(t *testing.T) {
	quakes := []domain.Earthquake{testQuake(), testQuake()}
	quakes[1].ID = "second"
	quakes[1].Depth = 150

	markers := BuildMarkers(quakes, testFormatter())

	require.Len(t, markers, 2)
	assert.Equal(t, "ci40000001", markers[0].ID)
	assert.Equal(t, "second", markers[1].ID)
	assert.Equal(t, "Yellow", markers[1].FillColor)
}

func TestBuildMarkers_EmptyIsNonNil(t *testing.T) {
	markers := BuildMarkers(nil, testFormatter())
	assert.NotNil(t, markers)
	assert.Empty(t, markers)
}
