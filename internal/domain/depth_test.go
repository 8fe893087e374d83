package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthBucket(t *testing.T) {
	tests := []struct {
		name     string
		depth    float64
		expected int
	}{
		{"very deep", 150, 5},
		{"just over 90", 90.01, 5},
		{"exactly 90", 90, 4},
		{"between 70 and 90", 80, 4},
		{"exactly 70", 70, 3},
		{"between 50 and 70", 55, 3},
		{"exactly 50", 50, 2},
		{"between 30 and 50", 45, 2},
		{"exactly 30", 30, 1},
		{"between 10 and 30", 12.5, 1},
		{"exactly 10", 10, 0},
		{"shallow", 5, 0},
		{"zero", 0, 0},
		{"slightly negative", -9.99, 0},
		{"exactly -10", -10, FallbackBucket},
		{"below -10", -25, FallbackBucket},
		{"negative infinity", math.Inf(-1), FallbackBucket},
		{"positive infinity", math.Inf(1), 5},
		{"NaN", math.NaN(), FallbackBucket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DepthBucket(tt.depth))
		})
	}
}

func TestDepthColor(t *testing.T) {
	assert.Equal(t, "Purple", DepthColor(45))
	assert.Equal(t, "Red", DepthColor(5))
	assert.Equal(t, "Yellow", DepthColor(150))
	assert.Equal(t, "Orange", DepthColor(71))
	assert.Equal(t, "pink", DepthColor(60))
	assert.Equal(t, "blue", DepthColor(20))
	assert.Equal(t, "Green", DepthColor(-50))
}

func TestTablesAlign(t *testing.T) {
	assert.Len(t, Categories, 6)
	assert.Len(t, Colors, 7)
	assert.Equal(t, 6, FallbackBucket)
	assert.Equal(t, "Green", Colors[FallbackBucket])
}

func TestBucketLabel(t *testing.T) {
	assert.Equal(t, "-10-10", BucketLabel(0))
	assert.Equal(t, "90+", BucketLabel(5))
	assert.Equal(t, "other", BucketLabel(FallbackBucket))
	assert.Equal(t, "other", BucketLabel(-1))
}
