package domain

// Colors holds the marker fill colors addressed by depth bucket. The last
// entry is the fallback for depths no bucket claims.
var Colors = [...]string{"Red", "blue", "Purple", "pink", "Orange", "Yellow", "Green"}

// Categories are the legend labels for buckets 0-5, paired by index with Colors.
var Categories = [...]string{"-10-10", "10-30", "30-50", "50-70", "70-90", "90+"}

// FallbackBucket is returned for depths at or below -10 and for NaN.
const FallbackBucket = len(Colors) - 1

// depthThresholds are exclusive lower bounds, deepest first. Index i maps to
// bucket len(depthThresholds)-1-i.
var depthThresholds = [...]float64{90, 70, 50, 30, 10, -10}

// DepthBucket classifies a depth into a color index. The first threshold the
// depth exceeds wins.
func DepthBucket(depth float64) int {
	for i, t := range depthThresholds {
		if depth > t {
			return len(depthThresholds) - 1 - i
		}
	}
	return FallbackBucket
}

// DepthColor returns the fill color for a depth.
func DepthColor(depth float64) string {
	return Colors[DepthBucket(depth)]
}

// BucketLabel returns the legend label for a bucket, or "other" for the fallback.
func BucketLabel(bucket int) string {
	if bucket < 0 || bucket >= len(Categories) {
		return "other"
	}
	return Categories[bucket]
}
