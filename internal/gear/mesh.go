package gear

import "math"

// CenterDistance returns the distance between the centres of two meshing
// external gears: the sum of their pitch radii minus correction.
//
// A true mesh uses correction 0. A positive correction tucks the teeth
// closer together; it is an art-direction choice left to the caller.
func CenterDistance(a, b Gear, correction float64) float64 {
	return a.pitchCircleRadius + b.pitchCircleRadius - correction
}

// PitchMismatch returns the relative difference |a-b| / max(|a|,|b|).
// Two zero pitches have no mismatch.
func PitchMismatch(a, b float64) float64 {
	den := math.Max(math.Abs(a), math.Abs(b))
	if den == 0 {
		return 0
	}
	return math.Abs(a-b) / den
}

// PitchMatch reports whether two pitches are equal within the relative
// tolerance, meaning sprites authored at those pitches visually mesh.
func PitchMatch(a, b, tolerance float64) bool {
	return PitchMismatch(a, b) <= tolerance
}
