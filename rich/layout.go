package rich

import "math"

const (
	// DefaultTabStop is the distance between tab stops.
	DefaultTabStop = 80.0

	// DefaultItalicFactor is the share of an average character width
	// added to italic runs so slanted glyphs are not clipped.
	DefaultItalicFactor = 0.3
)

// tabWidth calculates the width of a tab that starts x units from the
// left edge of its line. Tab stops are multiples of tabStop; a tab that
// starts on a stop advances to the next one.
func tabWidth(x, tabStop float64) float64 {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return (math.Floor(x/tabStop)+1)*tabStop - x
}

// fillCount returns how many copies of a placeholder unit wide fit in
// distance.
func fillCount(distance, unit float64) int {
	if unit <= 0 || distance <= 0 {
		return 0
	}
	return int(math.Floor(distance / unit))
}
