package lidar

import (
	"math"
	"strconv"
	"strings"
)

// FieldOfView is the angular span of a single scan in degrees.
const FieldOfView = 180.0

// Scan is one sweep of distance readings. Reading i was taken at
// i*resolution degrees.
type Scan []float64

// String renders the readings separated by single spaces, without a
// trailing newline.
func (s Scan) String() string {
	var sb strings.Builder
	for i, v := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatReading(v))
	}
	return sb.String()
}

// FormatReading formats a reading with six significant digits, dropping
// trailing zeros (3 -> "3", 0.1234567 -> "0.123457").
func FormatReading(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// ReadingsFor returns the normalized scan length for a resolution:
// floor(180/resolution) + 1.
func ReadingsFor(resolution float64) int {
	return int(math.Floor(FieldOfView/resolution)) + 1
}

// normalize copies readings into a fresh scan of exactly n entries,
// truncating extras and zero-filling any shortfall.
func normalize(readings []float64, n int) Scan {
	out := make(Scan, n)
	copy(out, readings)
	return out
}

func (s Scan) clone() Scan {
	out := make(Scan, len(s))
	copy(out, s)
	return out
}
