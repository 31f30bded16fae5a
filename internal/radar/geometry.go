package radar

import (
	"math"

	"lidar-radar.klederson.com/internal/config"
)

// The radar is a half disc with the sensor at the bottom centre.
// Angles are in degrees: 0 points right, 90 straight up, 180 left.

// CellDistance computes the distance from a cell to the radar center,
// accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// CellAngle computes the angle from center to a cell in degrees, in
// (-180, 180]. Cells above the center fall in [0, 180].
func CellAngle(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(centerY-row) / config.AspectRatio
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// PolarToCell maps an angle and a radius in cells to a grid position.
func PolarToCell(angleDeg, r float64, centerX, centerY int) (col, row int) {
	rad := angleDeg * math.Pi / 180
	col = centerX + int(math.Round(r*math.Cos(rad)))
	row = centerY - int(math.Round(r*math.Sin(rad)*config.AspectRatio))
	return col, row
}

// ArcChar returns the character tracing a ring at the given angle.
func ArcChar(angleDeg float64) rune {
	sector := int(math.Round(NormalizeAngle(angleDeg)/45)) % 4
	switch sector {
	case 0: // Right and left edges
		return '|'
	case 1: // Upper right
		return '\\'
	case 2: // Top
		return '-'
	case 3: // Upper left
		return '/'
	default:
		return '.'
	}
}

// NormalizeAngle wraps an angle to [0, 180), the half turn a ring
// character repeats over.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 180)
	if a < 0 {
		a += 180
	}
	return a
}

// MetersToRadius converts distance in meters to radar units (cells).
func MetersToRadius(meters, maxRange, radarRadius float64) float64 {
	if meters > maxRange {
		return radarRadius
	}
	return (meters / maxRange) * radarRadius
}
