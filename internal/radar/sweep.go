package radar

import (
	"math"
	"time"

	"lidar-radar.klederson.com/internal/config"
)

// Sweep manages the sweep line that travels back and forth across the
// 180 degree arc.
type Sweep struct {
	Angle     float64 // Current angle in degrees [0, 180]
	Direction float64 // +1 while moving left, -1 while moving right
	StartTime time.Time
}

// NewSweep creates a new sweep starting at 0 degrees (right).
func NewSweep() *Sweep {
	return &Sweep{
		Direction: 1,
		StartTime: time.Now(),
	}
}

// Update advances the sweep angle based on elapsed time.
func (s *Sweep) Update() {
	s.advance(time.Since(s.StartTime))
}

func (s *Sweep) advance(elapsed time.Duration) {
	passes := elapsed.Seconds() * float64(config.SweepSpeedRPM) / 60.0
	pos := math.Mod(passes, 2)
	if pos < 1 {
		s.Angle = pos * 180
		s.Direction = 1
	} else {
		s.Angle = (2 - pos) * 180
		s.Direction = -1
	}
}

// Intensity returns the glow intensity [0, 1] for a given cell angle.
// The sweep has a trailing glow of SweepTrailDeg degrees behind its
// direction of travel.
func (s *Sweep) Intensity(cellAngle float64) float64 {
	diff := (s.Angle - cellAngle) * s.Direction
	if diff < 0 || diff > config.SweepTrailDeg {
		return 0
	}
	// Linear falloff: 1.0 at sweep head → 0.0 at trail end
	return 1.0 - diff/config.SweepTrailDeg
}
