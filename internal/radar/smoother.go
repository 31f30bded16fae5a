package radar

import (
	"github.com/charmbracelet/harmonica"
	"lidar-radar.klederson.com/internal/config"
)

// Smoother eases plotted readings toward each new scan so points glide
// instead of jumping between frames.
type Smoother struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

// NewSmoother creates a smoother stepping at the display frame rate.
func NewSmoother() *Smoother {
	return &Smoother{
		spring: harmonica.NewSpring(harmonica.FPS(config.TargetFPS), config.SpringFrequency, config.SpringDamping),
	}
}

// Step moves every point one frame toward target and returns the current
// positions. A change in length snaps straight to target.
func (s *Smoother) Step(target []float64) []float64 {
	if len(s.pos) != len(target) {
		s.pos = append(s.pos[:0], target...)
		s.vel = make([]float64, len(target))
		return s.Values()
	}
	for i, t := range target {
		// A zero reading is a missing return; don't ease it.
		if t == 0 || s.pos[i] == 0 {
			s.pos[i], s.vel[i] = t, 0
			continue
		}
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], t)
	}
	return s.Values()
}

// Values returns a copy of the current positions.
func (s *Smoother) Values() []float64 {
	out := make([]float64, len(s.pos))
	copy(out, s.pos)
	return out
}

// Reset drops all tracked points.
func (s *Smoother) Reset() {
	s.pos = s.pos[:0]
	s.vel = s.vel[:0]
}
