package radar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lidar-radar.klederson.com/internal/config"
)

func TestCellAngle(t *testing.T) {
	assert.InDelta(t, 0, CellAngle(15, 10, 10, 10), 1e-9)
	assert.InDelta(t, 180, CellAngle(5, 10, 10, 10), 1e-9)
	assert.InDelta(t, 90, CellAngle(10, 5, 10, 10), 1e-9)
	assert.InDelta(t, 45, CellAngle(14, 8, 10, 10), 1e-9)
}

func TestPolarToCellRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 30, 90, 150, 180} {
		col, row := PolarToCell(angle, 20, 40, 20)
		assert.InDelta(t, angle, CellAngle(col, row, 40, 20), 3.0, "angle %v", angle)
		assert.InDelta(t, 20, CellDistance(col, row, 40, 20), 1.5, "angle %v", angle)
	}
}

func TestArcChar(t *testing.T) {
	assert.Equal(t, '|', ArcChar(0))
	assert.Equal(t, '\\', ArcChar(45))
	assert.Equal(t, '-', ArcChar(90))
	assert.Equal(t, '/', ArcChar(135))
	assert.Equal(t, '|', ArcChar(180))
}

func TestMetersToRadius(t *testing.T) {
	assert.Equal(t, 5.0, MetersToRadius(4, 8, 10))
	assert.Equal(t, 10.0, MetersToRadius(20, 8, 10))
}

func TestSweepBouncesAcrossArc(t *testing.T) {
	s := NewSweep()
	pass := time.Duration(60.0 / float64(config.SweepSpeedRPM) * float64(time.Second))

	s.advance(pass / 2)
	assert.InDelta(t, 90, s.Angle, 1e-6)
	assert.Equal(t, 1.0, s.Direction)

	s.advance(pass + pass/4)
	assert.InDelta(t, 135, s.Angle, 1e-6)
	assert.Equal(t, -1.0, s.Direction)
}

func TestSweepIntensityTrailsHead(t *testing.T) {
	s := &Sweep{Angle: 90, Direction: 1}
	assert.Equal(t, 1.0, s.Intensity(90))
	assert.Greater(t, s.Intensity(80), 0.0)
	assert.Equal(t, 0.0, s.Intensity(100))
	assert.Equal(t, 0.0, s.Intensity(90-config.SweepTrailDeg-1))

	s.Direction = -1
	assert.Greater(t, s.Intensity(100), 0.0)
	assert.Equal(t, 0.0, s.Intensity(80))
}

func TestRenderPlotsReadings(t *testing.T) {
	readings := make([]float64, 19)
	for i := range readings {
		readings[i] = 4
	}
	out := ansi.Strip(Render(60, 20, Frame{
		Readings:   readings,
		Resolution: 10,
		MaxRange:   8,
		ProbeAngle: -1,
		Sweep:      NewSweep(),
	}))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.Equal(t, 60, len(l))
	}
	assert.Greater(t, strings.Count(out, "#"), 10)
	assert.Equal(t, 1, strings.Count(out, "^"))
	assert.NotContains(t, out, ":")
}

func TestRenderSkipsMissingReturnsAndDrawsProbe(t *testing.T) {
	out := ansi.Strip(Render(60, 20, Frame{
		Readings:   make([]float64, 19),
		Resolution: 10,
		MaxRange:   8,
		ProbeAngle: 90,
	}))
	assert.Equal(t, 0, strings.Count(out, "#"))
	assert.Contains(t, out, ":")
}

func TestRenderTooSmall(t *testing.T) {
	assert.Equal(t, "", Render(5, 20, Frame{}))
	assert.Equal(t, "", Render(40, 3, Frame{}))
}

func TestSmootherEasesTowardTarget(t *testing.T) {
	s := NewSmoother()
	first := s.Step([]float64{2, 2, 0})
	assert.Equal(t, []float64{2, 2, 0}, first)

	next := s.Step([]float64{4, 2, 3})
	assert.Greater(t, next[0], 2.0)
	assert.Less(t, next[0], 4.0)
	assert.InDelta(t, 2.0, next[1], 1e-9)
	assert.Equal(t, 3.0, next[2])

	for i := 0; i < 200; i++ {
		next = s.Step([]float64{4, 2, 3})
	}
	assert.InDelta(t, 4.0, next[0], 1e-3)

	s.Reset()
	assert.Empty(t, s.Values())
}
