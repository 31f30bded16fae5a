package sensor

import (
	"context"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"lidar-radar.klederson.com/internal/config"
	"lidar-radar.klederson.com/internal/lidar"
)

// ScanMsg is sent via tea.Program.Send for every simulated scan.
type ScanMsg struct {
	Seq      int
	Readings []float64
}

// Room dimensions seen from the sensor, which sits in the middle of the
// near wall looking in.
const (
	roomHalfWidth = 4.5
	roomDepth     = 6.0
	obstacleDist  = 2.5
	obstacleWidth = 12.0 // degrees
	dropoutChance = 0.2  // chance a scan comes back short
)

// MockLidar simulates a ranging sensor sweeping a room with one moving
// obstacle.
type MockLidar struct {
	program    *tea.Program
	gen        *Generator
	resolution float64
	interval   time.Duration
	log        zerolog.Logger
	seq        int
	cancel     context.CancelFunc
}

// NewMockLidar creates a mock sensor producing scans at the given resolution.
func NewMockLidar(resolution float64, interval time.Duration, seed int64, log zerolog.Logger) *MockLidar {
	return &MockLidar{
		gen:        NewGenerator(seed),
		resolution: resolution,
		interval:   interval,
		log:        log.With().Str("component", "mock-lidar").Logger(),
	}
}

// Start begins emitting scans to p until Stop is called.
func (s *MockLidar) Start(p *tea.Program) error {
	s.program = p

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.log.Info().
		Float64("resolution", s.resolution).
		Dur("interval", s.interval).
		Msg("starting mock lidar")

	go s.loop(ctx)
	return nil
}

func (s *MockLidar) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += s.interval.Seconds()
			msg := ScanMsg{Seq: s.seq, Readings: s.Scan(t)}
			s.seq++
			if s.program != nil {
				s.program.Send(msg)
			}
		}
	}
}

// Scan produces the readings observed at time t seconds. Some scans come
// back short to model dropped returns.
func (s *MockLidar) Scan(t float64) []float64 {
	n := lidar.ReadingsFor(s.resolution)
	if s.gen.Float(0, 1) < dropoutChance {
		n = s.gen.Int(1, n+1)
		s.log.Debug().Int("readings", n).Msg("short scan")
	}

	// Obstacle drifts back and forth across the arc.
	obstacleAngle := 90 + 60*math.Sin(t*0.4)

	out := make([]float64, n)
	for i := range out {
		angle := float64(i) * s.resolution
		d := roomDistance(angle)
		if math.Abs(angle-obstacleAngle) <= obstacleWidth/2 && obstacleDist < d {
			d = obstacleDist
		}
		d += s.gen.Float(-config.NoiseMeters, config.NoiseMeters)
		if d < 0 {
			d = 0
		}
		out[i] = d
	}
	return out
}

// Stop halts the mock sensor.
func (s *MockLidar) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// roomDistance returns the distance to the walls of a rectangular room at
// angle degrees, 0 along the near wall to the right.
func roomDistance(angle float64) float64 {
	rad := angle * math.Pi / 180
	side := math.Inf(1)
	if c := math.Abs(math.Cos(rad)); c > 1e-9 {
		side = roomHalfWidth / c
	}
	back := math.Inf(1)
	if sn := math.Sin(rad); sn > 1e-9 {
		back = roomDepth / sn
	}
	return math.Min(side, back)
}
