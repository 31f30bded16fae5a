package config

import (
	"fmt"
	"time"

	"lidar-radar.klederson.com/internal/lidar"
)

const (
	// Scan buffer
	DefaultResolution = 5.0                   // Degrees between readings
	DefaultCapacity   = lidar.DefaultCapacity // Slots, one always kept free

	// Radar display
	MaxRange      = 8.0  // Maximum range in meters
	AspectRatio   = 0.5  // Terminal char aspect correction (chars are ~2:1 tall)
	RingCount     = 4    // Number of concentric half rings
	SweepSpeedRPM = 20   // Sweep passes per minute across the 180 degree arc
	SweepTrailDeg = 25.0 // Sweep trail angle in degrees
	TargetFPS     = 30   // Target frames per second

	// Point easing between frames
	SpringFrequency = 6.0
	SpringDamping   = 0.8

	// Mock sensor
	ScanInterval = 250 * time.Millisecond // Time between simulated scans
	NoiseMeters  = 0.08                   // Peak reading noise

	// Trials
	TrialCount = 100

	// App
	AppName    = "LIDAR-RADAR"
	AppVersion = "1.0"
)

// Options holds the runtime settings taken from the command line.
type Options struct {
	Resolution   float64
	Capacity     int
	MaxRange     float64
	ScanInterval time.Duration
}

// Default returns the options used when no flags are given.
func Default() Options {
	return Options{
		Resolution:   DefaultResolution,
		Capacity:     DefaultCapacity,
		MaxRange:     MaxRange,
		ScanInterval: ScanInterval,
	}
}

// Validate checks the options before any component is built from them.
func (o Options) Validate() error {
	if o.Resolution <= 0 || o.Resolution > lidar.FieldOfView {
		return fmt.Errorf("%w: resolution must be in (0, %v] degrees, got %v",
			lidar.ErrInvalidArgument, lidar.FieldOfView, o.Resolution)
	}
	if o.Capacity < 2 {
		return fmt.Errorf("%w: capacity must be at least 2, got %d", lidar.ErrInvalidArgument, o.Capacity)
	}
	if o.MaxRange <= 0 {
		return fmt.Errorf("%w: range must be positive, got %v", lidar.ErrInvalidArgument, o.MaxRange)
	}
	if o.ScanInterval <= 0 {
		return fmt.Errorf("%w: scan interval must be positive, got %v", lidar.ErrInvalidArgument, o.ScanInterval)
	}
	return nil
}
