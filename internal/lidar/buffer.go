package lidar

import (
	"fmt"
	"math"
)

// DefaultCapacity is the number of slots in a buffer built without an
// explicit capacity. One slot is always kept free, so at most
// DefaultCapacity-1 scans are live at once.
const DefaultCapacity = 10

// MaxReadings bounds the normalized scan length, which in turn bounds how
// fine a resolution a buffer accepts.
const MaxReadings = 1 << 16

// ScanBuffer is a fixed-capacity sliding window of scans with
// overwrite-on-overflow semantics.
//
// start indexes the oldest live scan and stop the next slot to write.
// start == stop always means empty: a push that would fill the last free
// slot evicts the oldest scan first, so occupancy never exceeds cap-1.
//
// ScanBuffer is not safe for concurrent use; see SyncScanBuffer.
type ScanBuffer struct {
	resolution float64
	readings   int
	slots      []Scan
	start      int
	stop       int
}

// NewScanBuffer creates an empty buffer with the given angular resolution
// (degrees between readings) and slot count.
func NewScanBuffer(resolution float64, capacity int) (*ScanBuffer, error) {
	if math.IsNaN(resolution) || math.IsInf(resolution, 0) || resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution must be a positive number, got %v", ErrInvalidArgument, resolution)
	}
	if FieldOfView/resolution >= MaxReadings {
		return nil, fmt.Errorf("%w: resolution %v needs more than %d readings per scan",
			ErrInvalidArgument, resolution, MaxReadings)
	}
	if capacity < 2 {
		return nil, fmt.Errorf("%w: capacity must be at least 2, got %d", ErrInvalidArgument, capacity)
	}
	return &ScanBuffer{
		resolution: resolution,
		readings:   ReadingsFor(resolution),
		slots:      make([]Scan, capacity),
	}, nil
}

// Resolution returns the angle between consecutive readings in degrees.
func (b *ScanBuffer) Resolution() float64 { return b.resolution }

// Readings returns the normalized length of every stored scan.
func (b *ScanBuffer) Readings() int { return b.readings }

// Cap returns the number of slots, including the reserved one.
func (b *ScanBuffer) Cap() int { return len(b.slots) }

// Len returns the number of live scans.
func (b *ScanBuffer) Len() int {
	n := len(b.slots)
	return (b.stop - b.start + n) % n
}

// IsEmpty reports whether the buffer holds no live scans.
func (b *ScanBuffer) IsEmpty() bool {
	return b.start == b.stop
}

// Push normalizes scan to Readings() entries and appends it. When the
// buffer already holds Cap()-1 scans the oldest one is dropped first.
// The caller's slice is copied and may be reused afterwards.
func (b *ScanBuffer) Push(scan []float64) {
	n := len(b.slots)
	if b.Len() == n-1 {
		b.start = (b.start + 1) % n
	}
	b.slots[b.stop] = normalize(scan, b.readings)
	b.stop = (b.stop + 1) % n
}

// PopOldest removes and returns the oldest live scan.
func (b *ScanBuffer) PopOldest() (Scan, error) {
	if b.IsEmpty() {
		return nil, ErrEmptyBuffer
	}
	s := b.slots[b.start]
	b.slots[b.start] = nil
	b.start = (b.start + 1) % len(b.slots)
	return s, nil
}

// Latest returns a copy of the most recently pushed scan.
func (b *ScanBuffer) Latest() (Scan, error) {
	if b.IsEmpty() {
		return nil, ErrEmptyBuffer
	}
	n := len(b.slots)
	return b.slots[(b.stop-1+n)%n].clone(), nil
}

// DistanceAt returns the reading at angle degrees from the oldest live
// scan, the one PopOldest would return next. Use Latest for the newest.
func (b *ScanBuffer) DistanceAt(angle float64) (float64, error) {
	if b.IsEmpty() {
		return 0, ErrEmptyBuffer
	}
	if math.IsNaN(angle) || angle < 0 || angle > FieldOfView {
		return 0, fmt.Errorf("%w: %v degrees is outside [0, %v]", ErrIndexOutOfRange, angle, FieldOfView)
	}
	idx := int(math.Floor(angle / b.resolution))
	if idx >= b.readings {
		return 0, fmt.Errorf("%w: %v degrees maps to reading %d, scan has %d",
			ErrIndexOutOfRange, angle, idx, b.readings)
	}
	return b.slots[b.start][idx], nil
}

// Scans returns copies of all live scans, oldest first.
func (b *ScanBuffer) Scans() []Scan {
	count := b.Len()
	if count == 0 {
		return nil
	}
	out := make([]Scan, count)
	for i := range out {
		out[i] = b.slots[(b.start+i)%len(b.slots)].clone()
	}
	return out
}

// Clear drops every live scan. Storage is kept for reuse.
func (b *ScanBuffer) Clear() {
	for i := range b.slots {
		b.slots[i] = nil
	}
	b.start = 0
	b.stop = 0
}

// RenderLatest renders the latest scan as a single line of
// space-separated readings with no trailing newline.
func (b *ScanBuffer) RenderLatest() (string, error) {
	s, err := b.Latest()
	if err != nil {
		return "", err
	}
	return s.String(), nil
}
