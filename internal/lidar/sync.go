package lidar

import "sync"

// SyncScanBuffer guards a ScanBuffer with a single mutex so it can be
// shared between a producer goroutine and readers.
type SyncScanBuffer struct {
	mu  sync.Mutex
	buf *ScanBuffer
}

// NewSyncScanBuffer creates a mutex-guarded buffer.
func NewSyncScanBuffer(resolution float64, capacity int) (*SyncScanBuffer, error) {
	buf, err := NewScanBuffer(resolution, capacity)
	if err != nil {
		return nil, err
	}
	return &SyncScanBuffer{buf: buf}, nil
}

// Push appends a scan under the lock. See ScanBuffer.Push.
func (s *SyncScanBuffer) Push(scan []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Push(scan)
}

// PopOldest removes and returns the oldest live scan.
func (s *SyncScanBuffer) PopOldest() (Scan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.PopOldest()
}

// Latest returns a copy of the most recently pushed scan.
func (s *SyncScanBuffer) Latest() (Scan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Latest()
}

// DistanceAt reads from the oldest live scan. See ScanBuffer.DistanceAt.
func (s *SyncScanBuffer) DistanceAt(angle float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.DistanceAt(angle)
}

// RenderLatest renders the latest scan as space-separated readings.
func (s *SyncScanBuffer) RenderLatest() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.RenderLatest()
}

// Scans returns copies of all live scans, oldest first.
func (s *SyncScanBuffer) Scans() []Scan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Scans()
}

// Clear drops every live scan.
func (s *SyncScanBuffer) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Clear()
}

// IsEmpty reports whether the buffer holds no live scans.
func (s *SyncScanBuffer) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.IsEmpty()
}

// Len returns the number of live scans.
func (s *SyncScanBuffer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Len()
}

// Cap, Resolution and Readings are fixed at construction and need no lock.
func (s *SyncScanBuffer) Cap() int { return s.buf.Cap() }
func (s *SyncScanBuffer) Resolution() float64 { return s.buf.Resolution() }
func (s *SyncScanBuffer) Readings() int { return s.buf.Readings() }
