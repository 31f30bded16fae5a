package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lidar-radar.klederson.com/internal/config"
	"lidar-radar.klederson.com/internal/lidar"
	"lidar-radar.klederson.com/internal/sensor"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	opts := config.Default()
	opts.Resolution = 30
	opts.Capacity = 3
	m, err := New(opts, 1, zerolog.Nop())
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok, "expected AppModel, got %T", next)
	return am
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := config.Default()
	opts.Resolution = 0
	_, err := New(opts, 1, zerolog.Nop())
	assert.ErrorIs(t, err, lidar.ErrInvalidArgument)
}

func TestScanMsgPushesWhileFeeding(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, sensor.ScanMsg{Readings: []float64{1, 2, 3}})
	m = update(t, m, sensor.ScanMsg{Readings: []float64{4, 5}})
	m = update(t, m, sensor.ScanMsg{Readings: []float64{6}})

	// Capacity 3 keeps two live scans.
	assert.Equal(t, 2, m.shared.buffer.Len())
	latest, err := m.shared.buffer.Latest()
	require.NoError(t, err)
	assert.Equal(t, lidar.Scan{6, 0, 0, 0, 0, 0, 0}, latest)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.feeding)
	m = update(t, m, sensor.ScanMsg{Readings: []float64{7}})
	latest, err = m.shared.buffer.Latest()
	require.NoError(t, err)
	assert.Equal(t, 6.0, latest[0])
}

func TestPopAndClearKeys(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runeKey('o'))
	assert.Contains(t, m.notice, lidar.ErrEmptyBuffer.Error())

	m = update(t, m, sensor.ScanMsg{Readings: []float64{1, 2, 3}})
	m = update(t, m, sensor.ScanMsg{Readings: []float64{4, 5, 6}})
	m = update(t, m, runeKey('o'))
	assert.Equal(t, "popped 7 readings, nearest 1.00m", m.notice)
	assert.Equal(t, 1, m.shared.buffer.Len())
	assert.Len(t, m.scans, 1)

	m = update(t, m, runeKey('c'))
	assert.True(t, m.shared.buffer.IsEmpty())
	assert.Nil(t, m.scans)
	assert.Nil(t, m.readings)
}

func TestProbeReadsOldestScan(t *testing.T) {
	m := newTestModel(t)
	status, isErr := m.probeStatus()
	assert.True(t, isErr)
	assert.Equal(t, "no scans", status)

	m = update(t, m, sensor.ScanMsg{Readings: []float64{1, 2, 3, 4}})
	m = update(t, m, sensor.ScanMsg{Readings: []float64{9, 9, 9, 9}})
	status, isErr = m.probeStatus()
	assert.False(t, isErr)
	assert.Equal(t, "4.00m", status)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 60.0, m.probeAngle)
	status, _ = m.probeStatus()
	assert.Equal(t, "3.00m", status)
}

func TestProbeStaysInFieldOfView(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 10; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, lidar.FieldOfView, m.probeAngle)
	for i := 0; i < 10; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Equal(t, 0.0, m.probeAngle)
}

func TestProbeHistoryTracksScans(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 5; i++ {
		m = update(t, m, sensor.ScanMsg{Seq: i, Readings: []float64{1, 2, 3, float64(i + 1)}})
	}
	// Reads come from the oldest of the two live scans.
	assert.Equal(t, []float64{1, 1, 2, 3, 4}, m.shared.probes.Trend())
	samples := m.shared.probes.Samples()
	require.Len(t, samples, 5)
	assert.Equal(t, ProbeSample{Seq: 4, Distance: 4, OK: true}, samples[4])
}

func TestProbeHistoryRecordsShortScansAsGaps(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, sensor.ScanMsg{Seq: 0, Readings: []float64{1, 2}})
	m = update(t, m, sensor.ScanMsg{Seq: 1, Readings: []float64{1, 2, 3, 4}})

	samples := m.shared.probes.Samples()
	require.Len(t, samples, 2)
	assert.False(t, samples[0].OK)
	assert.False(t, samples[1].OK, "oldest scan is still the short one")
	assert.Equal(t, []float64{0, 0}, m.shared.probes.Trend())
}

func TestViewRendersPanels(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Initializing lidar radar...", m.View())

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, sensor.ScanMsg{Readings: []float64{1, 2, 3, 4, 5, 6, 7}})
	m = update(t, m, TickMsg{})

	out := m.View()
	assert.Contains(t, out, config.AppName)
	assert.Contains(t, out, "SCANS")
	assert.Contains(t, out, "LATEST")
	assert.True(t, strings.Contains(out, "1 2 3 4 5 6 7"))
}

func TestQuitStopsSensor(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestProbeHistoryRing(t *testing.T) {
	h := NewProbeHistory(3)
	assert.Nil(t, h.Trend())
	assert.Empty(t, h.Samples())

	h.Record(0, 1)
	h.RecordGap(1)
	assert.Equal(t, []float64{1, 0}, h.Trend())

	h.Record(2, 3)
	h.Record(3, 4)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []ProbeSample{
		{Seq: 1},
		{Seq: 2, Distance: 3, OK: true},
		{Seq: 3, Distance: 4, OK: true},
	}, h.Samples())

	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Trend())
}
