package app

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"lidar-radar.klederson.com/internal/config"
	"lidar-radar.klederson.com/internal/lidar"
	"lidar-radar.klederson.com/internal/radar"
	"lidar-radar.klederson.com/internal/sensor"
	"lidar-radar.klederson.com/internal/ui"
)

const probeHistoryLen = 24

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	buffer   *lidar.SyncScanBuffer
	sweep    *radar.Sweep
	smoother *radar.Smoother
	probes   *ProbeHistory
	sensor   *sensor.MockLidar
}

// AppModel is the root Bubble Tea model for the lidar viewer.
type AppModel struct {
	width  int
	height int

	feeding    bool
	opts       config.Options
	seed       int64
	probeAngle float64
	notice     string

	keys ui.KeyMap
	help help.Model
	log  zerolog.Logger

	shared *shared

	// Cached snapshot
	readings []float64
	scans    []lidar.Scan
}

// New creates a new AppModel. The options must already be valid.
func New(opts config.Options, seed int64, log zerolog.Logger) (AppModel, error) {
	buf, err := lidar.NewSyncScanBuffer(opts.Resolution, opts.Capacity)
	if err != nil {
		return AppModel{}, fmt.Errorf("creating scan buffer: %w", err)
	}
	return AppModel{
		feeding:    true,
		opts:       opts,
		seed:       seed,
		probeAngle: 90,
		keys:       ui.DefaultKeyMap(),
		help:       help.New(),
		log:        log,
		shared: &shared{
			buffer:   buf,
			sweep:    radar.NewSweep(),
			smoother: radar.NewSmoother(),
			probes:   NewProbeHistory(probeHistoryLen),
		},
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.shared.sweep.Update()
		m.refresh()
		return m, tickCmd()

	case sensor.ScanMsg:
		if m.feeding {
			m.shared.buffer.Push(msg.Readings)
			m.recordProbe(msg.Seq)
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopSensor()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Feed):
		m.feeding = !m.feeding

	case key.Matches(msg, m.keys.Pop):
		scan, err := m.shared.buffer.PopOldest()
		if err != nil {
			m.notice = "pop: " + err.Error()
			m.log.Debug().Err(err).Msg("pop oldest failed")
			break
		}
		m.notice = fmt.Sprintf("popped %d readings, nearest %.2fm", len(scan), nearest(scan))
		m.log.Debug().Int("remaining", m.shared.buffer.Len()).Msg("popped oldest scan")

	case key.Matches(msg, m.keys.Clear):
		m.shared.buffer.Clear()
		m.shared.probes.Reset()
		m.notice = "buffer cleared"
		m.log.Debug().Msg("buffer cleared")

	case key.Matches(msg, m.keys.Left):
		m.moveProbe(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveProbe(1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.refresh()
	return m, nil
}

// moveProbe shifts the probe by one reading in the given direction,
// staying inside the field of view.
func (m *AppModel) moveProbe(dir float64) {
	a := m.probeAngle + dir*m.opts.Resolution
	m.probeAngle = math.Max(0, math.Min(lidar.FieldOfView, a))
	m.shared.probes.Reset()
}

// recordProbe appends the distance at the probe angle to the history.
// Failed reads and zero-padded readings are kept as gaps.
func (m AppModel) recordProbe(seq int) {
	d, err := m.shared.buffer.DistanceAt(m.probeAngle)
	if err != nil {
		m.log.Debug().Err(err).Int("seq", seq).Float64("angle", m.probeAngle).Msg("probe read failed")
		m.shared.probes.RecordGap(seq)
		return
	}
	if d == 0 {
		m.shared.probes.RecordGap(seq)
		return
	}
	m.shared.probes.Record(seq, d)
}

// refresh snapshots the buffer for rendering.
func (m *AppModel) refresh() {
	m.scans = m.shared.buffer.Scans()
	latest, err := m.shared.buffer.Latest()
	if err != nil {
		m.shared.smoother.Reset()
		m.readings = nil
		return
	}
	m.readings = m.shared.smoother.Step(latest)
}

// probeStatus reads the distance at the probe angle from the oldest scan.
func (m AppModel) probeStatus() (string, bool) {
	d, err := m.shared.buffer.DistanceAt(m.probeAngle)
	switch {
	case errors.Is(err, lidar.ErrEmptyBuffer):
		return "no scans", true
	case err != nil:
		return err.Error(), true
	}
	return fmt.Sprintf("%.2fm", d), false
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing lidar radar..."
	}

	helpView := m.help.View(m.keys)
	menuH := 1
	statusH := 1
	helpH := lipgloss.Height(helpView)
	bodyH := m.height - menuH - statusH - helpH
	if bodyH < 8 {
		bodyH = 8
	}

	radarW := m.width * 2 / 3
	if radarW < 30 {
		radarW = 30
	}
	listW := m.width - radarW
	if listW < 20 {
		listW = 20
		radarW = m.width - listW
	}

	menuBar := ui.RenderMenuBar(m.width, m.opts.Resolution, m.feeding)

	innerW := radarW - 4
	innerH := bodyH - 4
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	radarContent := radar.Render(innerW, innerH, radar.Frame{
		Readings:   m.readings,
		Resolution: m.opts.Resolution,
		MaxRange:   m.opts.MaxRange,
		ProbeAngle: m.probeAngle,
		Sweep:      m.shared.sweep,
	})
	legend := radar.RenderLegend(innerW)
	radarPanel := ui.RenderRadarPanel(radarW, bodyH, radarContent, legend)

	latest, _ := m.shared.buffer.RenderLatest()
	scanPanel := ui.RenderScanPanel(m.scans, m.shared.buffer.Cap(), latest, listW, bodyH)

	probe, probeErr := m.probeStatus()
	statusBar := ui.RenderStatusBar(m.width, ui.Status{
		Feeding:    m.feeding,
		Live:       m.shared.buffer.Len(),
		Slots:      m.shared.buffer.Cap(),
		ProbeAngle: m.probeAngle,
		Probe:      probe,
		ProbeErr:   probeErr,
		Trend:      m.shared.probes.Trend(),
		Notice:     m.notice,
		MaxRange:   m.opts.MaxRange,
	})

	return ui.ComposeLayout(menuBar, radarPanel, scanPanel, statusBar, helpView)
}

// StartSensor starts the mock lidar. Must be called before p.Run().
func (m *AppModel) StartSensor(p *tea.Program) error {
	m.shared.sensor = sensor.NewMockLidar(m.opts.Resolution, m.opts.ScanInterval, m.seed, m.log)
	return m.shared.sensor.Start(p)
}

func (m *AppModel) stopSensor() {
	if m.shared.sensor != nil {
		m.shared.sensor.Stop()
	}
}

func nearest(scan lidar.Scan) float64 {
	best := 0.0
	for _, d := range scan {
		if d > 0 && (best == 0 || d < best) {
			best = d
		}
	}
	return best
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
