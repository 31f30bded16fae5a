package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"lidar-radar.klederson.com/internal/lidar"
)

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", renderSparkline(nil, 10))
	assert.Equal(t, "_^", renderSparkline([]float64{1, 5}, 10))
	assert.Equal(t, "_ ^", renderSparkline([]float64{1, 0, 5}, 10))
	assert.Equal(t, "___", renderSparkline([]float64{2, 2, 2}, 10))
	assert.Len(t, renderSparkline(make([]float64, 181), 40), 40)
}

func TestTruncRaw(t *testing.T) {
	assert.Equal(t, "abc", truncRaw("abc", 5))
	assert.Equal(t, "ab...", truncRaw("abcdefgh", 5))
	assert.Equal(t, "ab", truncRaw("abcdefgh", 2))
	assert.Equal(t, "", truncRaw("abc", 0))
}

func TestRenderScanPanel(t *testing.T) {
	scans := []lidar.Scan{{1, 2, 3}, {3, 2, 1}}
	out := ansi.Strip(RenderScanPanel(scans, 10, "3 2 1", 40, 20))

	assert.Contains(t, out, "SCANS [2/9]")
	assert.Contains(t, out, ">00")
	assert.Contains(t, out, " 01 ")
	assert.Contains(t, out, "LATEST")
	assert.Contains(t, out, "3 2 1")
	assert.Equal(t, 20, len(strings.Split(out, "\n")))
}

func TestRenderScanPanelKeepsOldestWhenScrolled(t *testing.T) {
	scans := make([]lidar.Scan, 9)
	for i := range scans {
		scans[i] = lidar.Scan{float64(i + 1), 1}
	}
	// Height 12 leaves room for four list rows.
	out := ansi.Strip(RenderScanPanel(scans, 10, "9 1", 40, 12))

	assert.Contains(t, out, ">00")
	for _, idx := range []string{" 06 ", " 07 ", " 08 "} {
		assert.Contains(t, out, idx)
	}
	for _, idx := range []string{" 01 ", " 05 "} {
		assert.NotContains(t, out, idx)
	}
	lines := strings.Split(out, "\n")
	assert.Equal(t, 12, len(lines))
	assert.Contains(t, lines[3], ">00", "oldest scan is the first list row")
}

func TestRenderScanPanelEmpty(t *testing.T) {
	out := ansi.Strip(RenderScanPanel(nil, 10, "", 40, 20))
	assert.Contains(t, out, "SCANS [0/9]")
	assert.Contains(t, out, "Waiting for sensor")
}

func TestRenderStatusBar(t *testing.T) {
	out := ansi.Strip(RenderStatusBar(120, Status{
		Feeding:    true,
		Live:       3,
		Slots:      10,
		ProbeAngle: 90,
		Probe:      "2.50m",
		Trend:      []float64{1, 2, 3},
		Notice:     "buffer cleared",
		MaxRange:   8,
	}))
	assert.Contains(t, out, "[FEEDING]")
	assert.Contains(t, out, "Scans: 3/9")
	assert.Contains(t, out, "Probe 90°:")
	assert.Contains(t, out, "2.50m")
	assert.Contains(t, out, "buffer cleared")
}

func TestKeyMapHelp(t *testing.T) {
	h := help.New()
	short := ansi.Strip(h.View(DefaultKeyMap()))
	assert.Contains(t, short, "pop oldest")
	assert.NotContains(t, short, "probe left")

	h.ShowAll = true
	full := ansi.Strip(h.View(DefaultKeyMap()))
	assert.Contains(t, full, "probe left")
}
