package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Status is what the bottom bar reports.
type Status struct {
	Feeding    bool
	Live       int
	Slots      int
	ProbeAngle float64
	Probe      string // Distance at the probe angle, or the error text
	ProbeErr   bool
	Trend      []float64 // Recent distances at the probe angle
	Notice     string    // Result of the last user action
	MaxRange   float64
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	state := ""
	if s.Feeding {
		state = StyleStatusFeeding.Render("[FEEDING]")
	} else {
		state = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Scans: %d/%d  Range: 0-%.0fm  Probe %.0f°: ",
		s.Live, s.Slots-1, s.MaxRange, s.ProbeAngle)

	probe := StyleProbe.Render(s.Probe)
	if s.ProbeErr {
		probe = StyleStatusError.Render(s.Probe)
	}

	content := state + StyleStatusBar.Foreground(ColorGreen).Render(info) + probe
	if len(s.Trend) > 1 {
		content += " " + StyleScanSpark.Render(renderSparkline(s.Trend, len(s.Trend)))
	}
	if s.Notice != "" {
		content += StyleHelp.Render("  " + s.Notice)
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
