package radar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"lidar-radar.klederson.com/internal/config"
)

var (
	colorBright = lipgloss.Color("#00FF41")
	colorMid    = lipgloss.Color("#008F11")
	colorDim    = lipgloss.Color("#004A0A")
	colorHit    = lipgloss.Color("#00FFAA")
	colorProbe  = lipgloss.Color("#FFCC00")

	styleCenter = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleRing   = lipgloss.NewStyle().Foreground(colorMid)
	styleDot    = lipgloss.NewStyle().Foreground(colorDim)
	styleHit    = lipgloss.NewStyle().Foreground(colorHit).Bold(true)
	styleProbe  = lipgloss.NewStyle().Foreground(colorProbe)
	styleProbeH = lipgloss.NewStyle().Foreground(colorProbe).Bold(true)
	styleLegHit = lipgloss.NewStyle().Foreground(colorHit)
	styleLegPrb = lipgloss.NewStyle().Foreground(colorProbe)
)

// Frame is everything needed to draw one radar frame.
type Frame struct {
	Readings   []float64 // Latest scan, possibly eased
	Resolution float64   // Degrees between readings
	MaxRange   float64   // Meters at the outer ring
	ProbeAngle float64   // Degrees; negative hides the probe
	Sweep      *Sweep
}

type cell struct{ col, row int }

// Render produces the complete radar display as a styled string.
func Render(width, height int, f Frame) string {
	if width < 10 || height < 5 {
		return ""
	}

	centerX := width / 2
	centerY := height - 1
	radius := math.Min(float64(centerX-1), float64(centerY-1)/config.AspectRatio)
	if radius < 3 {
		radius = 3
	}

	ringRadii := make([]float64, config.RingCount)
	for i := range ringRadii {
		ringRadii[i] = radius * float64(i+1) / float64(config.RingCount)
	}

	hits := plotReadings(f, centerX, centerY, radius)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if _, ok := hits[cell{col, row}]; ok {
				sb.WriteString(renderHit(f, col, row, centerX, centerY))
				continue
			}
			sb.WriteString(renderCell(col, row, centerX, centerY, radius, ringRadii, f))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// plotReadings maps every non-zero reading to its grid cell. Zero readings
// are missing returns and are not drawn.
func plotReadings(f Frame, centerX, centerY int, radius float64) map[cell]struct{} {
	hits := make(map[cell]struct{}, len(f.Readings))
	for i, d := range f.Readings {
		if d <= 0 {
			continue
		}
		angle := float64(i) * f.Resolution
		r := MetersToRadius(d, f.MaxRange, radius)
		col, row := PolarToCell(angle, r, centerX, centerY)
		hits[cell{col, row}] = struct{}{}
	}
	return hits
}

func renderHit(f Frame, col, row, centerX, centerY int) string {
	if onProbe(f, CellAngle(col, row, centerX, centerY)) {
		return styleProbeH.Render("#")
	}
	return styleHit.Render("#")
}

// onProbe reports whether a cell angle lies in the reading slot selected
// by the probe angle.
func onProbe(f Frame, angle float64) bool {
	if f.ProbeAngle < 0 || f.Resolution <= 0 {
		return false
	}
	lo := math.Floor(f.ProbeAngle/f.Resolution) * f.Resolution
	return angle >= lo-f.Resolution/2 && angle < lo+f.Resolution/2
}

func renderCell(col, row, centerX, centerY int, radius float64, ringRadii []float64, f Frame) string {
	dist := CellDistance(col, row, centerX, centerY)
	angle := CellAngle(col, row, centerX, centerY)

	if dist > radius+0.5 {
		return " "
	}

	if col == centerX && row == centerY {
		return styleCenter.Render("^")
	}

	if row == centerY {
		return renderSweepChar('_', f.Sweep, angle)
	}

	if onProbe(f, angle) && dist <= radius {
		return styleProbe.Render(":")
	}

	for _, ringR := range ringRadii {
		if math.Abs(dist-ringR) < 0.8 {
			return renderSweepChar(ArcChar(angle), f.Sweep, angle)
		}
	}

	if dist <= radius {
		return renderInteriorCell(f.Sweep, angle)
	}

	return " "
}

func renderSweepChar(ch rune, sweep *Sweep, angle float64) string {
	color := sweepColor(sweep, angle)
	if color == "" {
		return styleRing.Render(string(ch))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(ch))
}

func renderInteriorCell(sweep *Sweep, angle float64) string {
	color := sweepColor(sweep, angle)
	if color == "" {
		return styleDot.Render(".")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(".")
}

func sweepColor(sweep *Sweep, angle float64) string {
	if sweep == nil {
		return ""
	}
	intensity := sweep.Intensity(angle)
	if intensity <= 0 {
		return ""
	}
	if intensity > 0.8 {
		return "#00FF41"
	}
	if intensity > 0.5 {
		return "#00CC33"
	}
	if intensity > 0.3 {
		return "#00AA22"
	}
	return "#005511"
}

// RenderLegend produces the radar legend line.
func RenderLegend(width int) string {
	legend := "   " +
		styleLegHit.Render("# Return") +
		"  " +
		styleLegPrb.Render(": Probe")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
