package ui

import (
	"fmt"
	"strings"

	"lidar-radar.klederson.com/internal/lidar"
)

// RenderScanPanel lists the buffered scans oldest first, one sparkline
// each, followed by the latest scan as text. The oldest scan is marked
// since it is the one distance probes read from.
func RenderScanPanel(scans []lidar.Scan, slots int, latest string, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 6 {
		innerH = 6
	}

	title := StylePanelTitle.Render(fmt.Sprintf("SCANS [%d/%d]", len(scans), slots-1))
	separator := StyleRadarRing.Render(strings.Repeat("-", innerW))
	lines := []string{title, separator}

	// Latest text gets the bottom three lines.
	listH := innerH - len(lines) - 4
	if listH < 1 {
		listH = 1
	}

	if len(scans) == 0 {
		lines = append(lines, "", StyleHelp.Render(" No scans..."), StyleHelp.Render(" Waiting for sensor"))
	} else {
		sparkW := innerW - 6
		lines = append(lines, StyleScanOldest.Render(">00 ")+StyleScanSpark.Render(renderSparkline(scans[0], sparkW)))

		// The oldest scan stays pinned; the rest of the list shows the newest.
		first := 1
		if len(scans)-1 > listH-1 {
			first = len(scans) - (listH - 1)
		}
		for i := first; i < len(scans); i++ {
			idx := StyleScanIndex.Render(fmt.Sprintf(" %02d ", i))
			lines = append(lines, idx+StyleScanSpark.Render(renderSparkline(scans[i], sparkW)))
		}
	}

	for len(lines) < innerH-3 {
		lines = append(lines, "")
	}
	if len(lines) > innerH-3 {
		lines = lines[:innerH-3]
	}

	lines = append(lines, separator, StylePanelTitle.Render("LATEST"))
	if latest == "" {
		lines = append(lines, StyleHelp.Render(" -"))
	} else {
		lines = append(lines, StyleScanSpark.Render(" "+truncRaw(latest, innerW-1)))
	}

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - 2).Height(innerH).Render(content)
}

// renderSparkline draws one character per reading, scaled between the
// scan's smallest and largest non-zero reading. Missing returns show as a
// space.
func renderSparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	// Resample when the scan has more readings than columns.
	if len(values) > width {
		sampled := make([]float64, width)
		for i := range sampled {
			sampled[i] = values[i*len(values)/width]
		}
		values = sampled
	}

	minV, maxV := 0.0, 0.0
	found := false
	for _, v := range values {
		if v <= 0 {
			continue
		}
		if !found || v < minV {
			minV = v
		}
		if !found || v > maxV {
			maxV = v
		}
		found = true
	}

	rng := maxV - minV
	if rng < 1e-9 {
		rng = 1
	}

	var sb strings.Builder
	for _, v := range values {
		if v <= 0 {
			sb.WriteByte(' ')
			continue
		}
		idx := int((v - minV) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}

// truncRaw cuts a raw string to at most w characters, marking the cut.
func truncRaw(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if len(s) <= w {
		return s
	}
	if w <= 3 {
		return s[:w]
	}
	return s[:w-3] + "..."
}
