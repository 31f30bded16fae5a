package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"lidar-radar.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, resolution float64, feeding bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"SPC", "feed"},
		{"O", "ldest"},
		{"C", "lear"},
		{"?", "help"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if feeding {
		status = StyleStatusFeeding.Render("FEEDING")
	} else {
		status = StyleStatusPaused.Render("PAUSED")
	}

	resInfo := StyleMenuLabel.Render(fmt.Sprintf("Res: %g°", resolution))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + resInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
