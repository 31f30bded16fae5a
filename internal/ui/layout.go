package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the radar panel and scan panel horizontally,
// with menu bar on top and status bar plus help line on the bottom.
func ComposeLayout(menuBar, radarPanel, scanPanel, statusBar, helpLine string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, radarPanel, scanPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar, helpLine)
}
