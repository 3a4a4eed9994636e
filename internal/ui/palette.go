package ui

import "github.com/charmbracelet/lipgloss"

// CLIPalette holds the chrome colors of the lipgloss-rendered palette views.
var CLIPalette = struct {
	Accent lipgloss.Color // headings
	Border lipgloss.Color // grid and table frames
	Muted  lipgloss.Color // empty slots, secondary columns
	Text   lipgloss.Color
}{
	Accent: "#FF5A2D",
	Border: "#8B7F77",
	Muted:  "#5C534E",
	Text:   "#E8E2DE",
}
