package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"swatchbook/internal/palette"
	"swatchbook/internal/swatch"
)

const cellWidth = 4

var (
	cellStyle   = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	emptyStyle  = cellStyle.Foreground(CLIPalette.Muted)
	labelStyle  = lipgloss.NewStyle().Foreground(CLIPalette.Muted)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(CLIPalette.Border)
	headerStyle = lipgloss.NewStyle().Foreground(CLIPalette.Accent).Bold(true).Padding(0, 1)
	bodyStyle   = lipgloss.NewStyle().Foreground(CLIPalette.Text).Padding(0, 1)
)

// RenderGrid draws the palette as its MaxRows x RowSize grid. Populated
// slots are solid blocks in the swatch color, empty slots a muted dot pair.
func RenderGrid(p *palette.Palette) string {
	header := make([]string, 0, palette.RowSize+1)
	header = append(header, labelStyle.Width(2).Render(""))
	for col := 0; col < palette.RowSize; col++ {
		header = append(header, labelStyle.Width(cellWidth).Align(lipgloss.Center).Render(strconv.Itoa(col)))
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for row := 0; row < palette.MaxRows; row++ {
		cells := make([]string, 0, palette.RowSize+1)
		cells = append(cells, labelStyle.Width(2).Render(strconv.Itoa(row)))
		for col := 0; col < palette.RowSize; col++ {
			s, _ := p.Get(row*palette.RowSize + col)
			cells = append(cells, renderCell(s))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderCell(s *swatch.Swatch) string {
	if s == nil {
		return emptyStyle.Render("··")
	}
	return cellStyle.Foreground(lipgloss.Color(s.Hex())).Render(strings.Repeat("█", cellWidth-1))
}

// RenderTable lists every populated slot with its position and values.
func RenderTable(p *palette.Palette) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(CLIPalette.Border)).
		Headers("SLOT", "ROW", "COL", "HEX", "HUE", "SAT", "BRIGHT", "ALPHA").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return bodyStyle
		})

	for i := 0; i < p.Len(); i++ {
		s, err := p.Get(i)
		if err != nil || s == nil {
			continue
		}
		row, col, _ := palette.Position(i)
		h, sat, b := s.HSV()
		t.Row(
			strconv.Itoa(i),
			strconv.Itoa(row),
			strconv.Itoa(col),
			s.Hex(),
			fmt.Sprintf("%.3f", h),
			fmt.Sprintf("%.3f", sat),
			fmt.Sprintf("%.3f", b),
			fmt.Sprintf("%.2f", s.Alpha()),
		)
	}
	return t.String()
}

// ShowPalette prints the summary group, the grid and either the swatch table
// or a hint for an empty palette.
func ShowPalette(p *palette.Palette, source string) {
	LogGroup(p.Name())
	if source != "" {
		LogGroupItem("Source", source)
	}
	LogGroupItem("Swatches", fmt.Sprintf("%d / %d", p.Count(), p.Len()))
	LogGroupItem("Fingerprint", p.Fingerprint())
	LogGroupEnd()

	Print(RenderGrid(p))
	if p.Count() == 0 {
		Print(Subtle("%s", "No swatches yet. Run create with --text to fill the grid."))
		return
	}
	Print(RenderTable(p))
}
