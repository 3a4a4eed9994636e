package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swatchbook/internal/palette"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })
	return &buf
}

func TestStripAnsi(t *testing.T) {
	in := "\x1b[31mred\x1b[0m and \x1b]8;;file:///tmp/x\x1b\\link\x1b]8;;\x1b\\"
	assert.Equal(t, "red and link", StripAnsi(in))
	assert.Equal(t, 12, VisibleWidth(in))
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcdef", PadRight("abcdef", 4))
}

func TestWrapNoteMessage(t *testing.T) {
	msg := "config validation failed:\n  - output_dir not accessible: /some/very/long/path/that/keeps/going"
	wrapped := WrapNoteMessage(msg, 40)
	for _, line := range strings.Split(wrapped, "\n") {
		if strings.Contains(line, " ") && len(strings.Fields(line)) > 1 {
			assert.LessOrEqual(t, VisibleWidth(line), 40, line)
		}
	}
	assert.Contains(t, wrapped, "  - output_dir")
}

func TestLogStatus(t *testing.T) {
	buf := capture(t)
	LogStatus("success", "Saved palette")
	LogStatus("error", "boom")

	out := StripAnsi(buf.String())
	assert.Contains(t, out, "✔  Saved palette")
	assert.Contains(t, out, "✖  boom")
}

func TestRenderGrid(t *testing.T) {
	p, err := palette.FromText("#FF0000 #00FF00\n#0000FF")
	require.NoError(t, err)

	grid := StripAnsi(RenderGrid(p))
	assert.Equal(t, 3, strings.Count(grid, "███"))
	assert.Equal(t, palette.MaxLength-3, strings.Count(grid, "··"))
	assert.Contains(t, grid, "9")
}

func TestRenderTable(t *testing.T) {
	p, err := palette.FromText("#FF0000\n\n#0000ff")
	require.NoError(t, err)

	out := StripAnsi(RenderTable(p))
	assert.Contains(t, out, "SLOT")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "#0000ff")
	assert.Contains(t, out, "0.667")
}

func TestShowPalette(t *testing.T) {
	buf := capture(t)
	ShowPalette(palette.New(), "")

	out := StripAnsi(buf.String())
	assert.Contains(t, out, "Untitled Palette")
	assert.Contains(t, out, "0 / 30")
	assert.NotContains(t, out, "SLOT", "empty palettes skip the table")
	assert.Contains(t, out, "No swatches yet")
}

func TestFileURL(t *testing.T) {
	assert.Equal(t, "file:///tmp/My%20Palette.swatches", FileURL("/tmp/My Palette.swatches"))
}
