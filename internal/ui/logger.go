package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

var out io.Writer = os.Stdout

// SetOutput redirects all ui output. Passing nil restores stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)

	clrPrimary = color.New(color.FgMagenta, color.Bold)
	clrAccent  = color.New(color.FgCyan, color.Bold)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)

	badgePrimary = color.New(color.BgMagenta, color.FgWhite, color.Bold)
)

const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// PrintBanner displays the boxed product header. Skipped when stdout is not a terminal.
func PrintBanner(version string) {
	if !isTTY() {
		return
	}
	const width = 48

	badge := badgePrimary.Sprint(" ◆ SWATCHBOOK ")
	ver := clrDim.Sprint(version)
	pad := width - 2 - VisibleWidth(badge) - 1 - VisibleWidth(ver)
	if pad < 1 {
		pad = 1
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, clrDim.Sprint(boxTopLeft+strings.Repeat(boxHorizontal, width)+boxTopRight))
	fmt.Fprintf(out, "%s  %s %s%s\n",
		clrDim.Sprint(boxVertical),
		badge,
		ver,
		clrDim.Sprint(strings.Repeat(" ", pad)+boxVertical))
	fmt.Fprintln(out, clrDim.Sprint(boxBottomLeft+strings.Repeat(boxHorizontal, width)+boxBottomRight))
	fmt.Fprintln(out)
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Fprintf(out, "%s  %s  %s\n", ts, icon, styledMsg)
}

// LogGroup starts a boxed block of label/value lines.
func LogGroup(title string) {
	fill := 44 - VisibleWidth(title)
	if fill < 2 {
		fill = 2
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s %s\n",
		clrDim.Sprint(boxTopLeft+strings.Repeat(boxHorizontal, 2)),
		clrPrimary.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, fill)+boxTopRight))
}

// LogGroupItem logs an item within a group
func LogGroupItem(label, value string) {
	fmt.Fprintf(out, "%s  %s %s\n",
		clrDim.Sprint(boxVertical),
		clrDim.Sprint(label+":"),
		clrAccent.Sprint(value))
}

// LogGroupEnd closes a grouped block
func LogGroupEnd() {
	fmt.Fprintln(out, clrDim.Sprint(boxBottomLeft+strings.Repeat(boxHorizontal, 48)+boxBottomRight))
	fmt.Fprintln(out)
}

// Print writes a pre-rendered block as is.
func Print(block string) {
	fmt.Fprint(out, block)
	if !strings.HasSuffix(block, "\n") {
		fmt.Fprintln(out)
	}
}

// FormatBytes converts bytes to human-readable format
func FormatBytes(b int64) string {
	if b < 1024 {
		return fmt.Sprintf("%dB", b)
	}
	if b < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(b)/(1024*1024))
}

// isTTY checks if stdout is a terminal
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
