package ui

import (
	"fmt"
	"strings"
)

// Note displays a boxed message with optional title
func Note(message string, title string) {
	lines := strings.Split(WrapNoteMessage(message, 72), "\n")

	maxWidth := VisibleWidth(title) + 2
	for _, line := range lines {
		if w := VisibleWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	boxWidth := maxWidth + 4

	fmt.Fprintln(out)
	if title != "" {
		styledTitle := title
		if IsRich() {
			styledTitle = Heading("%s", title)
		}
		fmt.Fprintf(out, "%s%s %s %s%s\n",
			clrDim.Sprint(boxTopLeft),
			clrDim.Sprint(strings.Repeat(boxHorizontal, 2)),
			styledTitle,
			clrDim.Sprint(strings.Repeat(boxHorizontal, boxWidth-4-VisibleWidth(title))),
			clrDim.Sprint(boxTopRight))
	} else {
		fmt.Fprintln(out, clrDim.Sprint(boxTopLeft+strings.Repeat(boxHorizontal, boxWidth)+boxTopRight))
	}

	for _, line := range lines {
		fmt.Fprintf(out, "%s %s %s\n",
			clrDim.Sprint(boxVertical),
			PadRight(line, boxWidth-2),
			clrDim.Sprint(boxVertical))
	}

	fmt.Fprintln(out, clrDim.Sprint(boxBottomLeft+strings.Repeat(boxHorizontal, boxWidth)+boxBottomRight))
	fmt.Fprintln(out)
}

// WrapNoteMessage wraps each line of message to at most width visible runes.
func WrapNoteMessage(message string, width int) string {
	var outputLines []string
	for _, line := range strings.Split(message, "\n") {
		outputLines = append(outputLines, wrapLine(line, width)...)
	}
	return strings.Join(outputLines, "\n")
}

func wrapLine(line string, maxWidth int) []string {
	if strings.TrimSpace(line) == "" {
		return []string{line}
	}

	// Preserve leading indentation such as "  - " list markers.
	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]

	var lines []string
	current := ""
	for _, word := range strings.Fields(line) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if VisibleWidth(indent+candidate) <= maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, indent+current)
		current = word
	}
	return append(lines, indent+current)
}

// ErrorNote displays an error-styled note
func ErrorNote(message string) {
	Note(message, "✗ Error")
}
