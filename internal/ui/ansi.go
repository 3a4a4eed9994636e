package ui

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SGR color codes and OSC-8 hyperlinks, the only escapes this package emits.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m|\x1b\]8;;[^\x1b]*\x1b\\`)

// StripAnsi removes all ANSI escape codes from a string
func StripAnsi(input string) string {
	return ansiPattern.ReplaceAllString(input, "")
}

// VisibleWidth returns the display width of a string, ignoring ANSI codes.
// Runes are counted, not bytes.
func VisibleWidth(input string) int {
	return utf8.RuneCountInString(StripAnsi(input))
}

// PadRight pads a string to a minimum visible width
func PadRight(input string, width int) string {
	visible := VisibleWidth(input)
	if visible >= width {
		return input
	}
	return input + strings.Repeat(" ", width-visible)
}
