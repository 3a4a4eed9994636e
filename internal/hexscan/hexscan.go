// Package hexscan pulls hex color tokens out of freeform text.
package hexscan

import (
	"regexp"
	"strings"
)

// tokenPattern matches an optional '#' followed by 2 to 6 hex digits. Runs of
// 2, 4 or 5 digits are still emitted; validation is left to the caller.
var tokenPattern = regexp.MustCompile(`#?[A-Fa-f0-9]{2,6}`)

// Token is one matched run and its grid position.
type Token struct {
	Row  int
	Col  int
	Text string
}

// Extract scans at most maxRows lines of text and at most rowSize matches per
// line, returning tokens in reading order.
func Extract(text string, maxRows, rowSize int) []Token {
	if text == "" || maxRows <= 0 || rowSize <= 0 {
		return nil
	}

	lines := strings.Split(text, "\n")
	if len(lines) > maxRows {
		lines = lines[:maxRows]
	}

	var tokens []Token
	for row, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		for col, match := range tokenPattern.FindAllString(line, rowSize) {
			tokens = append(tokens, Token{Row: row, Col: col, Text: match})
		}
	}
	return tokens
}
