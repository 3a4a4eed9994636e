package ui

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SupportsHyperlinks checks if the terminal supports OSC-8 hyperlinks
func SupportsHyperlinks() bool {
	if !isTTY() {
		return false
	}

	termProgram := os.Getenv("TERM_PROGRAM")
	if strings.Contains(termProgram, "iTerm") ||
		strings.Contains(termProgram, "WezTerm") ||
		strings.Contains(termProgram, "vscode") ||
		os.Getenv("WT_SESSION") != "" {
		return true
	}

	return strings.Contains(os.Getenv("TERM"), "xterm-256color")
}

// FormatTerminalLink creates an OSC-8 hyperlink if supported.
// Falls back to "label (url)" format if not supported
func FormatTerminalLink(label, link string) string {
	if !SupportsHyperlinks() {
		return fmt.Sprintf("%s (%s)", label, link)
	}
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", link, label)
}

// FileURL returns the file:// URL for a local path.
func FileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// FormatFileLink renders a clickable path on terminals that support it.
func FormatFileLink(path string) string {
	if !SupportsHyperlinks() {
		return path
	}
	link := FormatTerminalLink(path, FileURL(path))
	if IsRich() {
		return Secondary("%s", link)
	}
	return link
}
