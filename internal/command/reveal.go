package command

import "swatchbook/internal/ui"

// Revealer hands a written artifact to the host, e.g. to open it in a viewer.
type Revealer interface {
	Reveal(path string) error
}

// RevealFunc adapts a function to Revealer.
type RevealFunc func(path string) error

func (f RevealFunc) Reveal(path string) error { return f(path) }

// LogRevealer prints the artifact path, as a clickable link where the
// terminal supports it. It is the default when no host viewer is wired.
type LogRevealer struct{}

func (LogRevealer) Reveal(path string) error {
	ui.LogStatus("info", "Artifact: "+ui.FormatFileLink(path))
	return nil
}
