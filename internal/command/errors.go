package command

import (
	"errors"

	"swatchbook/internal/archive"
	"swatchbook/internal/palette"
	"swatchbook/internal/swatch"
)

// ErrNoInputProvided is returned by create when no source text was injected.
var ErrNoInputProvided = errors.New("no input provided")

// FailureKind names the failure class of err for user-facing messages and
// metric labels. Unclassified errors are reported as "Error".
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoInputProvided):
		return "NoInputProvided"
	case errors.Is(err, swatch.ErrInvalidColorFormat):
		return "InvalidColorFormat"
	case errors.Is(err, palette.ErrIndexOutOfRange):
		return "IndexOutOfRange"
	case errors.Is(err, palette.ErrMalformedDocument):
		return "MalformedDocument"
	case errors.Is(err, archive.ErrArchiveEntryMissing):
		return "ArchiveEntryMissing"
	case errors.Is(err, archive.ErrIO):
		return "IOError"
	default:
		return "Error"
	}
}
