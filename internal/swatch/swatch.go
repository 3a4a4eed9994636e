// Package swatch holds the color value stored in each palette slot.
//
// Colors are kept as an HSV triple normalized to [0,1] (hue in turns, not
// degrees) plus an alpha channel and a reserved color space tag.
package swatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a hex token is not a 3- or 6-digit color.
var ErrInvalidColorFormat = errors.New("invalid color format")

var hexColorPattern = regexp.MustCompile(`^(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Record is the JSON form of a swatch inside Swatches.json.
type Record struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
	Alpha      float64 `json:"alpha"`
	ColorSpace int     `json:"colorSpace"`
}

// DefaultRecord returns opaque black.
func DefaultRecord() Record {
	return Record{Alpha: 1}
}

// UnmarshalJSON decodes a record, using the defaults for any missing key.
// colorSpace may be written as a float by other producers; it must still
// hold a whole number.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	rec := plain(DefaultRecord())
	aux := struct {
		*plain
		ColorSpace float64 `json:"colorSpace"`
	}{plain: &rec, ColorSpace: float64(rec.ColorSpace)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.ColorSpace != math.Trunc(aux.ColorSpace) || math.Abs(aux.ColorSpace) > math.MaxInt32 {
		return fmt.Errorf("colorSpace %v is not a valid integer", aux.ColorSpace)
	}
	rec.ColorSpace = int(aux.ColorSpace)
	*r = Record(rec)
	return nil
}

// Swatch is a single color entry. The zero value is not the default swatch;
// use New.
type Swatch struct {
	hue        float64
	saturation float64
	brightness float64
	alpha      float64
	colorSpace int
}

// New returns the default swatch: opaque black.
func New() Swatch {
	return FromRecord(DefaultRecord())
}

// FromRecord builds a swatch from its stored form.
func FromRecord(r Record) Swatch {
	return Swatch{
		hue:        r.Hue,
		saturation: r.Saturation,
		brightness: r.Brightness,
		alpha:      r.Alpha,
		colorSpace: r.ColorSpace,
	}
}

// FromRGB converts an 8-bit RGB triple.
func FromRGB(r, g, b uint8) Swatch {
	c := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	h, s, v := c.Hsv()

	sw := New()
	sw.SetHSV(toTurns(h), s, v)
	return sw
}

// FromHex parses "#rgb", "#rrggbb" or the same without the leading '#'.
func FromHex(text string) (Swatch, error) {
	digits := strings.TrimPrefix(text, "#")
	if !hexColorPattern.MatchString(digits) {
		return Swatch{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, text)
	}

	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return Swatch{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, text, err)
	}
	r, g, b := c.RGB255()
	return FromRGB(r, g, b), nil
}

// HSV returns hue, saturation and brightness together.
func (s Swatch) HSV() (hue, saturation, brightness float64) {
	return s.hue, s.saturation, s.brightness
}

// SetHSV replaces the whole HSV triple.
func (s *Swatch) SetHSV(hue, saturation, brightness float64) {
	s.hue, s.saturation, s.brightness = hue, saturation, brightness
}

func (s Swatch) Alpha() float64 { return s.alpha }

func (s Swatch) ColorSpace() int { return s.colorSpace }

// Record returns the stored form of the swatch.
func (s Swatch) Record() Record {
	return Record{
		Hue:        s.hue,
		Saturation: s.saturation,
		Brightness: s.brightness,
		Alpha:      s.alpha,
		ColorSpace: s.colorSpace,
	}
}

// RGB converts back to an 8-bit triple, ignoring alpha.
func (s Swatch) RGB() (r, g, b uint8) {
	return s.color().RGB255()
}

// Hex renders the swatch as "#rrggbb".
func (s Swatch) Hex() string {
	return s.color().Hex()
}

func (s Swatch) String() string {
	return fmt.Sprintf("%s (h=%.3f s=%.3f b=%.3f a=%.2f)",
		s.Hex(), s.hue, s.saturation, s.brightness, s.alpha)
}

func (s Swatch) color() colorful.Color {
	return colorful.Hsv(s.hue*360, s.saturation, s.brightness).Clamped()
}

// toTurns maps degrees in [0,360) onto [0,1).
func toTurns(degrees float64) float64 {
	h := degrees / 360
	if h >= 1 || h < 0 {
		h = 0
	}
	return h
}
