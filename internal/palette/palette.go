// Package palette implements the fixed 3x10 grid of optional swatches and
// its JSON document form.
package palette

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"swatchbook/internal/hexscan"
	"swatchbook/internal/swatch"
)

const (
	MaxRows   = 3
	RowSize   = 10
	MaxLength = MaxRows * RowSize

	DefaultName = "Untitled Palette"
)

// ErrIndexOutOfRange is returned by Get and Set for indexes outside [0, MaxLength).
var ErrIndexOutOfRange = errors.New("index out of range")

// Palette is a named grid of MaxLength slots. A nil slot is an empty grid
// position. Swatches are copied in and out, so callers never share a slot.
type Palette struct {
	name  string
	cells [MaxLength]*swatch.Swatch
}

// New returns an empty palette. The first name, if any, replaces the default.
func New(name ...string) *Palette {
	p := &Palette{name: DefaultName}
	if len(name) > 0 {
		p.name = name[0]
	}
	return p
}

// FromText builds a palette from freeform text. Up to MaxRows lines and
// RowSize tokens per line are used; token (row, col) lands in slot
// row*RowSize+col. Any token that is not a valid color fails the whole call.
func FromText(text string) (*Palette, error) {
	p := New()
	for _, tok := range hexscan.Extract(text, MaxRows, RowSize) {
		s, err := swatch.FromHex(tok.Text)
		if err != nil {
			return nil, fmt.Errorf("line %d, token %d: %w", tok.Row+1, tok.Col+1, err)
		}
		if err := p.Set(tok.Row*RowSize+tok.Col, &s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Palette) Name() string { return p.name }

func (p *Palette) SetName(name string) { p.name = name }

// Len is always MaxLength.
func (p *Palette) Len() int { return len(p.cells) }

// Count returns the number of populated slots.
func (p *Palette) Count() int {
	n := 0
	for _, c := range p.cells {
		if c != nil {
			n++
		}
	}
	return n
}

// Get returns a copy of the swatch at index, or nil for an empty slot.
func (p *Palette) Get(index int) (*swatch.Swatch, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	c := p.cells[index]
	if c == nil {
		return nil, nil
	}
	s := *c
	return &s, nil
}

// Set stores a copy of s at index. A nil s clears the slot.
func (p *Palette) Set(index int, s *swatch.Swatch) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	if s == nil {
		p.cells[index] = nil
		return nil
	}
	cp := *s
	p.cells[index] = &cp
	return nil
}

// Position maps a slot index onto its grid row and column.
func Position(index int) (row, col int, err error) {
	if err := checkIndex(index); err != nil {
		return 0, 0, err
	}
	return index / RowSize, index % RowSize, nil
}

// Filename derives a file name from the palette name. Path separators and
// control characters become '_' so the result never leaves its directory.
func (p *Palette) Filename(ext string) string {
	name := strings.TrimSpace(p.name)
	if name == "" || name == "." || name == ".." {
		name = DefaultName
	}
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, name)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return name + ext
}

func checkIndex(index int) error {
	if index < 0 || index >= MaxLength {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, MaxLength)
	}
	return nil
}
