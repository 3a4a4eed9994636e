// Package preview renders a palette as a PNG swatch sheet.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"swatchbook/internal/palette"
)

const (
	CellSize    = 48
	labelHeight = 16
	gap         = 6
	checkerSize = 8
)

var (
	background = color.NRGBA{0x1e, 0x1e, 0x2e, 0xff}
	checkLight = color.NRGBA{0x3a, 0x3a, 0x4a, 0xff}
	checkDark  = color.NRGBA{0x2c, 0x2c, 0x3a, 0xff}
	labelColor = color.NRGBA{0xcd, 0xd6, 0xf4, 0xff}
)

// CellOrigin returns the top-left pixel of the cell for slot index.
func CellOrigin(index int) image.Point {
	row, col, err := palette.Position(index)
	if err != nil {
		return image.Point{}
	}
	return image.Pt(gap+col*(CellSize+gap), gap+row*(CellSize+labelHeight+gap))
}

// Render draws the grid. Populated cells are filled with the swatch color
// (alpha applied over the background) and labelled with their hex code;
// empty cells show a checkerboard.
func Render(p *palette.Palette) *image.RGBA {
	w := gap + palette.RowSize*(CellSize+gap)
	h := gap + palette.MaxRows*(CellSize+labelHeight+gap)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i := 0; i < p.Len(); i++ {
		origin := CellOrigin(i)
		cell := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(CellSize, CellSize))}

		s, err := p.Get(i)
		if err != nil || s == nil {
			drawChecker(img, cell)
			continue
		}

		r, g, b := s.RGB()
		a := uint8(math.Round(clamp01(s.Alpha()) * 255))
		draw.Draw(img, cell, image.NewUniform(color.NRGBA{r, g, b, a}), image.Point{}, draw.Over)
		drawLabel(img, origin.X, cell.Max.Y+12, strings.TrimPrefix(s.Hex(), "#"))
	}
	return img
}

// WritePNG renders p to dest, replacing any existing file.
func WritePNG(p *palette.Palette, dest string) (err error) {
	f, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = png.Encode(f, Render(p)); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close preview: %w", err)
	}
	if err = os.Rename(f.Name(), dest); err != nil {
		return fmt.Errorf("rename preview: %w", err)
	}
	return nil
}

func drawChecker(img draw.Image, cell image.Rectangle) {
	for y := cell.Min.Y; y < cell.Max.Y; y += checkerSize {
		for x := cell.Min.X; x < cell.Max.X; x += checkerSize {
			c := checkLight
			if ((x-cell.Min.X)/checkerSize+(y-cell.Min.Y)/checkerSize)%2 == 1 {
				c = checkDark
			}
			sq := image.Rect(x, y, x+checkerSize, y+checkerSize).Intersect(cell)
			draw.Draw(img, sq, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
}

func drawLabel(img draw.Image, x, baseline int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
