// Package export renders a nine-box arrangement to a PNG image.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ninebox/font"
	"github.com/gogpu/ninebox/grid"
	"github.com/gogpu/ninebox/internal/logging"
)

// ErrBadCellSize is returned when Options.CellSize is not positive.
var ErrBadCellSize = errors.New("export: cell size must be positive")

// Options controls the rendered image.
type Options struct {
	// CellSize is the edge length of one cell in pixels.
	CellSize int
	// FontSize is the glyph size in points at 72 DPI. Zero picks 60% of
	// CellSize.
	FontSize float64
	// FontData is a TrueType font to draw with. Nil, or data truetype
	// cannot parse, falls back to Go Regular.
	FontData []byte
	// Background and Foreground default to white and black.
	Background color.Color
	Foreground color.Color
	// GridLines draws the cell borders.
	GridLines bool
	// Highlight marks cells with a tinted background, e.g. invalid locks.
	Highlight []grid.Position
}

// DefaultOptions returns 128 pixel cells with grid lines.
func DefaultOptions() Options {
	return Options{CellSize: 128, GridLines: true}
}

// Labeler returns the text drawn for a glyph identifier. Identifiers that
// name a glyph rather than spell it (a.sc, uni5929) need a font service to
// find their character.
type Labeler func(id font.GlyphID) string

// ServiceLabeler draws each glyph's encoded character when svc knows it,
// and the identifier itself otherwise.
func ServiceLabeler(svc font.Service) Labeler {
	return func(id font.GlyphID) string {
		if id.IsEmpty() {
			return ""
		}
		if utf8.RuneCountInString(string(id)) == 1 {
			return string(id)
		}
		if r, ok := font.ParseHexName(string(id)); ok {
			return string(r)
		}
		if svc != nil {
			if ctx, ok := svc.CurrentContext(); ok {
				if g, ok := svc.ResolveGlyph(ctx.Font, string(id)); ok && g.Rune != 0 {
					return string(g.Rune)
				}
			}
		}
		return string(id)
	}
}

// Render draws arr into a 3×3 image. A nil label draws identifiers as is.
func Render(arr grid.Arrangement, label Labeler, opts Options) (image.Image, error) {
	dc, err := draw(arr, label, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders arr and encodes it as PNG to w.
func WritePNG(w io.Writer, arr grid.Arrangement, label Labeler, opts Options) error {
	dc, err := draw(arr, label, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// SavePNG renders arr to the PNG file at path.
func SavePNG(path string, arr grid.Arrangement, label Labeler, opts Options) error {
	dc, err := draw(arr, label, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func draw(arr grid.Arrangement, label Labeler, opts Options) (*gg.Context, error) {
	if opts.CellSize <= 0 {
		return nil, ErrBadCellSize
	}
	if label == nil {
		label = func(id font.GlyphID) string { return string(id) }
	}
	bg, fg := opts.Background, opts.Foreground
	if bg == nil {
		bg = color.White
	}
	if fg == nil {
		fg = color.Black
	}

	face, err := loadFace(opts)
	if err != nil {
		return nil, err
	}

	cell := float64(opts.CellSize)
	size := opts.CellSize * 3
	dc := gg.NewContext(size, size)
	dc.SetColor(bg)
	dc.Clear()

	for _, p := range opts.Highlight {
		if !p.Valid() {
			continue
		}
		dc.SetRGBA(1, 0.2, 0.2, 0.25)
		dc.DrawRectangle(float64(p.Col())*cell, float64(p.Row())*cell, cell, cell)
		dc.Fill()
	}

	if opts.GridLines {
		dc.SetColor(fg)
		dc.SetLineWidth(1)
		for i := 1; i < 3; i++ {
			at := float64(i) * cell
			dc.DrawLine(at, 0, at, float64(size))
			dc.DrawLine(0, at, float64(size), at)
		}
		dc.Stroke()
	}

	dc.SetFontFace(face)
	dc.SetColor(fg)
	for i, id := range arr {
		s := label(id)
		if s == "" {
			continue
		}
		p := grid.Position(i)
		cx := (float64(p.Col()) + 0.5) * cell
		cy := (float64(p.Row()) + 0.5) * cell
		dc.DrawStringAnchored(s, cx, cy, 0.5, 0.5)
	}
	return dc, nil
}

func loadFace(opts Options) (xfont.Face, error) {
	size := opts.FontSize
	if size <= 0 {
		size = float64(opts.CellSize) * 0.6
	}

	var f *truetype.Font
	if opts.FontData != nil {
		parsed, err := truetype.Parse(opts.FontData)
		if err != nil {
			logging.Logger().Warn("export: font not usable, falling back to Go Regular", "err", err)
		} else {
			f = parsed
		}
	}
	if f == nil {
		parsed, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("export: failed to parse font: %w", err)
		}
		f = parsed
	}

	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	}), nil
}
