// Package fontkit loads TrueType fonts and exposes the token-width and
// line-height metrics the layout engine needs for paginated output.
// Widths are reported in 26.6 fixed-point units so the engine can keep
// working in plain ints.
package fontkit

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ErrFontParse indicates the TTF data could not be parsed.
var ErrFontParse = errors.New("font parse failed")

// Rendering defaults shared with the paged renderer.
const (
	DefaultSize = 12.0
	DefaultDPI  = 96.0
)

// Face wraps a sized font face with a drawer for measurement.
type Face struct {
	Font *truetype.Font
	Face font.Face
	Size float64
}

// Load parses TTF bytes into a measuring face at the given point size.
func Load(ttf []byte, size float64) (*Face, error) {
	if size <= 0 {
		size = DefaultSize
	}
	ft, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontParse, err)
	}
	face := truetype.NewFace(ft, &truetype.Options{
		Size:    size,
		DPI:     DefaultDPI,
		Hinting: font.HintingFull,
	})
	return &Face{Font: ft, Face: face, Size: size}, nil
}

// LoadFile loads a TTF file, or the embedded Go Regular face when the
// path is empty.
func LoadFile(path string, size float64) (*Face, error) {
	if path == "" {
		return Load(goregular.TTF, size)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}
	return Load(b, size)
}

// LoadBold returns the embedded Go Bold face for headings.
func LoadBold(size float64) (*Face, error) {
	return Load(gobold.TTF, size)
}

// Width measures one token in 26.6 fixed-point units.
func (f *Face) Width(token string) int {
	return int(font.MeasureString(f.Face, token))
}

// SpaceWidth is the width of a single space in 26.6 units.
func (f *Face) SpaceWidth() int {
	return f.Width(" ")
}

// LineHeight is the recommended vertical advance in whole pixels.
func (f *Face) LineHeight() int {
	return f.Face.Metrics().Height.Ceil()
}

// Ascent is the baseline offset from the top of a line in whole pixels.
func (f *Face) Ascent() int {
	return f.Face.Metrics().Ascent.Ceil()
}

// Pixels converts a 26.6 fixed-point width to whole pixels, rounding.
func Pixels(units int) int {
	return fixed.Int26_6(units).Round()
}
