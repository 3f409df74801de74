package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/alkhatib/warraq/internal/fontkit"
	"github.com/alkhatib/warraq/layout"
)

// PageOptions fixes the print geometry and fonts for raster output.
// All sizes are pixels; the layout engine has already measured line
// widths in 26.6 units with the same faces.
type PageOptions struct {
	Width  int
	Height int
	Margin int

	Body    *fontkit.Face
	Heading *fontkit.Face

	Direction  layout.Direction
	Background color.Color // nil means white
	Ink        color.Color // nil means near-black
}

func (o PageOptions) background() color.Color {
	if o.Background == nil {
		return color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	}
	return o.Background
}

func (o PageOptions) ink() color.Color {
	if o.Ink == nil {
		return color.RGBA{0x11, 0x11, 0x11, 0xFF}
	}
	return o.Ink
}

// Pages rasterizes every composed page into an image, one per page.
// Vertical placement replays the paginator's block costs, so content
// lands exactly where the engine accounted for it. Token positions are
// accumulated in 26.6 units to avoid per-token rounding drift. For
// right-to-left documents token positions are mirrored from the right
// edge; logical token order is untouched (glyph shaping is out of
// scope).
func Pages(res *layout.Result, opts PageOptions) []*image.RGBA {
	images := make([]*image.RGBA, 0, len(res.Pages))
	for _, page := range res.Pages {
		img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.background()), image.Point{}, draw.Src)

		y := opts.Margin
		for _, block := range page.Blocks {
			switch block := block.(type) {
			case layout.Heading:
				drawCentered(img, strings.Join(block.Line.Tokens, " "), opts.Heading, y, opts)
			case layout.TextLine:
				drawLine(img, block.Line, opts.Body, y, opts)
			}
			y += block.Cost()
		}
		images = append(images, img)
	}
	return images
}

// drawCentered paints a single run of text centered between the
// margins, used for headings.
func drawCentered(dst *image.RGBA, text string, face *fontkit.Face, y int, opts PageOptions) {
	w := fontkit.Pixels(face.Width(text))
	x := opts.Margin + (opts.Width-2*opts.Margin-w)/2
	drawText(dst, text, face, x, y+face.Ascent(), opts.ink())
}

// drawLine paints one wrapped line token by token, honoring the
// engine's indent and justified gap widths.
func drawLine(dst *image.RGBA, l layout.Line, face *fontkit.Face, y int, opts PageOptions) {
	avail := opts.Width - 2*opts.Margin
	shift := 0
	switch l.Align {
	case layout.AlignOpposite:
		shift = avail - fontkit.Pixels(l.Width)
	case layout.AlignCenter:
		shift = (avail - fontkit.Pixels(l.Width)) / 2
	}
	if shift < 0 {
		shift = 0
	}

	space := face.SpaceWidth()
	baseline := y + face.Ascent()
	cursor := l.Indent // 26.6 units from the logical line start
	for i, tok := range l.Tokens {
		w := face.Width(tok)
		var x int
		if opts.Direction == layout.RightToLeft {
			x = opts.Width - opts.Margin - shift - fontkit.Pixels(cursor+w)
		} else {
			x = opts.Margin + shift + fontkit.Pixels(cursor)
		}
		drawText(dst, tok, face, x, baseline, opts.ink())
		cursor += w + space
		if i < len(l.GapExtra) {
			cursor += l.GapExtra[i]
		}
	}
}

func drawText(dst *image.RGBA, text string, face *fontkit.Face, x, baseline int, ink color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: face.Face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
