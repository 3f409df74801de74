package render

import (
	"strings"
	"unicode/utf8"

	"github.com/alkhatib/warraq/layout"
)

// MarkdownOptions styles the fixed-width text rendering.
type MarkdownOptions struct {
	Width       int  // line budget in character columns
	HeadingFill rune // rune framing heading titles; 0 means '═'
	EndFill     rune // frame for the closing rule; 0 means '─'
}

func (o MarkdownOptions) headingFill() rune {
	if o.HeadingFill == 0 {
		return '═'
	}
	return o.HeadingFill
}

func (o MarkdownOptions) endFill() rune {
	if o.EndFill == 0 {
		return '─'
	}
	return o.EndFill
}

// Markdown renders the composed pages as one fixed-width text
// document. Headings become padded rule lines, text lines keep the
// engine's wrapping and gap widths, and alignment padding is applied
// here in logical column space. Pages flow into each other; the text
// form is reflowable and has no page boundaries.
func Markdown(res *layout.Result, opts MarkdownOptions) []byte {
	var b strings.Builder
	for _, page := range res.Pages {
		for _, block := range page.Blocks {
			switch block := block.(type) {
			case layout.Heading:
				fill := opts.headingFill()
				if block.Section == "end" {
					fill = opts.endFill()
				}
				b.WriteString(headerRule(strings.Join(block.Line.Tokens, " "), opts.Width, fill))
				b.WriteByte('\n')
			case layout.TextLine:
				b.WriteString(padLine(block.Line, opts.Width))
				b.WriteByte('\n')
			case layout.BlankSpacer:
				b.WriteByte('\n')
			}
		}
	}
	return []byte(b.String())
}

// headerRule centers " title " inside a run of fill runes, the way a
// section header rules across the page. When the title is wider than
// the width it is emitted unpadded.
func headerRule(title string, width int, fill rune) string {
	text := " " + title + " "
	pad := width - utf8.RuneCountInString(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + text + strings.Repeat(string(fill), pad-left)
}

// padLine applies alignment padding in logical column space. Opposite
// flush and centering pad the logical start; bidi display order is the
// viewer's business and token order is never touched.
func padLine(l layout.Line, width int) string {
	s := l.String()
	pad := width - l.Width
	if pad <= 0 {
		return s
	}
	switch l.Align {
	case layout.AlignOpposite:
		return strings.Repeat(" ", pad) + s
	case layout.AlignCenter:
		return strings.Repeat(" ", pad/2) + s
	default:
		return s
	}
}
