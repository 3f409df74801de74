package layout

import (
	"strings"
	"unicode/utf8"
)

// Alignment selects how a finished line sits inside the width budget.
type Alignment int

// Alignment modes. Natural and Opposite are relative to the writing
// direction; padding for Opposite and Center is applied by the renderer
// and never reorders tokens.
const (
	AlignNatural Alignment = iota
	AlignOpposite
	AlignCenter
	AlignJustify
)

// Direction is the writing direction of the document text.
type Direction int

// Writing directions.
const (
	LeftToRight Direction = iota
	RightToLeft
)

// WidthFunc measures one token in layout units. Character output uses
// [RuneWidth]; print output uses font metrics.
type WidthFunc func(token string) int

// RuneWidth measures a token as its rune count.
func RuneWidth(token string) int {
	return utf8.RuneCountInString(token)
}

// Line is a finished, wrapped piece of text. It is immutable once
// produced: renderers read tokens and gap widths but never change them.
type Line struct {
	// Tokens in logical reading order.
	Tokens []string

	// GapExtra holds, for each of the len(Tokens)-1 inter-token gaps,
	// the extra units added beyond the single space separator. All
	// zeros except on justified lines.
	GapExtra []int

	Align  Alignment
	Indent int // units reserved at the logical start (first line of a paragraph)
	Width  int // total measured width: indent + tokens + gaps
}

// String renders the line in character units: indent spaces, then
// tokens joined by one-plus-extra spaces. Alignment padding is the
// renderer's job because it depends on the width budget.
func (l Line) String() string {
	var b strings.Builder
	b.Grow(l.Width)
	for n := 0; n < l.Indent; n++ {
		b.WriteByte(' ')
	}
	for i, tok := range l.Tokens {
		if i > 0 {
			b.WriteByte(' ')
			for n := 0; n < l.GapExtra[i-1]; n++ {
				b.WriteByte(' ')
			}
		}
		b.WriteString(tok)
	}
	return b.String()
}
