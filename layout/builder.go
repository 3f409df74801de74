package layout

import "strings"

// Section is the layout-level view of one document section: a stable
// key, a display title, and its canonical paragraphs in order.
type Section struct {
	Key        string
	Title      string
	Paragraphs []string
}

// BuildConfig controls how a section becomes a block stream.
type BuildConfig struct {
	Reflow        ReflowConfig
	LineSpacing   int // blank rows after each text line is LineSpacing-1; min 1
	HeaderBefore  int // spacer rows above the heading
	HeaderAfter   int // spacer rows below the heading
	LineHeight    int // cost of one text row; 0 means 1
	HeadingHeight int // cost of a heading row; 0 means LineHeight
	BreakAfter    bool
}

func (c BuildConfig) lineHeight() int {
	if c.LineHeight == 0 {
		return 1
	}
	return c.LineHeight
}

func (c BuildConfig) headingHeight() int {
	if c.HeadingHeight == 0 {
		return c.lineHeight()
	}
	return c.HeadingHeight
}

func (c BuildConfig) lineSpacing() int {
	if c.LineSpacing < 1 {
		return 1
	}
	return c.LineSpacing
}

// BuildSection turns one section into its renderable block stream: the
// heading with its surrounding spacers, then every paragraph's wrapped
// lines with line-spacing spacers after each line and one extra spacer
// between paragraphs (never after the section's last paragraph). With
// BreakAfter set, a forced PageBreak closes the stream.
func BuildSection(sec Section, cfg BuildConfig) []Block {
	spacing := cfg.lineSpacing()
	lh := cfg.lineHeight()

	var blocks []Block
	for n := 0; n < cfg.HeaderBefore; n++ {
		blocks = append(blocks, BlankSpacer{Height: lh})
	}
	blocks = append(blocks, Heading{
		Section: sec.Key,
		Line:    CenteredLine(sec.Title, cfg.Reflow.widthFunc(), cfg.Reflow.spaceWidth()),
		Height:  cfg.headingHeight(),
	})
	for n := 0; n < cfg.HeaderAfter; n++ {
		blocks = append(blocks, BlankSpacer{Height: lh})
	}

	for pi, para := range sec.Paragraphs {
		if pi > 0 {
			blocks = append(blocks, BlankSpacer{Height: lh})
		}
		for li, ln := range Reflow(para, cfg.Reflow) {
			blocks = append(blocks, TextLine{Line: ln, Height: lh, Start: li == 0})
			for n := 0; n < spacing-1; n++ {
				blocks = append(blocks, BlankSpacer{Height: lh})
			}
		}
	}

	if cfg.BreakAfter {
		blocks = append(blocks, PageBreak{})
	}
	return blocks
}

// CenteredLine builds a single centered line from text without
// wrapping. Headings and table-of-contents rows use it so their line
// count never depends on the width budget.
func CenteredLine(text string, width WidthFunc, space int) Line {
	if width == nil {
		width = RuneWidth
	}
	if space == 0 {
		space = 1
	}
	tokens := strings.Fields(text)
	w := 0
	for i, tok := range tokens {
		if i > 0 {
			w += space
		}
		w += width(tok)
	}
	var gaps []int
	if len(tokens) > 1 {
		gaps = make([]int, len(tokens)-1)
	}
	return Line{Tokens: tokens, GapExtra: gaps, Align: AlignCenter, Width: w}
}
