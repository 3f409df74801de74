package layout

import "strings"

// ReflowConfig bounds and styles the wrapping of one paragraph.
type ReflowConfig struct {
	Budget     int       // maximum line width in layout units
	Align      Alignment // applied to every produced line
	Indent     int       // units reserved before the first token of the first line
	Width      WidthFunc // token measurer; nil means RuneWidth
	SpaceWidth int       // width of the inter-token separator; 0 means 1
}

func (c ReflowConfig) widthFunc() WidthFunc {
	if c.Width == nil {
		return RuneWidth
	}
	return c.Width
}

func (c ReflowConfig) spaceWidth() int {
	if c.SpaceWidth == 0 {
		return 1
	}
	return c.SpaceWidth
}

// Reflow wraps one canonical paragraph into lines using greedy fill:
// tokens accumulate in logical order until the next token would exceed
// the budget. Tokens are never split or hyphenated; a single token
// wider than the budget occupies its own line and overflows.
//
// Justified lines (except the paragraph's last) are padded to exactly
// the budget by widening inter-token gaps, trailing gaps first.
// Identical inputs always produce identical lines.
func Reflow(paragraph string, cfg ReflowConfig) []Line {
	tokens := strings.Fields(paragraph)
	if len(tokens) == 0 {
		return nil
	}
	width := cfg.widthFunc()
	space := cfg.spaceWidth()

	var lines []Line
	var cur []string
	used := cfg.Indent // first line reserves the indent

	flush := func() {
		if len(cur) == 0 {
			return
		}
		indent := 0
		if len(lines) == 0 {
			indent = cfg.Indent
		}
		lines = append(lines, Line{
			Tokens:   cur,
			GapExtra: make([]int, len(cur)-1),
			Align:    cfg.Align,
			Indent:   indent,
			Width:    used,
		})
		cur = nil
		used = 0
	}

	for _, tok := range tokens {
		w := width(tok)
		need := w
		if len(cur) > 0 {
			need += space
		}
		if len(cur) > 0 && used+need > cfg.Budget {
			flush()
			need = w
		}
		cur = append(cur, tok)
		used += need
	}
	flush()

	if cfg.Align == AlignJustify {
		justify(lines, cfg.Budget)
	}
	return lines
}

// justify widens inter-token gaps so every line except the last spans
// the budget exactly. The spare units divide evenly across gaps; the
// remainder lands one unit per gap starting at the trailing edge and
// walking toward the leading edge. Lines with no gaps, and lines
// already at or over budget, are left alone.
func justify(lines []Line, budget int) {
	for i := range lines {
		if i == len(lines)-1 {
			break // a paragraph's last line stays ragged
		}
		l := &lines[i]
		gaps := len(l.Tokens) - 1
		spare := budget - l.Width
		if gaps == 0 || spare <= 0 {
			continue
		}
		each, rem := spare/gaps, spare%gaps
		for g := range l.GapExtra {
			l.GapExtra[g] += each
		}
		for g := 0; g < rem; g++ {
			l.GapExtra[gaps-1-g]++
		}
		l.Width = budget
	}
}
