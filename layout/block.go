package layout

// Block is one typed unit of vertical page content. The variant set is
// closed: Heading, TextLine, BlankSpacer and PageBreak are the only
// implementations, and the Paginator dispatches over exactly these.
type Block interface {
	// Cost is the vertical space the block consumes, in page units.
	Cost() int

	isBlock()
}

// Heading opens a section. The paginator records the page it lands on
// and keeps it attached to the content below it where possible.
type Heading struct {
	Section string // section key, e.g. "chapter-7"
	Line    Line   // the title, already measured
	Height  int
}

// TextLine carries one wrapped line of body text. Start marks the
// first line of a paragraph so reflowing renderers can rejoin the
// rest.
type TextLine struct {
	Line   Line
	Height int
	Start  bool
}

// BlankSpacer is vertical whitespace between lines, paragraphs and
// around headings.
type BlankSpacer struct {
	Height int
}

// PageBreak forces the current page to close. It consumes no content
// space and does not appear in the finished pages.
type PageBreak struct{}

func (h Heading) Cost() int     { return h.Height }
func (t TextLine) Cost() int    { return t.Height }
func (s BlankSpacer) Cost() int { return s.Height }
func (PageBreak) Cost() int     { return 0 }

func (Heading) isBlock()     {}
func (TextLine) isBlock()    {}
func (BlankSpacer) isBlock() {}
func (PageBreak) isBlock()   {}

// Page is an ordered run of blocks whose cumulative cost stays within
// the paginator's capacity, except for a single oversized block placed
// alone.
type Page struct {
	Blocks []Block
}
