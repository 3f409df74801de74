package layout

import "fmt"

// FrontMatter holds the title-page text. Byline is the already
// formatted author credit; Ornament frames the page when non-empty.
type FrontMatter struct {
	Title    string
	Tagline  string
	Byline   string
	Epigraph string
	Ornament string
}

// TocEntry cites where a section starts. Page is resolved by Compose;
// a zero Page only ever exists inside the resolution passes.
type TocEntry struct {
	Key   string
	Title string
	Page  int
}

// Config drives a full document composition.
type Config struct {
	Build         BuildConfig
	Capacity      int    // page capacity in the Build cost units
	ContentsTitle string // table-of-contents heading; empty omits the TOC
	EndTitle      string // closing rule after the last section; empty omits it
	EndWord       string // centered word under the closing rule
}

// Result is the finished composition: the authoritative page sequence
// (front matter first), the resolved table of contents, and the
// 1-based start page of every section keyed by section key.
type Result struct {
	Pages      []Page
	Toc        []TocEntry
	Starts     map[string]int
	FrontPages int
}

// Compose lays out the whole document and resolves the forward
// reference from the table of contents to the body page numbers.
//
// The TOC's entry count and titles are fixed before any layout
// happens, and every entry renders as exactly one unwrapped line, so
// its page count cannot depend on the numbers substituted into it.
// Compose exploits that: it paginates the front matter once with
// placeholder numbers to learn its extent, paginates the body starting
// right after, substitutes the real start pages, and re-paginates the
// front matter as a consistency check. A changed front-matter page
// count on the second pass is an internal defect and aborts the run.
func Compose(front FrontMatter, sections []Section, cfg Config) (*Result, error) {
	entries := make([]TocEntry, len(sections))
	for i, sec := range sections {
		entries[i] = TocEntry{Key: sec.Key, Title: sec.Title}
	}

	var body []Block
	for i, sec := range sections {
		b := cfg.Build
		b.BreakAfter = cfg.Build.BreakAfter && i < len(sections)-1
		body = append(body, BuildSection(sec, b)...)
	}
	body = append(body, endingBlocks(cfg)...)

	frontLen := 0
	if cfg.ContentsTitle != "" {
		first, err := Paginate(frontBlocks(front, entries, cfg), cfg.Capacity)
		if err != nil {
			return nil, err
		}
		frontLen = len(first.Pages)
	} else {
		first, err := Paginate(titleBlocks(front, cfg), cfg.Capacity)
		if err != nil {
			return nil, err
		}
		frontLen = len(first.Pages)
	}

	bodyPag, err := Paginate(body, cfg.Capacity)
	if err != nil {
		return nil, err
	}

	starts := make(map[string]int, len(bodyPag.Starts))
	for key, page := range bodyPag.Starts {
		starts[key] = page + frontLen
	}
	for i := range entries {
		entries[i].Page = starts[entries[i].Key]
	}

	var frontStream []Block
	if cfg.ContentsTitle != "" {
		frontStream = frontBlocks(front, entries, cfg)
	} else {
		frontStream = titleBlocks(front, cfg)
	}
	frontPag, err := Paginate(frontStream, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	if len(frontPag.Pages) != frontLen {
		return nil, fmt.Errorf("%w: front matter grew from %d to %d pages after page-number substitution",
			ErrLayoutInvariant, frontLen, len(frontPag.Pages))
	}
	for key, page := range frontPag.Starts {
		starts[key] = page
	}

	return &Result{
		Pages:      append(frontPag.Pages, bodyPag.Pages...),
		Toc:        entries,
		Starts:     starts,
		FrontPages: frontLen,
	}, nil
}

// frontBlocks is the full front-matter stream: the title page, a
// forced break, then the table of contents.
func frontBlocks(front FrontMatter, entries []TocEntry, cfg Config) []Block {
	blocks := titleBlocks(front, cfg)
	return append(blocks, tocBlocks(entries, cfg)...)
}

// titleBlocks builds the title page and closes it with a forced break.
func titleBlocks(front FrontMatter, cfg Config) []Block {
	lh := cfg.Build.lineHeight()
	wf := cfg.Build.Reflow.widthFunc()
	sp := cfg.Build.Reflow.spaceWidth()

	var blocks []Block
	if front.Ornament != "" {
		blocks = append(blocks,
			Heading{Section: "title", Line: CenteredLine(front.Ornament, wf, sp), Height: cfg.Build.headingHeight()},
			BlankSpacer{Height: lh},
		)
	}
	centered := func(text string) {
		blocks = append(blocks, TextLine{Line: CenteredLine(text, wf, sp), Height: lh, Start: true})
	}
	centered(front.Title)
	if front.Tagline != "" {
		blocks = append(blocks, BlankSpacer{Height: lh})
		centered(front.Tagline)
	}
	if front.Byline != "" {
		blocks = append(blocks, BlankSpacer{Height: lh})
		centered(front.Byline)
	}
	if front.Ornament != "" {
		blocks = append(blocks,
			BlankSpacer{Height: lh},
			Heading{Section: "title", Line: CenteredLine(front.Ornament, wf, sp), Height: cfg.Build.headingHeight()},
		)
	}
	if front.Epigraph != "" {
		quote := cfg.Build.Reflow
		quote.Align = AlignCenter
		quote.Indent = 0
		blocks = append(blocks, BlankSpacer{Height: lh}, BlankSpacer{Height: lh})
		for li, ln := range Reflow(front.Epigraph, quote) {
			blocks = append(blocks, TextLine{Line: ln, Height: lh, Start: li == 0})
		}
	}
	return append(blocks, PageBreak{})
}

// tocBlocks builds the table of contents. Every entry is one
// pre-measured centered line that never wraps, which keeps the TOC's
// page count independent of the page numbers written into it.
func tocBlocks(entries []TocEntry, cfg Config) []Block {
	lh := cfg.Build.lineHeight()
	wf := cfg.Build.Reflow.widthFunc()
	sp := cfg.Build.Reflow.spaceWidth()

	blocks := []Block{Heading{
		Section: "contents",
		Line:    CenteredLine(cfg.ContentsTitle, wf, sp),
		Height:  cfg.Build.headingHeight(),
	}}
	for n := 0; n < cfg.Build.HeaderAfter; n++ {
		blocks = append(blocks, BlankSpacer{Height: lh})
	}
	for i, e := range entries {
		text := fmt.Sprintf("%d. %s", i+1, e.Title)
		if e.Page > 0 {
			text = fmt.Sprintf("%s · %d", text, e.Page)
		}
		blocks = append(blocks, TextLine{Line: CenteredLine(text, wf, sp), Height: lh, Start: true})
	}
	return append(blocks, PageBreak{})
}

// endingBlocks is the decorative close after the last section.
func endingBlocks(cfg Config) []Block {
	if cfg.EndTitle == "" {
		return nil
	}
	lh := cfg.Build.lineHeight()
	wf := cfg.Build.Reflow.widthFunc()
	sp := cfg.Build.Reflow.spaceWidth()

	blocks := []Block{
		BlankSpacer{Height: lh},
		Heading{Section: "end", Line: CenteredLine(cfg.EndTitle, wf, sp), Height: cfg.Build.headingHeight()},
	}
	if cfg.EndWord != "" {
		blocks = append(blocks,
			BlankSpacer{Height: lh},
			TextLine{Line: CenteredLine(cfg.EndWord, wf, sp), Height: lh, Start: true},
		)
	}
	return blocks
}
