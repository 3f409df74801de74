package warraq

import "fmt"

// Alignment option values.
const (
	AlignNatural  = "natural"
	AlignOpposite = "opposite"
	AlignJustify  = "justify"
)

// Writing direction option values.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Layout defaults.
const (
	DefaultLineWidth = 84
	DefaultPageLines = 40
)

// Layout configures how the document is reflowed and paginated.
// The zero value of any field falls back to its default.
type Layout struct {
	LineWidth           int    // character columns for text output
	PageLines           int    // text rows per page
	Alignment           string // "natural", "opposite", "justify"
	ParagraphIndent     int    // units reserved before a paragraph's first token
	LineSpacing         int    // 1 = single spacing
	ChapterPageBreak    bool   // force every section onto a fresh page
	IncludeStats        bool   // append the word-count statistics page
	HeaderSpacingBefore int    // blank rows above section headings
	HeaderSpacingAfter  int    // blank rows below section headings
	Direction           string // "ltr" or "rtl"
	Labels              Labels
	Page                *PageSettings // non-nil selects print geometry for paged output
}

// DefaultLayout returns the layout the original formatter shipped
// with: 84 columns, natural alignment, single spacing.
func DefaultLayout() Layout {
	return Layout{
		LineWidth:          DefaultLineWidth,
		PageLines:          DefaultPageLines,
		Alignment:          AlignNatural,
		LineSpacing:        1,
		HeaderSpacingAfter: 1,
		Direction:          DirectionLTR,
		Labels:             DefaultLabels(),
	}
}

// withDefaults fills zero-valued fields so a partially specified
// Layout behaves like DefaultLayout for the unspecified parts.
func (l Layout) withDefaults() Layout {
	if l.LineWidth == 0 {
		l.LineWidth = DefaultLineWidth
	}
	if l.PageLines == 0 {
		l.PageLines = DefaultPageLines
	}
	if l.Alignment == "" {
		l.Alignment = AlignNatural
	}
	if l.LineSpacing == 0 {
		l.LineSpacing = 1
	}
	if l.Direction == "" {
		l.Direction = DirectionLTR
	}
	l.Labels = l.Labels.withDefaults(l.Direction)
	return l
}

// Validate checks the layout options. Zero values are allowed; they
// mean "use the default".
func (l Layout) Validate() error {
	switch l.Alignment {
	case "", AlignNatural, AlignOpposite, AlignJustify:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAlignment, l.Alignment)
	}
	switch l.Direction {
	case "", DirectionLTR, DirectionRTL:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirection, l.Direction)
	}
	if l.LineWidth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLineWidth, l.LineWidth)
	}
	if l.PageLines < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageLines, l.PageLines)
	}
	if l.ParagraphIndent < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndent, l.ParagraphIndent)
	}
	if l.LineSpacing < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLineSpacing, l.LineSpacing)
	}
	if l.HeaderSpacingBefore < 0 || l.HeaderSpacingAfter < 0 {
		return fmt.Errorf("%w: %d/%d", ErrInvalidHeaderSpacing, l.HeaderSpacingBefore, l.HeaderSpacingAfter)
	}
	return l.Page.Validate()
}

// Page geometry defaults, pixels at 96 DPI (US letter).
const (
	DefaultPageWidth  = 816
	DefaultPageHeight = 1056
	DefaultPageMargin = 96
)

// PageSettings fixes the print geometry for paged output. All sizes
// are pixels.
type PageSettings struct {
	Width    int
	Height   int
	Margin   int
	FontPath string  // empty means the embedded Go Regular face
	FontSize float64 // points; 0 means the fontkit default
}

// DefaultPageSettings returns US-letter geometry at 96 DPI.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Width:  DefaultPageWidth,
		Height: DefaultPageHeight,
		Margin: DefaultPageMargin,
	}
}

// Validate checks page geometry. Returns nil if p is nil (nil means
// text output or default geometry).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if p.Width <= 0 || p.Height <= 0 || p.Margin < 0 ||
		p.Width <= 2*p.Margin || p.Height <= 2*p.Margin {
		return fmt.Errorf("%w: %dx%d margin %d", ErrInvalidPageGeometry, p.Width, p.Height, p.Margin)
	}
	if p.FontSize < 0 {
		return fmt.Errorf("%w: %.1f", ErrInvalidFontSize, p.FontSize)
	}
	return nil
}

// Labels holds the display strings for the generated scaffolding.
// Empty fields fall back to the direction's default label set.
type Labels struct {
	Contents      string // table-of-contents heading
	Introduction  string // introduction section title
	Conclusion    string // conclusion section title
	ChapterFormat string // chapter title format, one %d verb
	Byline        string // author credit format, one %s verb
	EndTitle      string // closing rule text
	EndWord       string // centered word under the closing rule
	Statistics    string // statistics section title
	StatFormat    string // statistics row format, %s then %d
	TotalFormat   string // statistics total format, one %d verb
}

// DefaultLabels returns the English label set.
func DefaultLabels() Labels {
	return Labels{
		Contents:      "Table of Contents",
		Introduction:  "Introduction",
		Conclusion:    "Conclusion",
		ChapterFormat: "Chapter %d",
		Byline:        "by %s",
		EndTitle:      "The End",
		EndWord:       "✦",
		Statistics:    "Statistics",
		StatFormat:    "%s — %d words",
		TotalFormat:   "Total — %d words",
	}
}

// ArabicLabels returns the label set of the original Arabic novel
// formatter.
func ArabicLabels() Labels {
	return Labels{
		Contents:      "جدول المحتويات",
		Introduction:  "المقدمة",
		Conclusion:    "الخاتمة",
		ChapterFormat: "الفصل %d",
		Byline:        "بقلم %s",
		EndTitle:      "النهاية",
		EndWord:       "تمت",
		Statistics:    "الإحصاءات",
		StatFormat:    "%s — %d كلمة",
		TotalFormat:   "المجموع — %d كلمة",
	}
}

// withDefaults fills empty label fields from the direction's default
// set: Arabic labels for right-to-left documents, English otherwise.
func (lb Labels) withDefaults(direction string) Labels {
	base := DefaultLabels()
	if direction == DirectionRTL {
		base = ArabicLabels()
	}
	if lb.Contents == "" {
		lb.Contents = base.Contents
	}
	if lb.Introduction == "" {
		lb.Introduction = base.Introduction
	}
	if lb.Conclusion == "" {
		lb.Conclusion = base.Conclusion
	}
	if lb.ChapterFormat == "" {
		lb.ChapterFormat = base.ChapterFormat
	}
	if lb.Byline == "" {
		lb.Byline = base.Byline
	}
	if lb.EndTitle == "" {
		lb.EndTitle = base.EndTitle
	}
	if lb.EndWord == "" {
		lb.EndWord = base.EndWord
	}
	if lb.Statistics == "" {
		lb.Statistics = base.Statistics
	}
	if lb.StatFormat == "" {
		lb.StatFormat = base.StatFormat
	}
	if lb.TotalFormat == "" {
		lb.TotalFormat = base.TotalFormat
	}
	return lb
}

// SectionTitle resolves the display title for a section kind.
func (lb Labels) SectionTitle(s Section) string {
	switch s.Kind {
	case KindIntroduction:
		return lb.Introduction
	case KindChapter:
		return fmt.Sprintf(lb.ChapterFormat, s.Number)
	case KindConclusion:
		return lb.Conclusion
	case KindStatistics:
		return lb.Statistics
	}
	return ""
}
