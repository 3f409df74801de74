package warraq

import (
	"fmt"
	"strings"
)

// RequiredChapters is the fixed number of numbered chapters a document
// must carry, in addition to its introduction and conclusion.
const RequiredChapters = 25

// SectionKind identifies a section's place in the fixed structure.
type SectionKind int

// Section kinds in document order.
const (
	KindIntroduction SectionKind = iota
	KindChapter
	KindConclusion
	KindStatistics
)

// Section is one structural unit of the document: the introduction, a
// numbered chapter, or the conclusion. Raw holds the section text as
// provided; normalization happens at composition time.
type Section struct {
	Kind   SectionKind
	Number int // 1-based chapter number; 0 for other kinds
	Raw    string
}

// Key returns the stable identifier used in start-page maps and
// table-of-contents entries.
func (s Section) Key() string {
	switch s.Kind {
	case KindIntroduction:
		return "introduction"
	case KindChapter:
		return fmt.Sprintf("chapter-%d", s.Number)
	case KindConclusion:
		return "conclusion"
	case KindStatistics:
		return "statistics"
	}
	return ""
}

// Document is a validated, immutable fixed-structure document: title
// and author, optional front-matter text, and exactly one
// introduction, 25 chapters in order, and one conclusion.
type Document struct {
	Title    string
	Author   string
	Tagline  string
	Epigraph string
	Ornament string

	sections []Section
}

// DocumentOption customizes optional document metadata.
type DocumentOption func(*Document)

// WithTagline sets the short descriptive line under the title.
func WithTagline(tagline string) DocumentOption {
	return func(d *Document) { d.Tagline = tagline }
}

// WithEpigraph sets the quote rendered on the title page.
func WithEpigraph(epigraph string) DocumentOption {
	return func(d *Document) { d.Epigraph = epigraph }
}

// WithOrnament overrides the decorative glyph framing the title page.
func WithOrnament(ornament string) DocumentOption {
	return func(d *Document) { d.Ornament = ornament }
}

// defaultOrnament frames the title page unless overridden.
const defaultOrnament = "✦✦✦"

// NewDocument validates the inputs and builds the document. It fails
// fast with ErrChapterCount for anything other than exactly 25
// chapters and with ErrEmptySection when the introduction, the
// conclusion, or any chapter has no text. The section list is fixed at
// construction and immutable afterwards.
func NewDocument(title, author, intro string, chapters []string, conclusion string, opts ...DocumentOption) (*Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(author) == "" {
		return nil, ErrEmptyAuthor
	}
	if len(chapters) != RequiredChapters {
		return nil, fmt.Errorf("%w: got %d", ErrChapterCount, len(chapters))
	}
	if strings.TrimSpace(intro) == "" {
		return nil, fmt.Errorf("%w: introduction", ErrEmptySection)
	}
	if strings.TrimSpace(conclusion) == "" {
		return nil, fmt.Errorf("%w: conclusion", ErrEmptySection)
	}

	sections := make([]Section, 0, RequiredChapters+2)
	sections = append(sections, Section{Kind: KindIntroduction, Raw: intro})
	for i, ch := range chapters {
		if strings.TrimSpace(ch) == "" {
			return nil, fmt.Errorf("%w: chapter %d", ErrEmptySection, i+1)
		}
		sections = append(sections, Section{Kind: KindChapter, Number: i + 1, Raw: ch})
	}
	sections = append(sections, Section{Kind: KindConclusion, Raw: conclusion})

	d := &Document{
		Title:    title,
		Author:   author,
		Ornament: defaultOrnament,
		sections: sections,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Sections returns the ordered section list as a copy; the document
// itself never changes after construction.
func (d *Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	copy(out, d.sections)
	return out
}
