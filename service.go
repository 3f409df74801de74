package warraq

import (
	"fmt"
	"image"

	"github.com/alkhatib/warraq/internal/fontkit"
	"github.com/alkhatib/warraq/internal/normalize"
	"github.com/alkhatib/warraq/internal/render"
	"github.com/alkhatib/warraq/layout"
)

// paragraphNormalizer is the seam between the raw section text and the
// layout engine's canonical paragraph stream.
type paragraphNormalizer interface {
	Paragraphs(raw string, punct normalize.Punctuation) []string
}

type stdNormalizer struct{}

func (stdNormalizer) Paragraphs(raw string, punct normalize.Punctuation) []string {
	return normalize.Paragraphs(raw, punct)
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	punct normalize.Punctuation
}

// Option configures a Service.
type Option func(*Service)

// WithPunctuation overrides the direction-derived punctuation
// canonicalization map. Keys are variant runes, values their canonical
// form.
func WithPunctuation(canon map[rune]rune) Option {
	return func(s *Service) { s.cfg.punct = normalize.Punctuation(canon) }
}

// withNormalizer injects a normalizer; used by tests.
func withNormalizer(n paragraphNormalizer) Option {
	return func(s *Service) { s.norm = n }
}

// Service orchestrates the document formatting pipeline: normalize,
// reflow, build blocks, paginate, resolve the table of contents, and
// hand the finished pages to a renderer.
type Service struct {
	cfg  serviceConfig
	norm paragraphNormalizer
	html *render.HTMLRenderer
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		norm: stdNormalizer{},
		html: render.NewHTMLRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Composition is the engine's finished output: the authoritative page
// sequence with the resolved table of contents, the per-section word
// counts, and the effective layout the renderers should honor.
type Composition struct {
	Result *layout.Result
	Stats  []SectionStat
	Layout Layout

	body    *fontkit.Face
	heading *fontkit.Face
}

// Compose runs the layout engine over the document. cfg.Page selects
// the measurement mode: nil lays out in character columns and text
// rows, non-nil in font units against the print geometry.
func (s *Service) Compose(doc *Document, cfg Layout) (*Composition, error) {
	return s.compose(doc, cfg, cfg.Page != nil)
}

// FormatMarkdown renders the fixed-width text form of the document.
func (s *Service) FormatMarkdown(doc *Document, cfg Layout) ([]byte, error) {
	comp, err := s.compose(doc, cfg, false)
	if err != nil {
		return nil, err
	}
	return render.Markdown(comp.Result, render.MarkdownOptions{Width: comp.Layout.LineWidth}), nil
}

// FormatHTML renders a standalone, reflowable HTML document.
func (s *Service) FormatHTML(doc *Document, cfg Layout) ([]byte, error) {
	comp, err := s.compose(doc, cfg, false)
	if err != nil {
		return nil, err
	}
	return s.html.Render(comp.Result, doc.Title, directionOf(comp.Layout.Direction))
}

// FormatPages renders the print-ready form, one raster image per page.
// A nil cfg.Page uses the default US-letter geometry.
func (s *Service) FormatPages(doc *Document, cfg Layout) ([]*image.RGBA, error) {
	comp, err := s.compose(doc, cfg, true)
	if err != nil {
		return nil, err
	}
	page := comp.Layout.Page
	return render.Pages(comp.Result, render.PageOptions{
		Width:     page.Width,
		Height:    page.Height,
		Margin:    page.Margin,
		Body:      comp.body,
		Heading:   comp.heading,
		Direction: directionOf(comp.Layout.Direction),
	}), nil
}

// compose validates, normalizes every section, configures the layout
// units for the requested mode, and runs the two-pass composition.
func (s *Service) compose(doc *Document, cfg Layout, paged bool) (*Composition, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	eff := cfg.withDefaults()

	punct := s.cfg.punct
	if punct == nil {
		punct = normalize.LatinPunctuation
		if eff.Direction == DirectionRTL {
			punct = normalize.ArabicPunctuation
		}
	}

	var secs []layout.Section
	var stats []SectionStat
	for _, sec := range doc.Sections() {
		paras := s.norm.Paragraphs(sec.Raw, punct)
		if len(paras) == 0 {
			return nil, fmt.Errorf("%w: %s has no text after normalization", ErrEmptySection, sec.Key())
		}
		title := eff.Labels.SectionTitle(sec)
		secs = append(secs, layout.Section{Key: sec.Key(), Title: title, Paragraphs: paras})
		stats = append(stats, SectionStat{Key: sec.Key(), Title: title, Words: wordCount(paras)})
	}
	if eff.IncludeStats {
		st := Section{Kind: KindStatistics}
		secs = append(secs, layout.Section{
			Key:        st.Key(),
			Title:      eff.Labels.Statistics,
			Paragraphs: statsParagraphs(stats, eff.Labels),
		})
	}

	build := layout.BuildConfig{
		Reflow: layout.ReflowConfig{
			Budget:     eff.LineWidth,
			Align:      alignmentOf(eff.Alignment),
			Indent:     eff.ParagraphIndent,
			Width:      layout.RuneWidth,
			SpaceWidth: 1,
		},
		LineSpacing:  eff.LineSpacing,
		HeaderBefore: eff.HeaderSpacingBefore,
		HeaderAfter:  eff.HeaderSpacingAfter,
		BreakAfter:   eff.ChapterPageBreak,
	}
	capacity := eff.PageLines

	comp := &Composition{Stats: stats}
	if paged {
		if eff.Page == nil {
			eff.Page = DefaultPageSettings()
		}
		page := eff.Page
		size := page.FontSize
		if size == 0 {
			size = fontkit.DefaultSize
		}
		body, err := fontkit.LoadFile(page.FontPath, size)
		if err != nil {
			return nil, err
		}
		heading, err := fontkit.LoadBold(size)
		if err != nil {
			return nil, err
		}
		// Horizontal units are 26.6 fixed point, vertical units pixels.
		build.Reflow.Budget = (page.Width - 2*page.Margin) * 64
		build.Reflow.Width = body.Width
		build.Reflow.SpaceWidth = body.SpaceWidth()
		build.Reflow.Indent = eff.ParagraphIndent * body.SpaceWidth()
		build.LineHeight = body.LineHeight()
		build.HeadingHeight = heading.LineHeight()
		capacity = page.Height - 2*page.Margin
		comp.body, comp.heading = body, heading
	}

	front := layout.FrontMatter{
		Title:    doc.Title,
		Tagline:  doc.Tagline,
		Byline:   fmt.Sprintf(eff.Labels.Byline, doc.Author),
		Epigraph: normalize.Text(doc.Epigraph, punct),
		Ornament: doc.Ornament,
	}
	res, err := layout.Compose(front, secs, layout.Config{
		Build:         build,
		Capacity:      capacity,
		ContentsTitle: eff.Labels.Contents,
		EndTitle:      eff.Labels.EndTitle,
		EndWord:       eff.Labels.EndWord,
	})
	if err != nil {
		return nil, err
	}
	comp.Result = res
	comp.Layout = eff
	return comp, nil
}

func alignmentOf(s string) layout.Alignment {
	switch s {
	case AlignOpposite:
		return layout.AlignOpposite
	case AlignJustify:
		return layout.AlignJustify
	}
	return layout.AlignNatural
}

func directionOf(s string) layout.Direction {
	if s == DirectionRTL {
		return layout.RightToLeft
	}
	return layout.LeftToRight
}
