// Package config loads formatter configuration from YAML files.
// Values from a config file sit below command-line flags and above the
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits; generous but bounded.
const (
	MaxTitleLength    = 200
	MaxAuthorLength   = 100
	MaxTaglineLength  = 200
	MaxEpigraphLength = 1000
	MaxOrnamentLength = 20
	MaxLabelLength    = 100
	MaxPathLength     = 2048
	MaxFormatLength   = 10
)

// Config holds all configuration for document formatting.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Layout   LayoutConfig   `yaml:"layout"`
	Labels   LabelsConfig   `yaml:"labels"`
	Page     PageConfig     `yaml:"page"`
	Output   OutputConfig   `yaml:"output"`
}

// DocumentConfig defines the document metadata.
type DocumentConfig struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Tagline  string `yaml:"tagline"`
	Epigraph string `yaml:"epigraph"`
	Ornament string `yaml:"ornament"`
}

// LayoutConfig defines reflow and pagination options.
type LayoutConfig struct {
	LineWidth           int    `yaml:"lineWidth"`           // character columns (default: 84)
	PageLines           int    `yaml:"pageLines"`           // rows per page (default: 40)
	Alignment           string `yaml:"alignment"`           // "natural", "opposite", "justify"
	ParagraphIndent     int    `yaml:"paragraphIndent"`     // first-line indent units
	LineSpacing         int    `yaml:"lineSpacing"`         // 1 = single spacing
	ChapterPageBreak    bool   `yaml:"chapterPageBreak"`    // one section per page
	IncludeStats        bool   `yaml:"includeStats"`        // word-count statistics page
	HeaderSpacingBefore int    `yaml:"headerSpacingBefore"` // blank rows above headings
	HeaderSpacingAfter  int    `yaml:"headerSpacingAfter"`  // blank rows below headings
	Direction           string `yaml:"direction"`           // "ltr" or "rtl"
}

// LabelsConfig overrides the generated scaffolding text.
type LabelsConfig struct {
	Contents      string `yaml:"contents"`
	Introduction  string `yaml:"introduction"`
	Conclusion    string `yaml:"conclusion"`
	ChapterFormat string `yaml:"chapterFormat"`
	Byline        string `yaml:"byline"`
	EndTitle      string `yaml:"endTitle"`
	EndWord       string `yaml:"endWord"`
	Statistics    string `yaml:"statistics"`
}

// PageConfig defines print geometry for paged output, in pixels.
type PageConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Margin   int     `yaml:"margin"`
	FontPath string  `yaml:"fontPath"`
	FontSize float64 `yaml:"fontSize"` // points
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Format string `yaml:"format"` // "markdown", "html", "pages"
	Path   string `yaml:"path"`
}

// DefaultConfig returns a Config with zero values; the formatter's own
// defaults apply for anything unset.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field lengths. Called by Load, but available to
// consumers who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.tagline", c.Document.Tagline, MaxTaglineLength},
		{"document.epigraph", c.Document.Epigraph, MaxEpigraphLength},
		{"document.ornament", c.Document.Ornament, MaxOrnamentLength},
		{"labels.contents", c.Labels.Contents, MaxLabelLength},
		{"labels.introduction", c.Labels.Introduction, MaxLabelLength},
		{"labels.conclusion", c.Labels.Conclusion, MaxLabelLength},
		{"labels.chapterFormat", c.Labels.ChapterFormat, MaxLabelLength},
		{"labels.byline", c.Labels.Byline, MaxLabelLength},
		{"labels.endTitle", c.Labels.EndTitle, MaxLabelLength},
		{"labels.endWord", c.Labels.EndWord, MaxLabelLength},
		{"labels.statistics", c.Labels.Statistics, MaxLabelLength},
		{"page.fontPath", c.Page.FontPath, MaxPathLength},
		{"output.format", c.Output.Format, MaxFormatLength},
		{"output.path", c.Output.Path, MaxPathLength},
	}
	for _, ch := range checks {
		if len(ch.value) > ch.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, ch.field, len(ch.value), ch.max)
		}
	}
	return nil
}
