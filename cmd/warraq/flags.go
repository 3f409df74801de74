package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line option. Ints and strings keep
// their zero value when unset; merge checks fs.Changed before letting
// a flag override a config-file value.
type cliFlags struct {
	// Document metadata.
	title    string
	author   string
	tagline  string
	epigraph string
	ornament string

	// Input sources.
	intro       string
	chaptersDir string
	chapters    []string
	conclusion  string

	// Layout.
	lineWidth    int
	pageLines    int
	alignment    string
	indent       int
	lineSpacing  int
	chapterBreak bool
	stats        bool
	headerBefore int
	headerAfter  int
	direction    string

	// Print geometry.
	pageWidth  int
	pageHeight int
	pageMargin int
	fontPath   string
	fontSize   float64

	// Output.
	output string
	format string

	config      string
	verbose     bool
	showVersion bool
	showHelp    bool
}

// parseFlags parses args (excluding the program name) into cliFlags.
// The returned FlagSet exposes Changed for merge precedence.
func parseFlags(args []string) (*cliFlags, *flag.FlagSet, error) {
	fl := &cliFlags{}
	fs := flag.NewFlagSet("warraq", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVar(&fl.title, "title", "", "document title")
	fs.StringVar(&fl.author, "author", "", "author name")
	fs.StringVar(&fl.tagline, "tagline", "", "short descriptive line under the title")
	fs.StringVar(&fl.epigraph, "epigraph", "", "quote rendered on the title page")
	fs.StringVar(&fl.ornament, "ornament", "", "decorative glyph framing the title page")

	fs.StringVar(&fl.intro, "intro", "", "introduction text file")
	fs.StringVar(&fl.chaptersDir, "chapters-dir", "", "directory holding the 25 chapter files")
	fs.StringArrayVar(&fl.chapters, "chapter", nil, "chapter text file (repeat 25 times)")
	fs.StringVar(&fl.conclusion, "conclusion", "", "conclusion text file")

	fs.IntVar(&fl.lineWidth, "line-width", 0, "maximum line width in columns (default 84)")
	fs.IntVar(&fl.pageLines, "page-lines", 0, "text rows per page (default 40)")
	fs.StringVar(&fl.alignment, "align", "", "alignment: natural, opposite, justify")
	fs.IntVar(&fl.indent, "indent", 0, "first-line paragraph indent")
	fs.IntVar(&fl.lineSpacing, "line-spacing", 0, "line spacing multiplier (default 1)")
	fs.BoolVar(&fl.chapterBreak, "chapter-page-break", false, "start every section on a fresh page")
	fs.BoolVar(&fl.stats, "stats", false, "append the word-count statistics page")
	fs.IntVar(&fl.headerBefore, "header-spacing-before", 0, "blank rows above section headings")
	fs.IntVar(&fl.headerAfter, "header-spacing-after", 0, "blank rows below section headings")
	fs.StringVar(&fl.direction, "direction", "", "writing direction: ltr or rtl")

	fs.IntVar(&fl.pageWidth, "page-width", 0, "page width in pixels (paged output)")
	fs.IntVar(&fl.pageHeight, "page-height", 0, "page height in pixels (paged output)")
	fs.IntVar(&fl.pageMargin, "page-margin", 0, "page margin in pixels (paged output)")
	fs.StringVar(&fl.fontPath, "font", "", "TTF font file for paged output")
	fs.Float64Var(&fl.fontSize, "font-size", 0, "font size in points for paged output")

	fs.StringVarP(&fl.output, "output", "o", "", "output file (or directory for paged output)")
	fs.StringVarP(&fl.format, "format", "f", "", "output format: markdown, html, pages")

	fs.StringVarP(&fl.config, "config", "c", "", "YAML config file")
	fs.BoolVarP(&fl.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&fl.showVersion, "version", false, "print version and exit")
	fs.BoolVarP(&fl.showHelp, "help", "h", false, "show help")

	fs.Usage = func() {} // run prints usage itself
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return fl, fs, nil
}
