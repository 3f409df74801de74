package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	flag "github.com/spf13/pflag"

	warraq "github.com/alkhatib/warraq"
	"github.com/alkhatib/warraq/internal/config"
	"github.com/alkhatib/warraq/internal/fileutil"
)

// Sentinel errors for CLI input handling.
var (
	ErrMissingInput    = errors.New("intro, chapters and conclusion are required")
	ErrChapterSources  = errors.New("--chapters-dir and --chapter are mutually exclusive")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrMissingMetadata = errors.New("title and author are required")
)

// Output format names.
const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
	formatPages    = "pages"
)

const defaultOutputStem = "formatted_novel"

// run is the CLI entry point behind main: parse flags, merge config,
// read the section files, format, write.
func run(args []string, stdout, stderr io.Writer) error {
	fl, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	if fl.showHelp {
		printUsage(stdout)
		return nil
	}
	if fl.showVersion {
		fmt.Fprintf(stdout, "warraq %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if fl.config != "" {
		cfg, err = config.Load(fl.config)
		if err != nil {
			return err
		}
	}

	set := buildSettings(fl, fs, cfg)
	if set.title == "" || set.author == "" {
		return ErrMissingMetadata
	}

	doc, err := buildDocument(fl, set)
	if err != nil {
		return err
	}

	if fl.verbose {
		fmt.Fprintf(stderr, "Formatting %q (%s, %s)\n", set.title, set.format, set.layout.Direction)
	}

	svc := warraq.New()
	switch set.format {
	case formatMarkdown:
		out, err := svc.FormatMarkdown(doc, set.layout)
		if err != nil {
			return err
		}
		return writeFile(set.output, out, fl.verbose, stderr)
	case formatHTML:
		out, err := svc.FormatHTML(doc, set.layout)
		if err != nil {
			return err
		}
		return writeFile(set.output, out, fl.verbose, stderr)
	case formatPages:
		imgs, err := svc.FormatPages(doc, set.layout)
		if err != nil {
			return err
		}
		return writePages(set.output, imgs, fl.verbose, stderr)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, set.format)
	}
}

// settings is the merged view of flags, config file and defaults.
type settings struct {
	title    string
	author   string
	tagline  string
	epigraph string
	ornament string
	layout   warraq.Layout
	format   string
	output   string
}

// buildSettings merges with precedence: explicitly set flag > config
// file > built-in default.
func buildSettings(fl *cliFlags, fs *flag.FlagSet, cfg *config.Config) settings {
	pickStr := func(name, flagVal, cfgVal string) string {
		if fs.Changed(name) || cfgVal == "" {
			return flagVal
		}
		return cfgVal
	}
	pickInt := func(name string, flagVal, cfgVal int) int {
		if fs.Changed(name) || cfgVal == 0 {
			return flagVal
		}
		return cfgVal
	}
	pickBool := func(name string, flagVal, cfgVal bool) bool {
		if fs.Changed(name) {
			return flagVal
		}
		return cfgVal
	}

	set := settings{
		title:    pickStr("title", fl.title, cfg.Document.Title),
		author:   pickStr("author", fl.author, cfg.Document.Author),
		tagline:  pickStr("tagline", fl.tagline, cfg.Document.Tagline),
		epigraph: pickStr("epigraph", fl.epigraph, cfg.Document.Epigraph),
		ornament: pickStr("ornament", fl.ornament, cfg.Document.Ornament),
		format:   pickStr("format", fl.format, cfg.Output.Format),
		output:   pickStr("output", fl.output, cfg.Output.Path),
	}

	set.layout = warraq.Layout{
		LineWidth:           pickInt("line-width", fl.lineWidth, cfg.Layout.LineWidth),
		PageLines:           pickInt("page-lines", fl.pageLines, cfg.Layout.PageLines),
		Alignment:           pickStr("align", fl.alignment, cfg.Layout.Alignment),
		ParagraphIndent:     pickInt("indent", fl.indent, cfg.Layout.ParagraphIndent),
		LineSpacing:         pickInt("line-spacing", fl.lineSpacing, cfg.Layout.LineSpacing),
		ChapterPageBreak:    pickBool("chapter-page-break", fl.chapterBreak, cfg.Layout.ChapterPageBreak),
		IncludeStats:        pickBool("stats", fl.stats, cfg.Layout.IncludeStats),
		HeaderSpacingBefore: pickInt("header-spacing-before", fl.headerBefore, cfg.Layout.HeaderSpacingBefore),
		HeaderSpacingAfter:  pickInt("header-spacing-after", fl.headerAfter, cfg.Layout.HeaderSpacingAfter),
		Direction:           pickStr("direction", fl.direction, cfg.Layout.Direction),
		Labels: warraq.Labels{
			Contents:      cfg.Labels.Contents,
			Introduction:  cfg.Labels.Introduction,
			Conclusion:    cfg.Labels.Conclusion,
			ChapterFormat: cfg.Labels.ChapterFormat,
			Byline:        cfg.Labels.Byline,
			EndTitle:      cfg.Labels.EndTitle,
			EndWord:       cfg.Labels.EndWord,
			Statistics:    cfg.Labels.Statistics,
		},
	}

	if set.format == "" {
		set.format = formatMarkdown
	}
	if set.output == "" {
		switch set.format {
		case formatHTML:
			set.output = defaultOutputStem + ".html"
		case formatPages:
			set.output = defaultOutputStem
		default:
			set.output = defaultOutputStem + ".md"
		}
	}

	if set.format == formatPages {
		page := warraq.DefaultPageSettings()
		if w := pickInt("page-width", fl.pageWidth, cfg.Page.Width); w != 0 {
			page.Width = w
		}
		if h := pickInt("page-height", fl.pageHeight, cfg.Page.Height); h != 0 {
			page.Height = h
		}
		if m := pickInt("page-margin", fl.pageMargin, cfg.Page.Margin); m != 0 {
			page.Margin = m
		}
		page.FontPath = pickStr("font", fl.fontPath, cfg.Page.FontPath)
		if fs.Changed("font-size") || cfg.Page.FontSize == 0 {
			page.FontSize = fl.fontSize
		} else {
			page.FontSize = cfg.Page.FontSize
		}
		set.layout.Page = page
	}
	return set
}

// buildDocument reads the section files and constructs the validated
// document. Chapter files come from a directory (naturally sorted) or
// from repeated --chapter flags, never both.
func buildDocument(fl *cliFlags, set settings) (*warraq.Document, error) {
	if fl.intro == "" || fl.conclusion == "" {
		return nil, ErrMissingInput
	}
	if fl.chaptersDir != "" && len(fl.chapters) > 0 {
		return nil, ErrChapterSources
	}

	var chapterPaths []string
	if fl.chaptersDir != "" {
		paths, err := fileutil.DiscoverChapters(fl.chaptersDir)
		if err != nil {
			return nil, err
		}
		chapterPaths = paths
	} else {
		if len(fl.chapters) == 0 {
			return nil, ErrMissingInput
		}
		chapterPaths = append(chapterPaths, fl.chapters...)
		fileutil.SortNatural(chapterPaths)
	}
	if err := fileutil.CheckFiles(chapterPaths); err != nil {
		return nil, err
	}

	intro, err := fileutil.ReadSection(fl.intro)
	if err != nil {
		return nil, err
	}
	conclusion, err := fileutil.ReadSection(fl.conclusion)
	if err != nil {
		return nil, err
	}
	chapters := make([]string, 0, len(chapterPaths))
	for _, p := range chapterPaths {
		text, err := fileutil.ReadSection(p)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, text)
	}

	var opts []warraq.DocumentOption
	if set.tagline != "" {
		opts = append(opts, warraq.WithTagline(set.tagline))
	}
	if set.epigraph != "" {
		opts = append(opts, warraq.WithEpigraph(set.epigraph))
	}
	if set.ornament != "" {
		opts = append(opts, warraq.WithOrnament(set.ornament))
	}
	return warraq.NewDocument(set.title, set.author, intro, chapters, conclusion, opts...)
}

func writeFile(path string, data []byte, verbose bool, stderr io.Writer) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if verbose {
		fmt.Fprintf(stderr, "Wrote %s (%d bytes)\n", path, len(data))
	}
	return nil
}

// writePages writes one PNG per page into dir as page-001.png and so
// on, creating the directory when needed. Pages are independent, so
// encoding fans out over a bounded worker pool.
func writePages(dir string, imgs []*image.RGBA, verbose bool, stderr io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	jobs := make(chan int)
	errs := make(chan error, len(imgs))
	var wg sync.WaitGroup
	for n, workers := 0, encodeWorkers(len(imgs)); n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path := filepath.Join(dir, fmt.Sprintf("page-%03d.png", i+1))
				errs <- encodePage(path, imgs[i])
			}
		}()
	}
	for i := range imgs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(stderr, "Wrote %d pages to %s\n", len(imgs), dir)
	}
	return nil
}

// encodeWorkers sizes the PNG encoding pool: one worker per CPU,
// capped at the page count.
func encodeWorkers(pages int) int {
	n := runtime.NumCPU()
	if n > pages {
		n = pages
	}
	if n < 1 {
		n = 1
	}
	return n
}

func encodePage(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
