// Package warraq assembles a fixed-structure novel (title page, table
// of contents, an introduction, exactly 25 numbered chapters, and a
// conclusion) into a cleanly formatted document.
//
// # Quick Start
//
// Build a validated document and format it:
//
//	doc, err := warraq.NewDocument(title, author, intro, chapters, conclusion,
//	    warraq.WithTagline("A story of the sea"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := warraq.New()
//	out, err := svc.FormatMarkdown(doc, warraq.DefaultLayout())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("novel.md", out, 0644)
//
// Document construction fails fast: anything other than exactly 25
// chapters, or an empty required section, is rejected before any
// layout work happens.
//
// # Formatting Pipeline
//
// Formatting follows these stages:
//
//  1. Normalization (diacritics, whitespace, punctuation) per section
//  2. Greedy reflow into width-bounded lines (natural, opposite-flush
//     or justified alignment, optional first-line indent)
//  3. Block building (headings, text lines, spacers, forced breaks)
//  4. Pagination with orphan-heading protection
//  5. Table-of-contents resolution against the final page numbers
//
// The engine itself lives in the layout package and is pure: no I/O,
// no shared state, identical inputs produce identical pages.
//
// # Output Forms
//
// Three renderings share one composition:
//
//	out, _ := svc.FormatMarkdown(doc, cfg) // fixed-width text document
//	out, _ := svc.FormatHTML(doc, cfg)     // standalone reflowable HTML
//	imgs, _ := svc.FormatPages(doc, cfg)   // print-ready raster pages
//
// Paged output measures tokens with real font metrics (TrueType, 26.6
// fixed point); text output measures in character columns. Width,
// alignment, indent, line spacing, per-chapter page breaks, and the
// optional statistics page are all carried by [Layout].
//
// # Right-to-Left Documents
//
// Direction "rtl" switches the default labels to the Arabic set,
// canonicalizes punctuation to the Arabic forms, and mirrors token
// placement in paged output. Token order is always logical; glyph
// shaping is out of scope.
package warraq
