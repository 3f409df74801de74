package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: warraq [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format a 25-chapter novel into markdown, HTML, or print-ready pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>             Document title (required)")
	fmt.Fprintln(w, "      --author <s>            Author name (required)")
	fmt.Fprintln(w, "      --tagline <s>           Short line under the title")
	fmt.Fprintln(w, "      --epigraph <s>          Quote on the title page")
	fmt.Fprintln(w, "      --ornament <s>          Title page ornament glyph")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "      --intro <path>          Introduction text file (required)")
	fmt.Fprintln(w, "      --chapters-dir <dir>    Directory with the 25 chapter files")
	fmt.Fprintln(w, "      --chapter <path>        One chapter file (repeat 25 times)")
	fmt.Fprintln(w, "      --conclusion <path>     Conclusion text file (required)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --line-width <n>        Maximum line width in columns (default 84)")
	fmt.Fprintln(w, "      --page-lines <n>        Text rows per page (default 40)")
	fmt.Fprintln(w, "      --align <s>             natural, opposite, or justify")
	fmt.Fprintln(w, "      --indent <n>            First-line paragraph indent")
	fmt.Fprintln(w, "      --line-spacing <n>      Line spacing multiplier (default 1)")
	fmt.Fprintln(w, "      --chapter-page-break    Start every section on a fresh page")
	fmt.Fprintln(w, "      --stats                 Append the word-count statistics page")
	fmt.Fprintln(w, "      --direction <s>         ltr or rtl")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paged output:")
	fmt.Fprintln(w, "      --page-width <n>        Page width in pixels")
	fmt.Fprintln(w, "      --page-height <n>       Page height in pixels")
	fmt.Fprintln(w, "      --page-margin <n>       Page margin in pixels")
	fmt.Fprintln(w, "      --font <path>           TTF font file")
	fmt.Fprintln(w, "      --font-size <f>         Font size in points")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>            markdown, html, or pages")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory")
	fmt.Fprintln(w, "  -c, --config <path>         YAML config file")
	fmt.Fprintln(w, "  -v, --verbose               Log progress to stderr")
	fmt.Fprintln(w, "      --version               Print version and exit")
}
