// Package normalize cleans raw section text into a canonical paragraph
// stream: diacritics stripped, whitespace collapsed, punctuation
// variants unified. The transform is pure; it never merges or splits
// text across paragraph boundaries except at whitespace.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacritics covers the optional combining marks this formatter strips:
// Arabic harakat, superscript alef, Quranic annotation marks and the
// tatweel stretch character. Latin accents are base-letter information
// and stay untouched.
var diacritics = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061A, Stride: 1}, // Arabic signs
		{Lo: 0x0640, Hi: 0x0640, Stride: 1}, // tatweel
		{Lo: 0x064B, Hi: 0x065F, Stride: 1}, // fathatan..wavy hamza below
		{Lo: 0x0670, Hi: 0x0670, Stride: 1}, // superscript alef
		{Lo: 0x06D6, Hi: 0x06DC, Stride: 1}, // Quranic annotations
		{Lo: 0x06DF, Hi: 0x06E8, Stride: 1},
		{Lo: 0x06EA, Hi: 0x06ED, Stride: 1},
	},
}

// stripMarks decomposes, removes the optional marks, and recomposes so
// base letters survive unchanged.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(diacritics)), norm.NFC)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankLines      = regexp.MustCompile(`\n[ \t]*\n[\s]*`)
	crlf            = regexp.MustCompile(`\r\n?`)
	spaceBeforeStop = regexp.MustCompile(`[ \t]+([.,;:!?…؟،؛])`)
)

// Punctuation maps variant punctuation runes to their canonical form,
// one per punctuation class.
type Punctuation map[rune]rune

// ArabicPunctuation canonicalizes ASCII question marks, commas and
// semicolons to their Arabic forms for right-to-left documents.
var ArabicPunctuation = Punctuation{
	'?': '؟',
	',': '،',
	';': '؛',
}

// LatinPunctuation canonicalizes Arabic punctuation variants to ASCII
// for left-to-right documents.
var LatinPunctuation = Punctuation{
	'؟': '?',
	'،': ',',
	'؛': ';',
}

// Paragraphs splits raw section text into canonical paragraphs.
// Paragraph boundaries are runs of one or more blank lines; leading
// and trailing blank lines are discarded. Empty input yields nil.
func Paragraphs(raw string, punct Punctuation) []string {
	raw = crlf.ReplaceAllString(raw, "\n")
	var out []string
	for _, chunk := range blankLines.Split(raw, -1) {
		p := Text(chunk, punct)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Text canonicalizes one paragraph: strips optional diacritics,
// collapses horizontal whitespace runs to a single space, unifies
// punctuation variants, and trims stray whitespace before closing
// punctuation.
func Text(s string, punct Punctuation) string {
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	s = strings.ReplaceAll(s, "\n", " ")
	s = horizontalSpace.ReplaceAllString(s, " ")
	if len(punct) > 0 {
		s = strings.Map(func(r rune) rune {
			if canon, ok := punct[r]; ok {
				return canon
			}
			return r
		}, s)
	}
	s = spaceBeforeStop.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
