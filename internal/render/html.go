package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alkhatib/warraq/layout"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// htmlTemplate wraps goldmark's fragment output in a complete HTML5
// document. The dir attribute carries the writing direction so the
// browser lays Arabic text out right to left.
const htmlTemplate = `<!DOCTYPE html>
<html dir="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// HTMLRenderer converts a composition into a standalone HTML document
// by way of a semantic markdown form fed through goldmark.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer with typographer extensions.
func NewHTMLRenderer() *HTMLRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Typographer),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &HTMLRenderer{md: md}
}

// Render emits a standalone HTML5 document. The paginated structure is
// flattened into semantic markdown first (headings become ATX
// headings, wrapped lines of one paragraph flow back together) so the
// HTML rendering is fully reflowable.
func (r *HTMLRenderer) Render(res *layout.Result, title string, dir layout.Direction) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(SemanticMarkdown(res)), &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	htmlDir := "ltr"
	if dir == layout.RightToLeft {
		htmlDir = "rtl"
	}
	return fmt.Appendf(nil, htmlTemplate, htmlDir, title, buf.String()), nil
}

// SemanticMarkdown flattens the composed pages into reflowable
// markdown: "# " headings, paragraphs re-joined from their wrapped
// lines, blank lines between them. Alignment and justification are
// presentation and do not survive into this form.
func SemanticMarkdown(res *layout.Result) string {
	var b strings.Builder
	var para []string

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		b.WriteString(strings.Join(para, " "))
		b.WriteString("\n\n")
		para = nil
	}

	for _, page := range res.Pages {
		for _, block := range page.Blocks {
			switch block := block.(type) {
			case layout.Heading:
				flushPara()
				b.WriteString("# ")
				b.WriteString(strings.Join(block.Line.Tokens, " "))
				b.WriteString("\n\n")
			case layout.TextLine:
				if block.Start {
					flushPara()
				}
				para = append(para, strings.Join(block.Line.Tokens, " "))
			}
		}
	}
	flushPara()
	return b.String()
}
