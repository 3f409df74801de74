package render

import (
	"strings"
	"testing"

	"github.com/alkhatib/warraq/layout"
)

func TestSemanticMarkdownRejoinsParagraphs(t *testing.T) {
	res := testResult(t, layout.AlignJustify)
	md := SemanticMarkdown(res)

	if !strings.Contains(md, "# Introduction") {
		t.Error("missing heading")
	}
	// The wrapped lines of the paragraph flow back into one.
	want := "the quick brown fox jumps over the lazy dog once more"
	if !strings.Contains(md, want) {
		t.Errorf("paragraph not rejoined:\n%s", md)
	}
	// Justification gaps must not leak double spaces into the text.
	if strings.Contains(md, "  ") {
		t.Error("semantic markdown contains doubled spaces")
	}
}

func TestSemanticMarkdownKeepsParagraphsApart(t *testing.T) {
	front := layout.FrontMatter{Title: "T", Byline: "by A"}
	sections := []layout.Section{{
		Key:        "chapter-1",
		Title:      "One",
		Paragraphs: []string{"first paragraph here", "second paragraph here"},
	}}
	res, err := layout.Compose(front, sections, layout.Config{
		Build: layout.BuildConfig{
			Reflow:      layout.ReflowConfig{Budget: 10},
			LineSpacing: 2,
			HeaderAfter: 1,
		},
		Capacity: 60,
		EndTitle: "End",
		EndWord:  "fin",
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	md := SemanticMarkdown(res)
	if !strings.Contains(md, "first paragraph here\n\nsecond paragraph here") {
		t.Errorf("paragraphs merged or split wrongly:\n%s", md)
	}
}

func TestRenderHTMLDocument(t *testing.T) {
	res := testResult(t, layout.AlignNatural)

	out, err := NewHTMLRenderer().Render(res, "The Lighthouse", layout.LeftToRight)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html dir="ltr">`,
		"<title>The Lighthouse</title>",
		"Introduction</h1>",
		"<p>the quick brown fox",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderHTMLDirection(t *testing.T) {
	res := testResult(t, layout.AlignNatural)

	out, err := NewHTMLRenderer().Render(res, "t", layout.RightToLeft)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), `<html dir="rtl">`) {
		t.Error("rtl direction not carried into the document")
	}
}
