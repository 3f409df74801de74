package warraq

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWordCount(t *testing.T) {
	cases := []struct {
		name       string
		paragraphs []string
		want       int
	}{
		{"empty", nil, 0},
		{"single paragraph", []string{"three little words"}, 3},
		{"across paragraphs", []string{"one two", "three", "four five six"}, 6},
		{"arabic text", []string{"كان يا ما كان"}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wordCount(tc.paragraphs); got != tc.want {
				t.Errorf("wordCount() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStatsParagraphs(t *testing.T) {
	stats := []SectionStat{
		{Key: "introduction", Title: "Introduction", Words: 120},
		{Key: "chapter-1", Title: "Chapter 1", Words: 950},
	}
	got := statsParagraphs(stats, DefaultLabels())
	want := []string{
		"Introduction — 120 words",
		"Chapter 1 — 950 words",
		"Total — 1070 words",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statsParagraphs() mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsParagraphsArabic(t *testing.T) {
	stats := []SectionStat{{Key: "chapter-1", Title: "الفصل 1", Words: 40}}
	got := statsParagraphs(stats, ArabicLabels())
	if len(got) != 2 {
		t.Fatalf("statsParagraphs() = %d rows, want 2", len(got))
	}
	if got[1] != "المجموع — 40 كلمة" {
		t.Errorf("total row = %q", got[1])
	}
}
