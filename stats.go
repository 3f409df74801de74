package warraq

import (
	"fmt"
	"strings"
)

// SectionStat is the computed word count for one section.
type SectionStat struct {
	Key   string
	Title string
	Words int
}

// wordCount counts whitespace-separated tokens across canonical
// paragraphs.
func wordCount(paragraphs []string) int {
	n := 0
	for _, p := range paragraphs {
		n += len(strings.Fields(p))
	}
	return n
}

// statsParagraphs renders the statistics page body: one row per
// section plus a total row, each its own paragraph so every row stays
// on its own line.
func statsParagraphs(stats []SectionStat, labels Labels) []string {
	out := make([]string, 0, len(stats)+1)
	total := 0
	for _, st := range stats {
		out = append(out, fmt.Sprintf(labels.StatFormat, st.Title, st.Words))
		total += st.Words
	}
	out = append(out, fmt.Sprintf(labels.TotalFormat, total))
	return out
}
