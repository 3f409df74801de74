package warraq_test

import (
	"fmt"
	"strings"

	warraq "github.com/alkhatib/warraq"
)

// Example formats a complete document and inspects the resolved
// composition.
func Example() {
	chapters := make([]string, warraq.RequiredChapters)
	for i := range chapters {
		chapters[i] = fmt.Sprintf("This is the whole of chapter %d.", i+1)
	}

	doc, err := warraq.NewDocument("A Small Novel", "Anonymous",
		"A few words to open with.",
		chapters,
		"A few words to close with.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	comp, err := warraq.New().Compose(doc, warraq.DefaultLayout())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("contents entries:", len(comp.Result.Toc))
	fmt.Println("chapter 1 resolved:", comp.Result.Starts["chapter-1"] > 0)
	// Output:
	// contents entries: 27
	// chapter 1 resolved: true
}

// Example_markdown renders the fixed-width text form.
func Example_markdown() {
	chapters := make([]string, warraq.RequiredChapters)
	for i := range chapters {
		chapters[i] = fmt.Sprintf("Chapter %d, briefly.", i+1)
	}

	doc, err := warraq.NewDocument("A Small Novel", "Anonymous",
		"An opening.", chapters, "A closing.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := warraq.New().FormatMarkdown(doc, warraq.DefaultLayout())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("has contents:", strings.Contains(string(out), "Table of Contents"))
	fmt.Println("has ending:", strings.Contains(string(out), "The End"))
	// Output:
	// has contents: true
	// has ending: true
}
