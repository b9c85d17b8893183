package domain

import (
	"fmt"
	"strings"
	"time"
)

// ruleLine is the blank writing line printed under each sample word
const ruleLine = "____________________________________________"

// WorksheetText renders words as a plain-text practice sheet: each sample
// word followed by linesPerWord blank rule lines.
func WorksheetText(words []string, linesPerWord int, includeNameDate bool, date time.Time) string {
	linesPerWord = max(1, linesPerWord)

	var b strings.Builder
	if includeNameDate {
		fmt.Fprintf(&b, "Name: ____________________   Date: %s\n\n", date.Format("2006/01/02"))
	}
	for i, w := range words {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, w)
		for range linesPerWord {
			b.WriteString("   ")
			b.WriteString(ruleLine)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// WorksheetMarkdown renders a practice sheet as markdown, used for terminal
// previews.
func WorksheetMarkdown(title string, words []string, linesPerWord int, includeNameDate bool, date time.Time) string {
	linesPerWord = max(1, linesPerWord)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if includeNameDate {
		fmt.Fprintf(&b, "**Name:** ____________  **Date:** %s\n\n", date.Format("2006/01/02"))
	}
	for i, w := range words {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, w)
		for range linesPerWord {
			b.WriteString("---\n\n")
		}
	}
	return b.String()
}
