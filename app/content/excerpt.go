package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Excerpt derives a short markup-free summary from assembled HTML. Truncation
// is rune-based and prefers the last word boundary past 70% of the limit;
// "..." is appended whenever anything was cut.
func Excerpt(html string, maxLength int) string {
	if html == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = 200
	}

	text := stripMarkup(html)

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	truncated := runes[:maxLength]

	lastSpace := -1
	for i := len(truncated) - 1; i >= 0; i-- {
		if truncated[i] == ' ' {
			lastSpace = i
			break
		}
	}

	if float64(lastSpace) > float64(maxLength)*0.7 {
		return string(truncated[:lastSpace]) + "..."
	}

	return string(truncated) + "..."
}

func stripMarkup(html string) string {
	text := html

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		text = doc.Text()
	}

	return strings.Join(strings.Fields(text), " ")
}
