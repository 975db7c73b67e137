package content

import (
	"fmt"
	"strings"
	"time"
)

// defaultAuthor is the literal fallback for posts without an author.
const defaultAuthor = "Nepal AI Lab"

// excerptLength is the number of leading content characters used when a
// post carries no excerpt.
const excerptLength = 150

// wordsPerMinute is the reading speed used for the read-time estimate.
const wordsPerMinute = 200

// readTime renders the estimated reading time for a content body:
// word count divided by wordsPerMinute, rounded up, minimum one minute.
func readTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// excerptOf returns the explicit excerpt, or the first excerptLength
// characters of the content when the excerpt is missing.
func excerptOf(excerpt, content string) string {
	if excerpt != "" {
		return excerpt
	}
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength])
}

// firstTag returns the first comma-separated tag, trimmed, or the given
// default when the tag list is empty.
func firstTag(tags, def string) string {
	first, _, _ := strings.Cut(tags, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return def
	}
	return first
}

// splitList splits a comma-separated field into trimmed non-empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// formatDate renders a backend timestamp as a long display date. Values
// that do not parse as RFC 3339 are passed through unchanged.
func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Some list endpoints serve bare dates.
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return raw
		}
	}
	return t.Format("January 2, 2006")
}
