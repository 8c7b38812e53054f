package assistant

import (
	"regexp"
	"strings"
)

var citationRe = regexp.MustCompile(`\[\d+\](?:\[\d+\])*`)

// Sanitize strips the markup the completion API tends to emit: bold
// asterisks, numbered citation markers like [1][2], and hash symbols.
func Sanitize(text string) string {
	cleaned := strings.ReplaceAll(text, "**", "")
	cleaned = citationRe.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, "#", "")
	return cleaned
}
