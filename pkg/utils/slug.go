package utils

import (
	"regexp"
	"strings"
)

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display title into a URL-safe slug:
// "10 Hashtag Trends (2026)" -> "10-hashtag-trends-2026".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStripPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
