package blog

import (
	"regexp"
	"strings"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a post title into a URL-safe slug.
func Slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	return strings.Trim(slugInvalid.ReplaceAllString(lower, "-"), "-")
}
