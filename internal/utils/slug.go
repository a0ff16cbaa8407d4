package utils

import (
	"regexp"
	"strings"
)

var (
	// slugStrip matches everything that is not a word character, a space or
	// a hyphen.  Hyphens survive so that feeding a slug back through
	// Slugify returns it unchanged.
	slugStrip = regexp.MustCompile(`[^\w -]+`)
	// slugSpaces matches runs of spaces, each collapsed to one hyphen.
	slugSpaces = regexp.MustCompile(` +`)
)

// Slugify derives a URL-safe slug from a title: lower-case, strip
// punctuation, collapse space runs to single hyphens.  The derivation is
// deterministic and idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
