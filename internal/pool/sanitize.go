package pool

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from user-supplied display text and trims
// surrounding whitespace. Applied to every free-text field before it is
// persisted: pool names, participant names, prop questions and options.
func SanitizeText(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// SanitizeAll sanitizes a list of strings in place and returns it.
func SanitizeAll(items []string) []string {
	for i, s := range items {
		items[i] = SanitizeText(s)
	}
	return items
}
