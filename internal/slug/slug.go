// Package slug derives the canonical URL identifiers used for locations,
// specializations and businesses. The sitemap and every route depend on
// this exact output, so the rules must not drift between callers.
package slug

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases name, spells "&" as "and", collapses every run of
// characters outside [a-z0-9] into a single hyphen and trims hyphens from
// both ends. It is total and idempotent.
//
// Example: "Fish & Chips Ltd." -> "fish-and-chips-ltd"
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ToName turns a path segment back into the spaced form stored as a
// display name, e.g. "north-london" -> "north london".
func ToName(segment string) string {
	return strings.ReplaceAll(segment, "-", " ")
}
