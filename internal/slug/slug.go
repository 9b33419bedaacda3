// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Joe's Coffee, Ltd." → "joes-coffee-ltd"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// WithIndex derives a unique slug by appending a running index to the
// slugified base. Content names repeat freely in bulk-generated data, so
// uniqueness comes from the disambiguator, never from the name itself.
func WithIndex(base string, i int) string {
	return fmt.Sprintf("%s-%d", Generate(base), i)
}

// WithToken derives a unique slug by appending an opaque token (for
// example a short random string) to the slugified base.
func WithToken(base, token string) string {
	return Generate(base) + "-" + Generate(token)
}
