// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug builds the URL slugs of blog posts and projects.
package slug

import (
	"regexp"
	"strings"
)

// MaxLength bounds generated slugs.
const MaxLength = 80

var (
	separators = regexp.MustCompile(`[\s_/]+`)
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)
	hyphens    = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from s, e.g.
// "Table-Driven Tests in Go (2026)" → "table-driven-tests-in-go-2026".
// Slugs longer than MaxLength are cut at the last hyphen that fits.
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = separators.ReplaceAllString(result, "-")
	result = disallowed.ReplaceAllString(result, "")
	result = hyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > MaxLength {
		result = result[:MaxLength]
		if i := strings.LastIndexByte(result, '-'); i > 0 {
			result = result[:i]
		}
	}
	return result
}

// Or normalizes slug, or derives one from title when slug is blank.
func Or(slug, title string) string {
	if s := Generate(slug); s != "" {
		return s
	}
	return Generate(title)
}
