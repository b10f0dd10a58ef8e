// Package util provides small helpers shared across services.
package util

import "github.com/gosimple/slug"

// Slugify derives a URL-safe slug from a post title: lowercase,
// punctuation stripped, whitespace collapsed to single hyphens.
// "Hello, World!" becomes "hello-world".
func Slugify(title string) string {
	return slug.Make(title)
}
