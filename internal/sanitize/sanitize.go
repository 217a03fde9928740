// Package sanitize cleans markup out of provider-supplied text.
package sanitize

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML tags and collapses runs of whitespace.
func StripTags(html string) string {
	text := tagRe.ReplaceAllString(html, " ")
	return strings.Join(strings.Fields(text), " ")
}

// entityReplacer handles the entities that show up in job board feeds.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// DecodeEntities decodes common HTML entities.
func DecodeEntities(text string) string {
	return entityReplacer.Replace(text)
}

// Truncate cuts s to at most max bytes. Descriptions from sources are ASCII
// after tag stripping often enough that a rune-safe cut is still applied.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Description runs the full cleanup applied to source descriptions:
// strip tags, decode entities, collapse whitespace, cap length.
func Description(html string, max int) string {
	return Truncate(StripTags(DecodeEntities(html)), max)
}
