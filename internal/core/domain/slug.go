package domain

import (
	"regexp"
	"strings"
)

// =============================================================================
// Slug Generation
// =============================================================================

// turkishReplacer maps the six Turkish accented letters to their ASCII
// counterparts. Applied after lowercasing, so a single lowercase table covers
// both cases. Other accented letters are not transliterated; they are dropped
// by the non-word strip below.
var turkishReplacer = strings.NewReplacer(
	"ğ", "g",
	"ü", "u",
	"ş", "s",
	"ı", "i",
	"ö", "o",
	"ç", "c",
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonWordChars   = regexp.MustCompile(`[^\w-]+`)
	hyphenRuns     = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a display name to a URL-safe slug.
//
// The transformation, in order:
//  1. Lowercase and trim surrounding whitespace
//  2. Transliterate Turkish letters (ğ→g, ü→u, ş→s, ı→i, ö→o, ç→c)
//  3. Collapse whitespace runs to a single hyphen
//  4. Drop everything that is not a word character or hyphen
//  5. Collapse hyphen runs and trim leading/trailing hyphens
//
// The result can be empty when the input contains no usable characters;
// callers must reject empty slugs before persisting.
//
// This is a pure function with no side effects.
//
// Example:
//
//	Slugify("Şişli Çağlayan")          // returns "sisli-caglayan"
//	Slugify("40x40 Kare Beton Kalıbı") // returns "40x40-kare-beton-kalibi"
//	Slugify("  A    B--C  ")           // returns "a-b-c"
func Slugify(name string) string {
	slug := strings.TrimSpace(strings.ToLower(name))
	slug = turkishReplacer.Replace(slug)
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = nonWordChars.ReplaceAllString(slug, "")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
