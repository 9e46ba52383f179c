package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// Slugify lowercases the input, collapses every run of non-alphanumeric
// characters into a single hyphen and trims leading/trailing hyphens. It is
// the canonical identifier transform: slugs, code index keys and lookup
// queries all pass through it, so any spelling of the same identifier lands
// on the same key.
func Slugify(input string) string {
	s := strings.ToLower(input)
	s = reNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugJoin slugifies the non-empty parts joined with single separators.
// Empty parts contribute nothing, so no doubled hyphens appear.
func SlugJoin(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return Slugify(strings.Join(kept, " "))
}

// NormalizeKey reduces a record key to its comparison form: lowercase, runs
// of non-alphanumerics collapsed to a single underscore, outer underscores
// trimmed. "Cat. No", "cat_no" and "CatNo " all compare equal to "cat_no"
// modulo the dot-split, which is what the fallback key lists rely on.
func NormalizeKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	s = reNonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeSpaces collapses interior whitespace and trims.
func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// Stringify renders a raw record value as display text. Supplier JSON gives
// float64 for every number, so integral floats print without the fraction.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
