package domain

import (
	"strings"
)

// MaxSubtags is the largest number of hyphen-separated subtags a locale tag may carry.
const MaxSubtags = 3

// CanonicalTag is a normalized locale tag: first subtag lowercase, the others
// uppercase. Only NormalizeTag produces non-zero values.
type CanonicalTag struct {
	value string
}

// NormalizeTag converts a raw, filename-derived locale string into its
// canonical form.
//
// It is a simplified subset of BCP 47 casing: the primary language is
// lowercased and every following subtag (region, script, variant) is
// uppercased. A raw string with no subtags yields the zero tag and a nil
// error; callers treat that as "not a locale file".
func NormalizeTag(raw string) (CanonicalTag, error) {
	var parts []string
	for _, p := range strings.Split(raw, "-") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return CanonicalTag{}, nil
	}
	if len(parts) > MaxSubtags {
		return CanonicalTag{}, &TagFormatError{Tag: raw, Segments: len(parts)}
	}
	for i, p := range parts {
		if i == 0 {
			parts[i] = strings.ToLower(p)
		} else {
			parts[i] = strings.ToUpper(p)
		}
	}
	return CanonicalTag{value: strings.Join(parts, "-")}, nil
}

// String returns the tag text, e.g. "en-IN".
func (t CanonicalTag) String() string { return t.value }

// IsZero reports whether t is the empty tag returned for skipped entries.
func (t CanonicalTag) IsZero() bool { return t.value == "" }

// Ident returns the Go identifier naming the tag's generated table:
// hyphens become underscores and the result is uppercased ("en-IN" -> "EN_IN").
func (t CanonicalTag) Ident() string {
	return strings.ToUpper(strings.ReplaceAll(t.value, "-", "_"))
}
