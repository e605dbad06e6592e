package catalog

import "strings"

// DietaryTags is the fixed vocabulary of dietary codes, in display order.
var DietaryTags = []string{"VG", "GF", "DF", "V", "Nuts"}

// IsDietaryTag reports whether tag is spelled exactly as a vocabulary entry.
func IsDietaryTag(tag string) bool {
	for _, t := range DietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}

// CanonicalTag maps a code to its vocabulary spelling when it matches one
// case-insensitively ("NUTS" -> "Nuts"); other codes are returned upper-cased.
func CanonicalTag(code string) string {
	for _, t := range DietaryTags {
		if strings.EqualFold(t, code) {
			return t
		}
	}
	return strings.ToUpper(code)
}

// NormalizeTags returns tags as a set of canonical codes: trimmed, empty
// entries dropped, spelled as CanonicalTag does, duplicates removed and
// first-seen order kept. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tag = CanonicalTag(tag)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ParseTagList splits a comma separated list ("vg, gf") into canonical codes.
func ParseTagList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		codes = append(codes, p)
	}
	return NormalizeTags(codes)
}
