package core

import "strings"

// Content status values shared by every collection.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

// Filter keeps items whose searchable fields contain q, case-insensitively,
// preserving relative order. Empty q keeps everything.
func Filter[T any](items []T, q string, fields func(T) []string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// RemoveAt drops index i from a media-reference slice, re-indexing the
// remainder so display order is preserved with no gaps.
func RemoveAt(refs []string, i int) []string {
	if i < 0 || i >= len(refs) {
		return refs
	}
	out := make([]string, 0, len(refs)-1)
	out = append(out, refs[:i]...)
	out = append(out, refs[i+1:]...)
	return out
}

// Removed returns the references present in old but absent from new —
// the orphans to clean up after an edit replaced them.
func Removed(old, new []string) []string {
	keep := make(map[string]struct{}, len(new))
	for _, u := range new {
		keep[u] = struct{}{}
	}
	var out []string
	for _, u := range old {
		if _, ok := keep[u]; !ok {
			out = append(out, u)
		}
	}
	return out
}

// CapRefs trims a reference list to the schema ceiling (0 = unlimited).
func CapRefs(refs []string, max int) []string {
	if max > 0 && len(refs) > max {
		return refs[:max]
	}
	return refs
}
