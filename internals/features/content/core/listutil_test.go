package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCaseInsensitiveKeepsOrder(t *testing.T) {
	items := []string{"Village Fair", "ramadan drive", "School RAMadan event", "Harvest"}
	got := Filter(items, "ramadan", func(s string) []string { return []string{s} })
	assert.Equal(t, []string{"ramadan drive", "School RAMadan event"}, got)
}

func TestFilterEmptyQueryKeepsAll(t *testing.T) {
	items := []string{"a", "b"}
	assert.Equal(t, items, Filter(items, "  ", func(s string) []string { return []string{s} }))
}

func TestFilterMatchesAnyField(t *testing.T) {
	type rec struct{ title, desc string }
	items := []rec{{"plain", "contains NEEDLE here"}, {"needle title", "plain"}, {"nope", "nope"}}
	got := Filter(items, "needle", func(r rec) []string { return []string{r.title, r.desc} })
	assert.Len(t, got, 2)
}

func TestRemoveAt(t *testing.T) {
	refs := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "c"}, RemoveAt(refs, 1))
	assert.Equal(t, []string{"b", "c"}, RemoveAt(refs, 0))
	assert.Equal(t, refs, RemoveAt(refs, 3))
	assert.Equal(t, refs, RemoveAt(refs, -1))
}

func TestRemoved(t *testing.T) {
	old := []string{"u1", "u2", "u3"}
	assert.Equal(t, []string{"u2"}, Removed(old, []string{"u1", "u3"}))
	assert.Empty(t, Removed(old, old))
	assert.Equal(t, old, Removed(old, nil))
}

func TestCapRefs(t *testing.T) {
	refs := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, CapRefs(refs, 2))
	assert.Equal(t, refs, CapRefs(refs, 0))
	assert.Equal(t, refs, CapRefs(refs, 5))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusDraft))
	assert.True(t, ValidStatus(StatusPublished))
	assert.False(t, ValidStatus("archived"))
}
