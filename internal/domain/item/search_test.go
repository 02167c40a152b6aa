package item

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testItems() []Item {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []Item{
		{ID: "cotton-roll-kg", Name: "Cotton Roll", Unit: "kg", Rate: decimal.RequireFromString("120"), Tags: []string{"fabric"}, UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "steel-rod-meter", Name: "Steel Rod", Unit: "meter", Rate: decimal.RequireFromString("80"), Tags: []string{"metal"}, UpdatedAt: base.Add(3 * time.Hour)},
		{ID: "button-piece", Name: "Button", Unit: "piece", Rate: decimal.RequireFromString("2.5"), Tags: []string{"fabric", "small"}, UpdatedAt: base.Add(1 * time.Hour)},
	}
}

func names(items []Item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestSearchFilters(t *testing.T) {
	items := testItems()

	t.Run("query matches name case-insensitively", func(t *testing.T) {
		got := Search(items, SearchParams{Query: "cotton"})
		assert.Equal(t, []string{"Cotton Roll"}, names(got))
	})

	t.Run("query matches tags", func(t *testing.T) {
		got := Search(items, SearchParams{Query: "fabric"})
		assert.ElementsMatch(t, []string{"Cotton Roll", "Button"}, names(got))
	})

	t.Run("unit filter", func(t *testing.T) {
		got := Search(items, SearchParams{Unit: "meter"})
		assert.Equal(t, []string{"Steel Rod"}, names(got))
	})

	t.Run("empty params return everything", func(t *testing.T) {
		got := Search(items, SearchParams{})
		assert.Len(t, got, 3)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got := Search(items, SearchParams{Query: "granite"})
		assert.Empty(t, got)
	})
}

func TestSearchSort(t *testing.T) {
	items := testItems()

	t.Run("default is most recently updated first", func(t *testing.T) {
		got := Search(items, SearchParams{})
		assert.Equal(t, []string{"Steel Rod", "Cotton Roll", "Button"}, names(got))
	})

	t.Run("updated-asc", func(t *testing.T) {
		got := Search(items, SearchParams{Sort: "updated-asc"})
		assert.Equal(t, []string{"Button", "Cotton Roll", "Steel Rod"}, names(got))
	})

	t.Run("name-asc", func(t *testing.T) {
		got := Search(items, SearchParams{Sort: "name-asc"})
		assert.Equal(t, []string{"Button", "Cotton Roll", "Steel Rod"}, names(got))
	})

	t.Run("rate-desc", func(t *testing.T) {
		got := Search(items, SearchParams{Sort: "rate-desc"})
		assert.Equal(t, []string{"Cotton Roll", "Steel Rod", "Button"}, names(got))
	})

	t.Run("unknown key falls back to updated-desc", func(t *testing.T) {
		got := Search(items, SearchParams{Sort: "bogus"})
		assert.Equal(t, []string{"Steel Rod", "Cotton Roll", "Button"}, names(got))
	})
}
