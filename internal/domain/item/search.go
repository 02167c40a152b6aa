package item

import (
	"sort"
	"strings"
)

// Search filters and sorts items in memory. Query matches
// case-insensitively against the name or any tag substring; an empty
// query matches everything. Unknown sort keys fall back to
// updated-desc.
func Search(items []Item, params SearchParams) []Item {
	query := strings.ToLower(strings.TrimSpace(params.Query))

	var result []Item
	for _, it := range items {
		if params.Unit != "" && it.Unit != params.Unit {
			continue
		}
		if query != "" && !matchesQuery(it, query) {
			continue
		}
		result = append(result, it)
	}

	sortItems(result, params.Sort)
	return result
}

func matchesQuery(it Item, query string) bool {
	if strings.Contains(strings.ToLower(it.Name), query) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortItems(items []Item, key string) {
	less := func(i, j int) bool { return items[i].UpdatedAt.After(items[j].UpdatedAt) }

	switch key {
	case "updated-asc":
		less = func(i, j int) bool { return items[i].UpdatedAt.Before(items[j].UpdatedAt) }
	case "name-asc":
		less = func(i, j int) bool { return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name) }
	case "name-desc":
		less = func(i, j int) bool { return strings.ToLower(items[i].Name) > strings.ToLower(items[j].Name) }
	case "rate-asc":
		less = func(i, j int) bool { return items[i].Rate.LessThan(items[j].Rate) }
	case "rate-desc":
		less = func(i, j int) bool { return items[i].Rate.GreaterThan(items[j].Rate) }
	}

	sort.SliceStable(items, less)
}
