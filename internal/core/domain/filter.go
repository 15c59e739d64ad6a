package domain

import "strings"

// Filter returns the items whose SearchText contains query as a
// contiguous substring, preserving order. Matching is case-insensitive.
// A blank query returns items unchanged.
func Filter(items []Item, query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	out := make([]Item, 0, len(items))
	for i := range items {
		if strings.Contains(items[i].SearchText, needle) {
			out = append(out, items[i])
		}
	}
	return out
}
