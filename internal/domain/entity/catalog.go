package entity

import "strings"

// FilterProducts returns the subsequence of products matching both the
// free-text query and the category filter, preserving the input order. The
// text predicate is a case-insensitive substring match against title or
// description; an empty or whitespace-only query matches everything, as does
// the CategoryAll sentinel (or an empty category). The input slice is never
// mutated.
func FilterProducts(products []Product, query, category string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if category != "" && category != CategoryAll && string(p.Category) != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
