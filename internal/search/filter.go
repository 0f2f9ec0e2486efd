package search

// Partition returns only the items whose category matches, preserving the
// relative order of the source slice. Pure function; the input is never
// mutated.
func Partition(items []ResultItem, category Category) []ResultItem {
	out := make([]ResultItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
