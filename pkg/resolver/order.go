package resolver

import (
	"sort"

	"github.com/tidybin/tidybin/pkg/types"
)

// SortCategories returns a copy of the categories ordered ascending by
// their Order field. The sort is stable: ties keep their original relative
// order. The input slice is never mutated; callers holding the original
// snapshot see it unchanged.
func SortCategories(categories []types.CategoryConfig) []types.CategoryConfig {
	sorted := make([]types.CategoryConfig, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// SortFolders returns a copy of the folders ordered ascending by Order,
// stable for ties, without mutating the input.
func SortFolders(folders []types.FolderConfig) []types.FolderConfig {
	sorted := make([]types.FolderConfig, len(folders))
	copy(sorted, folders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// RecalculateCategoryOrders returns a new sequence with Order fields
// reassigned 0..n-1 in the categories' current array order. It does not
// re-sort by any other key first; it is typically invoked after a
// drag-reorder has already changed the array order.
func RecalculateCategoryOrders(categories []types.CategoryConfig) []types.CategoryConfig {
	renumbered := make([]types.CategoryConfig, len(categories))
	copy(renumbered, categories)
	for i := range renumbered {
		renumbered[i].Order = i
	}
	return renumbered
}
