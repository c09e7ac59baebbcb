package resolver

import (
	"fmt"
	"strings"

	"github.com/tidybin/tidybin/pkg/types"
)

// WarningCode identifies a class of configuration warning.
type WarningCode string

const (
	// WarnDuplicateKeyword marks a keyword asserted by two or more
	// distinct category types.
	WarnDuplicateKeyword WarningCode = "duplicate-keyword"
	// WarnFilterRequired marks an empty-filter subcategory that cannot
	// act as catch-all because a sibling slot is also unfiltered.
	WarnFilterRequired WarningCode = "filter-required"
	// WarnInvalidCategoryType marks a persisted category whose type fails
	// validation; the resolver ignores such entries.
	WarnInvalidCategoryType WarningCode = "invalid-category-type"
)

// Warning is one non-fatal configuration diagnostic. Warnings are computed
// on demand from the current snapshot and never persisted, so they cannot
// drift stale.
type Warning struct {
	Code    WarningCode
	Folder  string
	Message string
}

// CheckConfig computes all configuration warnings for a snapshot: keyword
// collisions across categories, empty-filter subcategories that need a
// filter, and category entries with invalid types.
func CheckConfig(cfg *types.VersionedConfig) []Warning {
	var warnings []Warning

	for i := range cfg.Folders {
		folder := &cfg.Folders[i]

		for j := range folder.Categories {
			cat := &folder.Categories[j]
			if !types.IsValidCategoryType(string(cat.Type)) {
				warnings = append(warnings, Warning{
					Code:   WarnInvalidCategoryType,
					Folder: folder.Name,
					Message: fmt.Sprintf("category type %q is not valid and will be ignored",
						string(cat.Type)),
				})
			}
			warnings = append(warnings, filterRequiredWarnings(folder.Name, cat)...)
		}
	}

	// Keyword collisions are global: the same keyword asserted by Footage in
	// one folder and Images in another is still ambiguous.
	var allCategories []types.CategoryConfig
	for i := range cfg.Folders {
		allCategories = append(allCategories, cfg.Folders[i].Categories...)
	}
	duplicates := FindDuplicateKeywords(allCategories)
	for _, ct := range types.AllCategoryTypes() {
		if kws, ok := duplicates[ct]; ok {
			warnings = append(warnings, Warning{
				Code: WarnDuplicateKeyword,
				Message: fmt.Sprintf("category %s shares keywords with another category: %s",
					ct, strings.Join(kws, ", ")),
			})
		}
	}

	return warnings
}

// filterRequiredWarnings flags every empty-filter subcategory in a category
// that has more than one unfiltered slot: with competing unfiltered siblings
// none of them is catch-all eligible.
func filterRequiredWarnings(folderName string, cat *types.CategoryConfig) []Warning {
	var empty []*types.SubcategoryConfig
	for i := range cat.Subcategories {
		sub := &cat.Subcategories[i]
		if len(sub.EffectiveFilters()) == 0 {
			empty = append(empty, sub)
		}
	}
	if len(empty) < 2 {
		return nil
	}

	warnings := make([]Warning, 0, len(empty))
	for _, sub := range empty {
		warnings = append(warnings, Warning{
			Code:   WarnFilterRequired,
			Folder: folderName,
			Message: fmt.Sprintf("subcategory %q in category %s requires a filter",
				sub.Name, cat.Type),
		})
	}
	return warnings
}
