package resolver

import (
	"sort"
	"strings"

	"github.com/tidybin/tidybin/pkg/types"
)

// FindDuplicateKeywords builds a case-insensitive keyword registry over the
// given categories and reports every keyword that is declared under two or
// more distinct category types. The result is symmetric: a collision is
// recorded against all of the colliding types, not just the later one, so
// the user sees "vfx" flagged on both Footage and Images. A nil input
// yields an empty result.
func FindDuplicateKeywords(categories []types.CategoryConfig) map[types.CategoryType][]string {
	result := make(map[types.CategoryType][]string)
	if len(categories) == 0 {
		return result
	}

	// keyword (lower-cased) -> set of category types declaring it
	registry := make(map[string]map[types.CategoryType]struct{})
	for i := range categories {
		cat := &categories[i]
		for _, f := range cat.EffectiveFilters() {
			if f.Kind != types.FilterKeyword {
				continue
			}
			kw := strings.ToLower(strings.TrimSpace(f.Value))
			if kw == "" {
				continue
			}
			if registry[kw] == nil {
				registry[kw] = make(map[types.CategoryType]struct{})
			}
			registry[kw][cat.Type] = struct{}{}
		}
	}

	for kw, owners := range registry {
		if len(owners) < 2 {
			continue
		}
		for ct := range owners {
			result[ct] = append(result[ct], kw)
		}
	}

	// Deterministic ordering for display and tests.
	for ct := range result {
		sort.Strings(result[ct])
	}

	return result
}
