// Package match evaluates subcategory filters against asset filenames.
package match

import (
	"strings"

	"github.com/tidybin/tidybin/pkg/classify"
	"github.com/tidybin/tidybin/pkg/types"
)

// Matches reports whether a single filter matches the filename. All
// comparisons are case-insensitive. Extension filters compare against the
// filename's derived extension, prefix filters against the start of the
// name, keyword filters against any substring.
func Matches(filter types.SubcategoryFilter, filename string) bool {
	f := types.NormalizeFilter(filter)
	if f.Value == "" {
		return false
	}

	name := strings.ToLower(filename)
	value := strings.ToLower(f.Value)

	switch f.Kind {
	case types.FilterExt:
		return classify.ExtensionOf(filename) == value
	case types.FilterPrefix:
		return strings.HasPrefix(name, value)
	case types.FilterKeyword:
		return strings.Contains(name, value)
	}

	return false
}

// MatchesAny reports whether at least one filter matches the filename
// (OR semantics). An empty filter list never matches via this path; the
// catch-all fallback is a separate, caller-gated decision.
func MatchesAny(filters []types.SubcategoryFilter, filename string) bool {
	for _, f := range filters {
		if Matches(f, filename) {
			return true
		}
	}
	return false
}

// SubcategoryOutcome is the result of matching one subcategory slot.
type SubcategoryOutcome int

const (
	// NoMatch means no filter matched and the slot does not apply.
	NoMatch SubcategoryOutcome = iota
	// Matched means at least one filter matched, or the empty-filter
	// catch-all legitimately claimed the asset.
	Matched
	// FilterRequired flags an empty-filter subcategory that is not
	// eligible to act as catch-all. This is a configuration warning,
	// not a silent match.
	FilterRequired
)

// Subcategory matches an asset against one subcategory. A subcategory with
// zero effective filters catches every asset only when the caller marks the
// slot catch-all eligible (no competing unfiltered sibling); otherwise it is
// flagged so the resolver can surface a "filter required" diagnostic.
func Subcategory(sub *types.SubcategoryConfig, filename string, catchAllEligible bool) SubcategoryOutcome {
	filters := sub.EffectiveFilters()
	if len(filters) == 0 {
		if catchAllEligible {
			return Matched
		}
		return FilterRequired
	}
	if MatchesAny(filters, filename) {
		return Matched
	}
	return NoMatch
}
