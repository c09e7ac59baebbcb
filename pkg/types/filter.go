package types

import "strings"

// FilterKind distinguishes the subcategory filter variants.
type FilterKind string

const (
	// FilterExt matches a file extension, case-insensitive, stored without a leading dot.
	FilterExt FilterKind = "ext"
	// FilterPrefix matches a filename prefix, case-insensitive.
	FilterPrefix FilterKind = "prefix"
	// FilterKeyword matches a substring anywhere in the filename, case-insensitive.
	FilterKeyword FilterKind = "keyword"
)

// legacyPrefixMarker marks a legacy keyword that should be read as a prefix filter.
const legacyPrefixMarker = "prefix:"

// SubcategoryFilter is one filter rule inside a subcategory or category.
// A filter list has OR semantics: any filter matching qualifies the asset.
type SubcategoryFilter struct {
	Kind  FilterKind `json:"kind"`
	Value string     `json:"value"`
}

// Valid reports whether the kind is one of the known filter variants.
func (k FilterKind) Valid() bool {
	switch k {
	case FilterExt, FilterPrefix, FilterKeyword:
		return true
	}
	return false
}

// NormalizeFilter canonicalizes a filter for matching: extension values lose
// any leading dot, and all values are trimmed. The stored value is not mutated.
func NormalizeFilter(f SubcategoryFilter) SubcategoryFilter {
	value := strings.TrimSpace(f.Value)
	if f.Kind == FilterExt {
		value = strings.TrimPrefix(value, ".")
	}
	return SubcategoryFilter{Kind: f.Kind, Value: value}
}

// FiltersFromLegacy converts legacy raw extension and keyword lists into the
// unified filter representation. Each extension becomes an ext filter, each
// keyword a keyword filter, except keywords literally prefixed "prefix:" which
// become prefix filters carrying the remainder. The inputs are never mutated;
// migration of the stored document happens only on explicit save.
func FiltersFromLegacy(extensions, keywords []string) []SubcategoryFilter {
	filters := make([]SubcategoryFilter, 0, len(extensions)+len(keywords))
	for _, ext := range extensions {
		filters = append(filters, SubcategoryFilter{
			Kind:  FilterExt,
			Value: strings.TrimPrefix(ext, "."),
		})
	}
	for _, kw := range keywords {
		if rest, ok := strings.CutPrefix(kw, legacyPrefixMarker); ok {
			filters = append(filters, SubcategoryFilter{Kind: FilterPrefix, Value: rest})
			continue
		}
		filters = append(filters, SubcategoryFilter{Kind: FilterKeyword, Value: kw})
	}
	return filters
}
