package types

// CategoryType identifies one of the built-in asset categories.
// The set is closed: no other value is valid anywhere in the system.
type CategoryType string

const (
	CategoryComps   CategoryType = "Comps"
	CategoryFootage CategoryType = "Footage"
	CategoryImages  CategoryType = "Images"
	CategoryAudio   CategoryType = "Audio"
	CategorySolids  CategoryType = "Solids"
)

// AllCategoryTypes returns every valid category type in display order.
func AllCategoryTypes() []CategoryType {
	return []CategoryType{
		CategoryComps,
		CategoryFootage,
		CategoryImages,
		CategoryAudio,
		CategorySolids,
	}
}

// IsValidCategoryType reports whether value names a known category type.
// The membership test is exact and case-sensitive: persisted data carrying
// "comps" is rejected, not normalized. Used to validate untrusted storage
// before trusting a string as a CategoryType.
func IsValidCategoryType(value string) bool {
	switch CategoryType(value) {
	case CategoryComps, CategoryFootage, CategoryImages, CategoryAudio, CategorySolids:
		return true
	}
	return false
}
