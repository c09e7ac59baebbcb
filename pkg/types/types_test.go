package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategoryType(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"comps exact", "Comps", true},
		{"footage exact", "Footage", true},
		{"images exact", "Images", true},
		{"audio exact", "Audio", true},
		{"solids exact", "Solids", true},
		{"wrong case", "comps", false},
		{"upper case", "FOOTAGE", false},
		{"empty", "", false},
		{"unknown", "Renders", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCategoryType(tt.value))
		})
	}
}

func TestAllCategoryTypes(t *testing.T) {
	all := AllCategoryTypes()
	assert.Len(t, all, 5)
	for _, ct := range all {
		assert.True(t, IsValidCategoryType(string(ct)))
	}
}

func TestFiltersFromLegacy(t *testing.T) {
	t.Run("extensions become ext filters without leading dot", func(t *testing.T) {
		filters := FiltersFromLegacy([]string{".psd", "exr"}, nil)
		assert.Equal(t, []SubcategoryFilter{
			{Kind: FilterExt, Value: "psd"},
			{Kind: FilterExt, Value: "exr"},
		}, filters)
	})

	t.Run("keywords become keyword filters", func(t *testing.T) {
		filters := FiltersFromLegacy(nil, []string{"plate", "matte"})
		assert.Equal(t, []SubcategoryFilter{
			{Kind: FilterKeyword, Value: "plate"},
			{Kind: FilterKeyword, Value: "matte"},
		}, filters)
	})

	t.Run("prefix-marked keyword becomes prefix filter", func(t *testing.T) {
		filters := FiltersFromLegacy(nil, []string{"prefix:SHOT_"})
		assert.Equal(t, []SubcategoryFilter{
			{Kind: FilterPrefix, Value: "SHOT_"},
		}, filters)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		exts := []string{".mov"}
		kws := []string{"prefix:BG_"}
		FiltersFromLegacy(exts, kws)
		assert.Equal(t, []string{".mov"}, exts)
		assert.Equal(t, []string{"prefix:BG_"}, kws)
	})
}

func TestSubcategoryEffectiveFilters(t *testing.T) {
	t.Run("unified filters win over legacy fields", func(t *testing.T) {
		sub := SubcategoryConfig{
			Filters:    []SubcategoryFilter{{Kind: FilterExt, Value: "png"}},
			Extensions: []string{"jpg"},
			Keywords:   []string{"old"},
		}
		assert.Equal(t, []SubcategoryFilter{{Kind: FilterExt, Value: "png"}}, sub.EffectiveFilters())
	})

	t.Run("legacy fields resolve lazily and stay untouched", func(t *testing.T) {
		sub := SubcategoryConfig{
			Extensions: []string{"wav"},
			Keywords:   []string{"mix", "prefix:AUD_"},
		}
		filters := sub.EffectiveFilters()
		assert.Equal(t, []SubcategoryFilter{
			{Kind: FilterExt, Value: "wav"},
			{Kind: FilterKeyword, Value: "mix"},
			{Kind: FilterPrefix, Value: "AUD_"},
		}, filters)
		assert.Equal(t, []string{"wav"}, sub.Extensions)
		assert.Equal(t, []string{"mix", "prefix:AUD_"}, sub.Keywords)
		assert.Empty(t, sub.Filters)
	})
}

func TestCategoryHasFilters(t *testing.T) {
	assert.False(t, (&CategoryConfig{Type: CategoryFootage}).HasFilters())
	assert.True(t, (&CategoryConfig{
		Filters: []SubcategoryFilter{{Kind: FilterKeyword, Value: "vfx"}},
	}).HasFilters())
	assert.True(t, (&CategoryConfig{Keywords: []string{"vfx"}}).HasFilters())
}

func TestNormalizeFilter(t *testing.T) {
	assert.Equal(t,
		SubcategoryFilter{Kind: FilterExt, Value: "mov"},
		NormalizeFilter(SubcategoryFilter{Kind: FilterExt, Value: " .mov "}))
	assert.Equal(t,
		SubcategoryFilter{Kind: FilterKeyword, Value: ".hidden"},
		NormalizeFilter(SubcategoryFilter{Kind: FilterKeyword, Value: ".hidden"}))
}
