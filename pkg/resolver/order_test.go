package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidybin/tidybin/pkg/types"
)

func TestSortCategories(t *testing.T) {
	input := []types.CategoryConfig{
		{Type: types.CategorySolids, Order: 99},
		{Type: types.CategoryComps, Order: 0},
		{Type: types.CategoryImages, Order: 2},
		{Type: types.CategoryFootage, Order: 1},
	}

	sorted := SortCategories(input)

	assert.Equal(t, types.CategoryComps, sorted[0].Type)
	assert.Equal(t, types.CategoryFootage, sorted[1].Type)
	assert.Equal(t, types.CategoryImages, sorted[2].Type)
	assert.Equal(t, types.CategorySolids, sorted[3].Type)

	// Input untouched: same order, same content.
	assert.Equal(t, types.CategorySolids, input[0].Type)
	assert.Equal(t, types.CategoryComps, input[1].Type)
}

func TestSortCategoriesStableOnTies(t *testing.T) {
	input := []types.CategoryConfig{
		{Type: types.CategoryFootage, Order: 1},
		{Type: types.CategoryImages, Order: 1},
		{Type: types.CategoryAudio, Order: 0},
	}

	sorted := SortCategories(input)

	assert.Equal(t, types.CategoryAudio, sorted[0].Type)
	// Footage declared before Images, tie preserved.
	assert.Equal(t, types.CategoryFootage, sorted[1].Type)
	assert.Equal(t, types.CategoryImages, sorted[2].Type)
}

func TestSortFolders(t *testing.T) {
	input := []types.FolderConfig{
		{Name: "System", Order: 99},
		{Name: "Render", Order: 0},
		{Name: "Source", Order: 1},
	}

	sorted := SortFolders(input)

	assert.Equal(t, "Render", sorted[0].Name)
	assert.Equal(t, "Source", sorted[1].Name)
	assert.Equal(t, "System", sorted[2].Name)
	assert.Equal(t, "System", input[0].Name)
}

func TestRecalculateCategoryOrders(t *testing.T) {
	input := []types.CategoryConfig{
		{Type: types.CategoryImages, Order: 7},
		{Type: types.CategoryComps, Order: 3},
		{Type: types.CategoryAudio, Order: 5},
	}

	renumbered := RecalculateCategoryOrders(input)

	// Renumbers in array order, does not re-sort by any other key.
	assert.Equal(t, types.CategoryImages, renumbered[0].Type)
	assert.Equal(t, 0, renumbered[0].Order)
	assert.Equal(t, types.CategoryComps, renumbered[1].Type)
	assert.Equal(t, 1, renumbered[1].Order)
	assert.Equal(t, types.CategoryAudio, renumbered[2].Type)
	assert.Equal(t, 2, renumbered[2].Order)

	// Original orders preserved on the input.
	assert.Equal(t, 7, input[0].Order)
}

func TestRecalculateCategoryOrdersEmpty(t *testing.T) {
	assert.Empty(t, RecalculateCategoryOrders(nil))
}
