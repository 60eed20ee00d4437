package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "Samosa", Category: "Starters", IsVegan: true, Allergens: []string{"Gluten"}},
		{ID: 2, Name: "Butter Chicken", Category: "Mains", SubCategory: "Curries", Allergens: []string{"Dairy", "Nuts"}},
		{ID: 3, Name: "Dal Makhani", Category: "Mains", SubCategory: "Curries", IsVegan: true, Allergens: []string{"None"}},
		{ID: 4, Name: "Tandoori Chicken", Category: "Mains", SubCategory: "Grill", Allergens: []string{"Dairy"}},
	}
}

func TestFilterVeganOnly(t *testing.T) {
	f := Filter{VeganOnly: true, SelectedAllergens: []string{"Gluten", "Dairy", "Nuts"}, ActiveCategory: CategoryAll}

	result := f.Apply(filterFixture())

	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].ID)
	assert.Equal(t, 3, result[1].ID)
}

func TestFilterVeganOnlyExcludesRegardlessOfRest(t *testing.T) {
	f := Filter{VeganOnly: true, ActiveCategory: CategoryAll}
	item := MenuItem{Name: "Lamb Chop", Allergens: []string{"None"}}

	assert.False(t, f.Matches(item))
}

func TestFilterAllergens(t *testing.T) {
	// An item passes only when every real allergen is selected; "None"
	// never counts as a real allergen.
	testCases := []struct {
		name     string
		selected []string
		item     MenuItem
		matches  bool
	}{
		{"all allergens selected", []string{"Dairy", "Nuts"}, MenuItem{Allergens: []string{"Dairy", "Nuts"}}, true},
		{"one allergen unselected", []string{"Dairy"}, MenuItem{Allergens: []string{"Dairy", "Nuts"}}, false},
		{"nothing selected", nil, MenuItem{Allergens: []string{"Dairy"}}, false},
		{"none sentinel always passes", []string{"Dairy"}, MenuItem{Allergens: []string{"None"}}, true},
		{"none sentinel case insensitive", nil, MenuItem{Allergens: []string{"none"}}, true},
		{"no allergen list", nil, MenuItem{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := Filter{SelectedAllergens: tc.selected, ActiveCategory: CategoryAll}
			assert.Equal(t, tc.matches, f.Matches(tc.item))
		})
	}
}

func TestFilterCategory(t *testing.T) {
	items := filterFixture()

	testCases := []struct {
		name        string
		category    string
		expectedIDs []int
	}{
		{"all passes everything", "All", []int{1, 2, 3, 4}},
		{"empty behaves like all", "", []int{1, 2, 3, 4}},
		{"bare category", "Starters", []int{1}},
		{"category with subcategory", "Mains - Curries", []int{2, 3}},
		{"subcategory must match exactly", "Mains - Tandoor", nil},
		{"unknown category", "Sides", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := Filter{SelectedAllergens: []string{"Gluten", "Dairy", "Nuts"}, ActiveCategory: tc.category}

			var ids []int
			for _, item := range f.Apply(items) {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestFilterComposition(t *testing.T) {
	f := Filter{VeganOnly: true, SelectedAllergens: []string{"Gluten", "Dairy", "Nuts"}, ActiveCategory: "Mains - Curries"}

	result := f.Apply(filterFixture())

	require.Len(t, result, 1)
	assert.Equal(t, "Dal Makhani", result[0].Name)
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	f := Filter{VeganOnly: true, ActiveCategory: "Mains - Grill"}

	result := f.Apply(filterFixture())

	assert.Empty(t, result)
	assert.NotNil(t, result)
}
