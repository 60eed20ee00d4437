package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() ([]MenuItem, []DrinkItem, []Event) {
	food := []MenuItem{
		{ID: 1, Name: "Tandoori Chicken", Category: "Mains", Allergens: []string{"Dairy"}},
		{ID: 2, Name: "Samosa", Description: "Crisp pastry", Category: "Starters", IsVegan: true, Allergens: []string{"None"}},
		{ID: 3, Name: "Paneer Tikka", Category: "Starters", SubCategory: "Tandoor", Allergens: []string{"Dairy"}},
	}
	drinks := []DrinkItem{
		{ID: 1, Name: "Chicken Wings", Category: "Bar Bites"},
		{ID: 2, Name: "Mango Lassi", Category: "Mocktails"},
	}
	events := []Event{
		{Name: "Live Jazz Night", Image: "/img/jazz.jpg"},
		{Name: "Chicken Wing Eating Contest", Image: "/img/contest.jpg"},
	}
	return food, drinks, events
}

func TestSearchShortQueryReturnsNothing(t *testing.T) {
	food, drinks, events := searchFixture()

	assert.Empty(t, Search("", food, drinks, events, false, nil))
	assert.Empty(t, Search("C", food, drinks, events, false, nil))
}

func TestSearchAcrossKinds(t *testing.T) {
	food, drinks, events := searchFixture()

	results := Search("Chicken", food, drinks, events, false, []string{"Dairy"})

	require.Len(t, results, 3)
	assert.Equal(t, TypeFoodMenu, results[0].Type)
	assert.Equal(t, "Tandoori Chicken", results[0].Food.Name)
	assert.Equal(t, TypeBarMenu, results[1].Type)
	assert.Equal(t, "Chicken Wings", results[1].Drink.Name)
	assert.Equal(t, TypeUpcomingEvents, results[2].Type)
	assert.Equal(t, "Chicken Wing Eating Contest", results[2].Event.Name)
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	food, drinks, events := searchFixture()

	results := Search("pastry", food, drinks, events, false, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "Samosa", results[0].Food.Name, "description matches too")
}

func TestSearchMatchesCategoryAndSubCategory(t *testing.T) {
	food, drinks, events := searchFixture()

	byCategory := Search("Starters", food, drinks, events, false, []string{"Dairy"})
	require.Len(t, byCategory, 2)

	bySub := Search("Tandoor", food, drinks, events, false, []string{"Dairy"})
	// "Tandoor" hits both Tandoori Chicken (name) and Paneer Tikka
	// (subcategory), in source order.
	require.Len(t, bySub, 2)
	assert.Equal(t, "Tandoori Chicken", bySub[0].Food.Name)
	assert.Equal(t, "Paneer Tikka", bySub[1].Food.Name)
}

func TestSearchAppliesVeganAndAllergenRulesToFoodOnly(t *testing.T) {
	food, drinks, events := searchFixture()

	// Vegan-only drops the non-vegan food hit but leaves bar results
	// untouched; drinks carry no vegan attribute.
	results := Search("Chicken", food, drinks, events, true, nil)

	require.Len(t, results, 2)
	assert.Equal(t, TypeBarMenu, results[0].Type)
	assert.Equal(t, TypeUpcomingEvents, results[1].Type)
}

func TestSearchAllergenExclusion(t *testing.T) {
	food, drinks, events := searchFixture()

	// Nothing selected: items with real allergens are excluded, the
	// "None" sentinel item stays searchable.
	results := Search("Samosa", food, drinks, events, false, nil)
	require.Len(t, results, 1)

	results = Search("Paneer", food, drinks, events, false, nil)
	assert.Empty(t, results)
}

func TestSearchEventNameOnly(t *testing.T) {
	food, drinks, events := searchFixture()

	results := Search("Jazz", food, drinks, events, false, nil)

	require.Len(t, results, 1)
	assert.Equal(t, TypeUpcomingEvents, results[0].Type)
}

func TestSearchResultJSONCarriesTypeTag(t *testing.T) {
	food, drinks, events := searchFixture()

	results := Search("Chicken", food, drinks, events, false, []string{"Dairy"})
	require.NotEmpty(t, results)

	data, err := json.Marshal(results[0])
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Food Menu", decoded["type"])
	assert.Equal(t, "Tandoori Chicken", decoded["name"])
}
