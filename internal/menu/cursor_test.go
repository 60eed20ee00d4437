package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cursorFixture() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
	}
}

func TestNavigateWrapsForward(t *testing.T) {
	eligible := cursorFixture()

	next := Navigate(&eligible[2], DirectionNext, eligible)

	require.NotNil(t, next)
	assert.Equal(t, "A", next.Name)
}

func TestNavigateWrapsBackward(t *testing.T) {
	eligible := cursorFixture()

	prev := Navigate(&eligible[0], DirectionPrev, eligible)

	require.NotNil(t, prev)
	assert.Equal(t, "C", prev.Name)
}

func TestNavigateAdvances(t *testing.T) {
	eligible := cursorFixture()

	next := Navigate(&eligible[0], DirectionNext, eligible)
	require.NotNil(t, next)
	assert.Equal(t, "B", next.Name)

	prev := Navigate(&eligible[2], DirectionPrev, eligible)
	require.NotNil(t, prev)
	assert.Equal(t, "B", prev.Name)
}

func TestNavigateEmptyEligibleSetIsNoOp(t *testing.T) {
	current := &MenuItem{ID: 9, Name: "Gone"}

	assert.Same(t, current, Navigate(current, DirectionNext, nil))
	assert.Nil(t, Navigate(nil, DirectionNext, nil))
}

func TestNavigateFilteredOutCurrentJumpsToFirst(t *testing.T) {
	eligible := cursorFixture()
	current := &MenuItem{ID: 99, Name: "Filtered Out"}

	got := Navigate(current, DirectionNext, eligible)

	require.NotNil(t, got)
	assert.Equal(t, "A", got.Name)
}

func TestNavigateWithFilteredEligibleSet(t *testing.T) {
	items := []MenuItem{
		{ID: 1, Category: "Mains", Allergens: []string{"None"}},
		{ID: 2, Category: "Starters", Allergens: []string{"None"}},
		{ID: 3, Category: "Mains", Allergens: []string{"None"}},
	}
	f := Filter{ActiveCategory: "Mains"}
	eligible := f.Apply(items)

	next := Navigate(&items[0], DirectionNext, eligible)
	require.NotNil(t, next)
	assert.Equal(t, 3, next.ID, "navigation stays inside the eligible set")

	wrapped := Navigate(next, DirectionNext, eligible)
	require.NotNil(t, wrapped)
	assert.Equal(t, 1, wrapped.ID)
}

func TestNavigateDrinks(t *testing.T) {
	eligible := []DrinkItem{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}

	next := NavigateDrinks(&eligible[1], DirectionNext, eligible)
	require.NotNil(t, next)
	assert.Equal(t, "A", next.Name)

	assert.Nil(t, NavigateDrinks(nil, DirectionPrev, nil))
}
