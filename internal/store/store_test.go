package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pritishraj04/delhi-lounge-new-menu/internal/menu"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestImportAndQueryFood(t *testing.T) {
	s := openTestStore(t)

	rows := []menu.RawRow{
		{
			Title:     "Butter Chicken",
			Category:  "Mains",
			Metrics:   "full:17.99;half:9.99",
			Vegan:     "false",
			Allergens: "Dairy;Nuts",
			Enabled:   "true",
		},
		{
			Title:    "Samosa",
			Category: "Starters",
			Metrics:  "price:$5.99",
			Vegan:    "true",
			Enabled:  "true",
		},
	}
	require.NoError(t, s.ImportFood(rows))

	got, err := s.FoodRows()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Butter Chicken", got[0].Title)
	assert.NotEmpty(t, got[0].ID, "stored rows carry their own ids")

	// Rows from the store normalize exactly like CSV rows.
	seq := menu.NewSequence()
	item := menu.NormalizeMenuItem(got[0], seq)
	assert.Equal(t, 17.99, item.Price.Full)
	assert.Equal(t, 9.99, item.Price.Half)
	assert.True(t, item.HasPortions)
	assert.Equal(t, []string{"Dairy", "Nuts"}, item.Allergens)
}

func TestImportReplacesExistingRows(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.ImportFood([]menu.RawRow{{Title: "Old", Category: "Mains"}}))
	require.NoError(t, s.ImportFood([]menu.RawRow{{Title: "New", Category: "Mains"}}))

	got, err := s.FoodRows()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Title)
}

func TestImportAndQueryBar(t *testing.T) {
	s := openTestStore(t)

	rows := []menu.RawRow{
		{
			Title:           "Old Fashioned",
			Category:        "Cocktails",
			Price:           "14",
			Enabled:         "true",
			TimeWindowStart: "16:00:00",
			TimeWindowEnd:   "02:00:00",
		},
	}
	require.NoError(t, s.ImportBar(rows))

	got, err := s.BarRows()
	require.NoError(t, err)
	require.Len(t, got, 1)

	seq := menu.NewSequence()
	drink := menu.NormalizeDrinkItem(got[0], seq)
	assert.Equal(t, "Old Fashioned", drink.Name)
	assert.Equal(t, 14.0, drink.Price)
	require.NotNil(t, drink.TimeWindow)
	assert.Equal(t, "16:00:00", drink.TimeWindow.Start)
}

func TestEmptyTables(t *testing.T) {
	s := openTestStore(t)

	food, err := s.FoodRows()
	require.NoError(t, err)
	assert.Empty(t, food)

	bar, err := s.BarRows()
	require.NoError(t, err)
	assert.Empty(t, bar)
}
