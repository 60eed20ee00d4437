package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderImage is used when a row carries no image reference.
const PlaceholderImage = "/placeholder.svg"

// AllergenNone is the sentinel stored when a row lists no allergens.
const AllergenNone = "None"

// ParseBool reports whether a loosely-typed source value means true.
// The accepted set matches both the CSV and database conventions.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}

// NormalizeMenuItem maps a raw food row into a canonical MenuItem,
// drawing its identifier from seq unless the source row already carries
// a positive numeric id (the database path does).
func NormalizeMenuItem(r RawRow, seq *Sequence) MenuItem {
	id := rowID(r, seq)

	m := ParseMetrics(r.Metrics)

	price := Portions{
		Full: firstNonZero(m.Full.Price, m.Price, cleanFloat(firstNonEmpty(r.PriceFull, r.Price))),
	}
	if m.Half != nil {
		price.Half = m.Half.Price
	}
	if price.Half == 0 {
		price.Half = cleanFloat(r.PriceHalf)
	}

	calories := Portions{
		Full: float64(firstNonZeroInt(m.Full.Calories, m.Calories, cleanInt(r.Calories))),
	}
	if m.Half != nil {
		calories.Half = float64(m.Half.Calories)
	}

	var weight *Portions
	fullWeight := firstNonZeroInt(m.Full.Weight, m.Weight, cleanInt(r.Weight))
	if fullWeight != 0 {
		weight = &Portions{Full: float64(fullWeight)}
		if m.Half != nil {
			weight.Half = float64(m.Half.Weight)
		}
	}

	item := MenuItem{
		ID:            id,
		Name:          firstNonEmpty(r.Title, r.Name, fmt.Sprintf("Item %d", id)),
		Description:   r.Description,
		Image:         firstNonEmpty(r.Image, PlaceholderImage),
		Category:      firstNonEmpty(r.Category, "Uncategorized"),
		SubCategory:   r.SubCategory,
		Price:         price,
		Calories:      calories,
		Weight:        weight,
		Allergens:     splitAllergens(r.Allergens),
		IsChefSpecial: ParseBool(r.ChefSpecial),
		IsMustTry:     ParseBool(r.MustTry),
		IsVegan:       ParseBool(r.Vegan),
		HasPortions:   price.Half > 0,
		Enabled:       ParseBool(r.Enabled),
		TimeWindow:    rowTimeWindow(r),
	}

	return item
}

// NormalizeDrinkItem maps a raw bar row into a canonical DrinkItem.
func NormalizeDrinkItem(r RawRow, seq *Sequence) DrinkItem {
	id := rowID(r, seq)

	return DrinkItem{
		ID:          id,
		Name:        firstNonEmpty(r.Title, r.Name, fmt.Sprintf("Item %d", id)),
		Description: r.Description,
		Image:       firstNonEmpty(r.Image, PlaceholderImage),
		Category:    firstNonEmpty(r.Category, "Uncategorized"),
		SubCategory: r.SubCategory,
		Price:       cleanFloat(r.Price),
		Enabled:     ParseBool(r.Enabled),
		TimeWindow:  rowTimeWindow(r),
	}
}

// rowID prefers the source row's own positive numeric id; otherwise the
// sequence assigns the next one.
func rowID(r RawRow, seq *Sequence) int {
	if n, err := strconv.Atoi(strings.TrimSpace(r.ID)); err == nil && n > 0 {
		return n
	}
	return seq.Next()
}

// rowTimeWindow builds the availability window only when both bounds are
// present; a single bound means no window.
func rowTimeWindow(r RawRow) *TimeWindow {
	if r.TimeWindowStart == "" || r.TimeWindowEnd == "" {
		return nil
	}
	return &TimeWindow{Start: r.TimeWindowStart, End: r.TimeWindowEnd}
}

// splitAllergens splits the source allergen list on semicolons or commas,
// trims entries, drops empties and case-sensitive duplicates, and falls
// back to the "None" sentinel for an empty result.
func splitAllergens(value string) []string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == ','
	})

	allergens := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		allergens = append(allergens, p)
	}

	if len(allergens) == 0 {
		return []string{AllergenNone}
	}
	return allergens
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonZeroInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
