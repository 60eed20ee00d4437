package menu

import "strings"

// Filter is the compound user filter over food items: vegan-only,
// allergen exclusion, and an active category chip. Drinks and events
// carry neither vegan nor allergen attributes and are unaffected.
type Filter struct {
	VeganOnly         bool
	SelectedAllergens []string
	ActiveCategory    string
}

// Matches reports whether an item passes all three rules. An item passes
// the allergen rule only when every one of its real allergens (anything
// not case-insensitively "None") is in the selected set.
func (f Filter) Matches(item MenuItem) bool {
	if f.VeganOnly && !item.IsVegan {
		return false
	}

	for _, allergen := range item.Allergens {
		if strings.EqualFold(allergen, AllergenNone) {
			continue
		}
		if !containsString(f.SelectedAllergens, allergen) {
			return false
		}
	}

	return f.matchesCategory(item)
}

// matchesCategory applies the active category chip. "All" (or an unset
// chip) passes everything; "Category - SubCategory" requires both to
// match exactly; a bare category matches on category alone.
func (f Filter) matchesCategory(item MenuItem) bool {
	if f.ActiveCategory == "" || f.ActiveCategory == CategoryAll {
		return true
	}

	if category, subCategory, found := strings.Cut(f.ActiveCategory, " - "); found {
		return item.Category == category && item.SubCategory == subCategory
	}

	return item.Category == f.ActiveCategory
}

// Apply returns the items passing the filter, preserving source order.
// An empty result is valid.
func (f Filter) Apply(items []MenuItem) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
