package menu

import "strings"

// Search matches a query against food items, drink items, and events,
// tagging each hit with its source menu. Queries of length one or less
// return nothing. Food hits are pre-filtered by the vegan and allergen
// rules (the category chip never constrains search); drinks and events
// are matched on text alone. Results are concatenated food, bar, events,
// stable in source order, with no relevance ranking.
func Search(query string, items []MenuItem, drinks []DrinkItem, events []Event, veganOnly bool, selectedAllergens []string) []SearchResult {
	if len(query) <= 1 {
		return nil
	}

	q := strings.ToLower(query)
	f := Filter{VeganOnly: veganOnly, SelectedAllergens: selectedAllergens, ActiveCategory: CategoryAll}

	var results []SearchResult

	for i := range items {
		item := &items[i]
		if !f.Matches(*item) {
			continue
		}
		if matchesText(q, item.Name, item.Description, item.Category, item.SubCategory) {
			results = append(results, SearchResult{Type: TypeFoodMenu, Food: item})
		}
	}

	for i := range drinks {
		drink := &drinks[i]
		if matchesText(q, drink.Name, drink.Description, drink.Category, drink.SubCategory) {
			results = append(results, SearchResult{Type: TypeBarMenu, Drink: drink})
		}
	}

	for i := range events {
		event := &events[i]
		if matchesText(q, event.Name) {
			results = append(results, SearchResult{Type: TypeUpcomingEvents, Event: event})
		}
	}

	return results
}

// matchesText reports whether any field contains the lowercased query as
// a substring, case-insensitively.
func matchesText(loweredQuery string, fields ...string) bool {
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
