package menu

// MenuCategories derives the ordered filter-chip list for a food
// collection. The caller passes whatever subset is currently visible;
// the output changes as filters change.
func MenuCategories(items []MenuItem) []CategoryEntry {
	pairs := make([]CategoryEntry, 0, len(items))
	for _, item := range items {
		pairs = append(pairs, CategoryEntry{Category: item.Category, SubCategory: item.SubCategory})
	}
	return aggregateCategories(pairs)
}

// BarCategories derives the ordered filter-chip list for a bar
// collection.
func BarCategories(items []DrinkItem) []CategoryEntry {
	pairs := make([]CategoryEntry, 0, len(items))
	for _, item := range items {
		pairs = append(pairs, CategoryEntry{Category: item.Category, SubCategory: item.SubCategory})
	}
	return aggregateCategories(pairs)
}

// aggregateCategories builds the deduplicated (category, subCategory)
// list in first-seen order, always starting with the "All" sentinel. A
// category whose only subcategory is empty collapses to a bare entry;
// otherwise each distinct non-empty subcategory gets its own entry, plus
// a bare entry if an empty subcategory was also seen.
func aggregateCategories(pairs []CategoryEntry) []CategoryEntry {
	var order []string
	subs := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, p := range pairs {
		if seen[p.Category] == nil {
			order = append(order, p.Category)
			seen[p.Category] = make(map[string]bool)
		}
		if !seen[p.Category][p.SubCategory] {
			seen[p.Category][p.SubCategory] = true
			subs[p.Category] = append(subs[p.Category], p.SubCategory)
		}
	}

	entries := []CategoryEntry{{Category: CategoryAll}}

	for _, category := range order {
		s := subs[category]
		if len(s) <= 1 && (len(s) == 0 || s[0] == "") {
			entries = append(entries, CategoryEntry{Category: category})
			continue
		}
		for _, sub := range s {
			if sub != "" {
				entries = append(entries, CategoryEntry{Category: category, SubCategory: sub})
			} else {
				entries = append(entries, CategoryEntry{Category: category})
			}
		}
	}

	return entries
}
