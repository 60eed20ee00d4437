package menu

import (
	"log"
	"strings"
)

// ParseFoodCSV parses a full food CSV document (header line included)
// into canonical menu items. Rows shorter than the header are dropped;
// rows missing a title or category are kept with defaults.
func ParseFoodCSV(content string, seq *Sequence) []MenuItem {
	rows := csvRows(content, foodRow)

	items := make([]MenuItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, NormalizeMenuItem(r, seq))
	}
	return items
}

// ConvertFoodCSV is the conversion-endpoint variant of ParseFoodCSV:
// rows without a title or category are excluded entirely.
func ConvertFoodCSV(content string, seq *Sequence) []MenuItem {
	rows := csvRows(content, foodRow)

	items := make([]MenuItem, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Category) == "" {
			continue
		}
		items = append(items, NormalizeMenuItem(r, seq))
	}
	return items
}

// ParseBarCSV parses a full bar CSV document into canonical drink items.
func ParseBarCSV(content string, seq *Sequence) []DrinkItem {
	rows := csvRows(content, barRow)

	items := make([]DrinkItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, NormalizeDrinkItem(r, seq))
	}
	return items
}

// ConvertBarCSV excludes rows without a title or category, like
// ConvertFoodCSV.
func ConvertBarCSV(content string, seq *Sequence) []DrinkItem {
	rows := csvRows(content, barRow)

	items := make([]DrinkItem, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Category) == "" {
			continue
		}
		items = append(items, NormalizeDrinkItem(r, seq))
	}
	return items
}

// FoodCSVRows exposes the raw rows of a food CSV document, for callers
// that persist source values rather than normalized items.
func FoodCSVRows(content string) []RawRow {
	return csvRows(content, foodRow)
}

// BarCSVRows exposes the raw rows of a bar CSV document.
func BarCSVRows(content string) []RawRow {
	return csvRows(content, barRow)
}

// csvRows walks a CSV document line by line, mapping each data line into
// a RawRow through the schema-specific pick function. Blank lines are
// skipped; lines with fewer fields than the header are dropped with a
// log line, never an error.
func csvRows(content string, pick func(get func(string) string) RawRow) []RawRow {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := strings.Split(strings.TrimRight(lines[0], "\r"), ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	index := HeaderIndex(headers)

	var rows []RawRow
	for i := 1; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := SplitLine(line)
		if len(values) < len(headers) {
			log.Printf("Skipping malformed CSV line %d: %d fields, expected %d", i+1, len(values), len(headers))
			continue
		}

		get := func(header string) string {
			idx, ok := index[header]
			if !ok || idx >= len(values) {
				return ""
			}
			return values[idx]
		}
		rows = append(rows, pick(get))
	}
	return rows
}

// foodRow maps the food CSV schema onto a RawRow. Header names are
// matched verbatim; "sub category" really does contain a space.
func foodRow(get func(string) string) RawRow {
	return RawRow{
		Title:           get("title"),
		Description:     get("description"),
		Category:        get("category"),
		SubCategory:     get("sub category"),
		Metrics:         get("metrics"),
		Price:           get("price"),
		Calories:        get("calories"),
		Weight:          get("weight"),
		Image:           get("image"),
		ChefSpecial:     get("chefSpecial"),
		MustTry:         get("mustTry"),
		Vegan:           get("vegan"),
		Allergens:       get("allergens"),
		Enabled:         get("enabled"),
		TimeWindowStart: get("timeWindowStart"),
		TimeWindowEnd:   get("timeWindowEnd"),
	}
}

// barRow maps the bar CSV schema onto a RawRow.
func barRow(get func(string) string) RawRow {
	return RawRow{
		Title:           get("title"),
		Description:     get("description"),
		Category:        get("category"),
		SubCategory:     get("sub category"),
		Price:           get("price"),
		Image:           get("image"),
		Enabled:         get("enabled"),
		TimeWindowStart: get("timeWindowStart"),
		TimeWindowEnd:   get("timeWindowEnd"),
	}
}
