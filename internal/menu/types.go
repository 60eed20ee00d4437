package menu

import "encoding/json"

// Portions holds a value that differs between the two serving sizes.
// Half is zero when the item has no half option.
type Portions struct {
	Full float64 `json:"full"`
	Half float64 `json:"half"`
}

// TimeWindow is a time-of-day availability range in "HH:MM:SS" form.
// The window may wrap past midnight (Start > End).
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MenuItem represents a dish on the food menu
type MenuItem struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Image         string     `json:"image"`
	Category      string     `json:"category"`
	SubCategory   string     `json:"subCategory,omitempty"`
	Price         Portions   `json:"price"`
	Calories      Portions   `json:"calories"`
	Weight        *Portions  `json:"weight,omitempty"`
	Allergens     []string   `json:"allergens"`
	IsChefSpecial bool       `json:"isChefSpecial"`
	IsMustTry     bool       `json:"isMustTry"`
	IsVegan       bool       `json:"isVegan"`
	HasPortions   bool       `json:"hasPortions"`
	Enabled       bool       `json:"enabled"`
	TimeWindow    *TimeWindow `json:"timeWindow,omitempty"`
}

// DrinkItem represents an item on the bar menu
type DrinkItem struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
	SubCategory string      `json:"subCategory,omitempty"`
	Price       float64     `json:"price"`
	Enabled     bool        `json:"enabled"`
	TimeWindow  *TimeWindow `json:"timeWindow,omitempty"`
}

// Event represents an upcoming restaurant event
type Event struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ResultType identifies which menu a search result came from
type ResultType string

const (
	TypeFoodMenu       ResultType = "Food Menu"
	TypeBarMenu        ResultType = "Bar Menu"
	TypeUpcomingEvents ResultType = "Upcoming Events"
)

// SearchResult is an entity tagged with its source menu. Exactly one of
// Food, Drink, or Event is set, matching Type. IDs are only unique per
// kind; consumers must key on (Type, ID).
type SearchResult struct {
	Type  ResultType
	Food  *MenuItem
	Drink *DrinkItem
	Event *Event
}

// MarshalJSON inlines the underlying entity and adds the type tag,
// so clients receive a flat object per result.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Food != nil:
		return json.Marshal(struct {
			*MenuItem
			Type ResultType `json:"type"`
		}{r.Food, r.Type})
	case r.Drink != nil:
		return json.Marshal(struct {
			*DrinkItem
			Type ResultType `json:"type"`
		}{r.Drink, r.Type})
	case r.Event != nil:
		return json.Marshal(struct {
			*Event
			Type ResultType `json:"type"`
		}{r.Event, r.Type})
	}
	return json.Marshal(struct {
		Type ResultType `json:"type"`
	}{r.Type})
}

// CategoryAll is the reserved sentinel meaning "no category constraint".
// It is never a real menu category.
const CategoryAll = "All"

// CategoryEntry is one filter chip: a category, optionally narrowed to a
// subcategory. An empty SubCategory means the bare category.
type CategoryEntry struct {
	Category    string `json:"category"`
	SubCategory string `json:"subCategory,omitempty"`
}

// RawRow is a loosely-typed source record, before normalization. Every
// field is an optional string; CSV imports and database queries both
// populate it, under whichever column naming the source uses. The
// Normalizer resolves the aliases (Title vs Name, Price vs PriceFull,
// and so on) so the two paths behave identically.
type RawRow struct {
	ID              string
	Title           string
	Name            string
	Description     string
	Category        string
	SubCategory     string
	Metrics         string
	Price           string
	PriceFull       string
	PriceHalf       string
	Calories        string
	Weight          string
	Image           string
	ChefSpecial     string
	MustTry         string
	Vegan           string
	Allergens       string
	Enabled         string
	TimeWindowStart string
	TimeWindowEnd   string
}
