package menu

// Direction selects which neighbor the navigation cursor moves to.
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// Navigate returns the item adjacent to current within the eligible set,
// wrapping circularly. The eligible set is the category- and
// filter-constrained subset the caller is browsing. An empty set is a
// no-op; a current item that was just filtered out jumps to the first
// eligible item.
func Navigate(current *MenuItem, direction Direction, eligible []MenuItem) *MenuItem {
	if len(eligible) == 0 {
		return current
	}

	idx := -1
	if current != nil {
		for i := range eligible {
			if eligible[i].ID == current.ID {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		return &eligible[0]
	}

	return &eligible[step(idx, direction, len(eligible))]
}

// NavigateDrinks is Navigate for the bar menu.
func NavigateDrinks(current *DrinkItem, direction Direction, eligible []DrinkItem) *DrinkItem {
	if len(eligible) == 0 {
		return current
	}

	idx := -1
	if current != nil {
		for i := range eligible {
			if eligible[i].ID == current.ID {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		return &eligible[0]
	}

	return &eligible[step(idx, direction, len(eligible))]
}

// step advances an index by one in either direction, modulo length.
func step(idx int, direction Direction, length int) int {
	if direction == DirectionNext {
		return (idx + 1) % length
	}
	return (idx - 1 + length) % length
}
