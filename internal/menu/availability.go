package menu

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time expressed as seconds since midnight.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM:SS" (seconds optional) into a TimeOfDay.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}

	total := 0
	for i := 0; i < 3; i++ {
		n := 0
		if i < len(parts) {
			var err error
			n, err = strconv.Atoi(parts[i])
			if err != nil {
				return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
			}
		}
		total = total*60 + n
	}
	if total < 0 || total >= 24*60*60 {
		return 0, fmt.Errorf("time of day %q out of range", value)
	}
	return TimeOfDay(total), nil
}

// Contains reports whether now falls inside the [Start, End) window.
// A window whose start is after its end wraps past midnight. A window
// with an unparsable bound imposes no constraint.
func (w TimeWindow) Contains(now TimeOfDay) bool {
	start, err := ParseTimeOfDay(w.Start)
	if err != nil {
		return true
	}
	end, err := ParseTimeOfDay(w.End)
	if err != nil {
		return true
	}

	if start <= end {
		return now >= start && now < end
	}
	return now >= start || now < end
}

// isAvailable is the shared availability rule: the enabled flag gates
// everything, and the window only applies when both bounds exist.
func isAvailable(enabled bool, w *TimeWindow, now TimeOfDay) bool {
	if !enabled {
		return false
	}
	if w == nil {
		return true
	}
	return w.Contains(now)
}

// Schedule evaluates availability against a fixed local timezone. The
// comparison is on time-of-day only; the calendar date of the instant
// never matters.
type Schedule struct {
	loc *time.Location
}

// NewSchedule loads the named timezone, e.g. "America/Chicago".
func NewSchedule(timezone string) (*Schedule, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &Schedule{loc: loc}, nil
}

// At projects an instant into the schedule's timezone as a TimeOfDay.
func (s *Schedule) At(t time.Time) TimeOfDay {
	local := t.In(s.loc)
	return TimeOfDay(local.Hour()*3600 + local.Minute()*60 + local.Second())
}

// Now is At(time.Now()).
func (s *Schedule) Now() TimeOfDay {
	return s.At(time.Now())
}

// ItemAvailable reports whether a food item is currently offerable.
func (s *Schedule) ItemAvailable(item MenuItem, at time.Time) bool {
	return isAvailable(item.Enabled, item.TimeWindow, s.At(at))
}

// DrinkAvailable reports whether a bar item is currently offerable.
func (s *Schedule) DrinkAvailable(item DrinkItem, at time.Time) bool {
	return isAvailable(item.Enabled, item.TimeWindow, s.At(at))
}

// AvailableItems filters a food collection down to currently offerable
// items, preserving order.
func (s *Schedule) AvailableItems(items []MenuItem, at time.Time) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if s.ItemAvailable(item, at) {
			out = append(out, item)
		}
	}
	return out
}

// AvailableDrinks filters a bar collection down to currently offerable
// items, preserving order.
func (s *Schedule) AvailableDrinks(items []DrinkItem, at time.Time) []DrinkItem {
	out := make([]DrinkItem, 0, len(items))
	for _, item := range items {
		if s.DrinkAvailable(item, at) {
			out = append(out, item)
		}
	}
	return out
}
