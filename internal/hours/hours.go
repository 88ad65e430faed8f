// Package hours derives open/closed status from the weekly opening hours.
package hours

import (
	"strconv"
	"strings"
	"time"

	"github.com/221BLondon/Mymenu/internal/models"
)

var weekdays = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// DayKey maps the time's weekday onto the openingHours key.
func DayKey(now time.Time) string {
	return weekdays[now.Weekday()]
}

// Today looks up the opening window for the day of the given time. The
// second result is false when no entry exists for that day.
func Today(s models.RestaurantSettings, now time.Time) (models.DayHours, bool) {
	h, ok := s.OpeningHours[DayKey(now)]
	return h, ok
}

// IsOpen reports whether the time falls inside today's opening window,
// boundaries inclusive. A missing or unparsable window reads as closed.
// Windows crossing midnight (close before open) read as closed after
// midnight; overnight ranges are a known limitation, not special-cased.
func IsOpen(s models.RestaurantSettings, now time.Time) bool {
	h, ok := Today(s, now)
	if !ok {
		return false
	}
	open, err := clockValue(h.Open)
	if err != nil {
		return false
	}
	closing, err := clockValue(h.Close)
	if err != nil {
		return false
	}
	current := now.Hour()*100 + now.Minute()
	return current >= open && current <= closing
}

// clockValue turns "HH:MM" into its HHMM integer, e.g. "09:30" -> 930.
func clockValue(t string) (int, error) {
	return strconv.Atoi(strings.Replace(t, ":", "", 1))
}
