package reserve

import "time"

// how far ahead a slot may start and still be worth a notification
const lookaheadDays = 14

// Eligible reports whether a slot should be included in a notification,
// judged against a single per-run snapshot of the current time.
//
// The lookahead gate comes first: a slot past the planning horizon is
// never eligible no matter which day rule it would hit. Within the
// horizon the slots that matter are weekends at any hour, weekday
// evenings from 19:00, and the wednesday 13:00 lesson.
func Eligible(s Slot, now time.Time) bool {
	if s.Time().After(now.AddDate(0, 0, lookaheadDays)) {
		return false
	}

	switch {
	case s.Weekday == Saturday || s.Weekday == Sunday:
		return true
	case s.Weekday <= Friday && s.Hour >= 19:
		return true
	case s.Weekday == Wednesday && s.Hour == 13:
		return true
	}
	return false
}
