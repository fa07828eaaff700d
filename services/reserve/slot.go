package reserve

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"elicense-watch/lib/scrapers/elicense"
	"elicense-watch/lib/timezone"
)

// Weekday follows the reservation grid's convention of weeks starting
// on monday, so Monday is 0 and Sunday is 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Slot is one bookable lesson slot for the duration of a single
// collection run. Weekday is always recomputed from the calendar date,
// never taken from the scraped weekday text, which can lie. Label keeps
// the site's own display strings verbatim because that is what ends up
// in the notification, and it is also the identity used for dedup.
type Slot struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Weekday Weekday
	Label   string
}

// Time is the slot's starting instant in JST, seconds zeroed.
func (s Slot) Time() time.Time {
	return time.Date(s.Year, time.Month(s.Month), s.Day, s.Hour, s.Minute, 0, 0, timezone.Location)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseSlot builds a Slot out of one scraped attribute tuple. Anything
// missing or malformed fails the whole tuple, there is no defaulting.
func ParseSlot(raw elicense.RawSlot) (Slot, error) {
	if raw.DateCode == "" || raw.Date == "" || raw.Time == "" || raw.Week == "" {
		return Slot{}, fmt.Errorf("slot attributes missing: %+v", raw)
	}

	if len(raw.DateCode) != 8 || !isDigits(raw.DateCode) {
		return Slot{}, fmt.Errorf("malformed date code %q", raw.DateCode)
	}
	year, _ := strconv.Atoi(raw.DateCode[0:4])
	month, _ := strconv.Atoi(raw.DateCode[4:6])
	day, _ := strconv.Atoi(raw.DateCode[6:8])

	parts := strings.Split(raw.Time, ":")
	if len(parts) != 2 {
		return Slot{}, fmt.Errorf("malformed time %q", raw.Time)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Slot{}, fmt.Errorf("malformed hour in %q: %w", raw.Time, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Slot{}, fmt.Errorf("malformed minute in %q: %w", raw.Time, err)
	}

	// time.Date normalizes out-of-range components (june 31st becomes
	// july 1st), so a clean round trip is the validity check
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, timezone.Location)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return Slot{}, fmt.Errorf("%q %q is not a real date and time", raw.DateCode, raw.Time)
	}

	return Slot{
		Year:    year,
		Month:   month,
		Day:     day,
		Hour:    hour,
		Minute:  minute,
		Weekday: Weekday((int(t.Weekday()) + 6) % 7),
		Label:   raw.Date + raw.Week + " " + raw.Time,
	}, nil
}

// ParseSlots maps one page's raw tuples to slots, dropping tuples that
// fail to parse and keeping the order of the ones that succeed.
func ParseSlots(ctx context.Context, raws []elicense.RawSlot) []Slot {
	var slots []Slot
	for _, raw := range raws {
		slot, err := ParseSlot(raw)
		if err != nil {
			slog.DebugContext(ctx, "skipping malformed slot", "err", err)
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}
