package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timePattern accepts "HH:MM" and "HH:MM:SS".
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])(?::([0-5][0-9]))?$`)

// TimeOfDay is a wall-clock time of day without a date or zone attached.
// Stored provider slots are always on the hour; converted display times may
// carry minutes when the display zone has a fractional offset.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("malformed time of day %q", s)
	}

	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	sec := 0
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
	}

	return TimeOfDay{Hour: h, Minute: min, Second: sec}, nil
}

// OnHour reports whether the time sits on a 60-minute boundary.
// Stored availability is fixed to 24 hourly slots per day.
func (t TimeOfDay) OnHour() bool {
	return t.Minute == 0 && t.Second == 0
}

// Storage returns the canonical "HH:MM:SS" form used for persistence and
// for slot identity comparisons.
func (t TimeOfDay) Storage() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Display returns the "HH:MM" form used for presentation (seconds stripped).
func (t TimeOfDay) Display() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Display12h returns a human 12-hour form like "3:00 PM".
func (t TimeOfDay) Display12h() string {
	suffix := "AM"
	h := t.Hour
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute, suffix)
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// sameMinute compares two times ignoring seconds. Selection identity is
// minute-precise: stored "09:00:00" must match a submitted "09:00".
func (t TimeOfDay) sameMinute(other TimeOfDay) bool {
	return t.Hour == other.Hour && t.Minute == other.Minute
}
