package schedule

import "fmt"

// Day is a day of the week. The zero value is Sunday, matching the canonical
// Sunday-first ordering used everywhere slots are grouped or displayed.
type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var dayLabels = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// AllDays returns the seven days in canonical Sunday-first order.
func AllDays() [7]Day {
	return [7]Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// ParseDay parses a lowercase English day name ("sunday".."saturday").
func ParseDay(s string) (Day, error) {
	for i, name := range dayNames {
		if s == name {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day name %q", s)
}

// IsValid reports whether d is one of the seven canonical days.
func (d Day) IsValid() bool {
	return d >= Sunday && d <= Saturday
}

// String returns the lowercase storage key for the day ("sunday".."saturday").
func (d Day) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("day(%d)", int(d))
	}
	return dayNames[d]
}

// Label returns the capitalized display name for the day.
func (d Day) Label() string {
	if !d.IsValid() {
		return d.String()
	}
	return dayLabels[d]
}

// Shift moves the day forward or backward by n days, wrapping cyclically
// (Saturday+1 is Sunday, Sunday-1 is Saturday).
func (d Day) Shift(n int) Day {
	return Day(((int(d)+n)%7 + 7) % 7)
}

// Next returns the following day.
func (d Day) Next() Day { return d.Shift(1) }

// Prev returns the preceding day.
func (d Day) Prev() Day { return d.Shift(-1) }
