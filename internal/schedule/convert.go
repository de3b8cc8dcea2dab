package schedule

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrInvalidTimezone is returned when a zone name is not present in the
// system's IANA timezone database.
var ErrInvalidTimezone = errors.New("invalid timezone")

// Conversions anchor the recurring weekly grid to the first week of January
// 2006 (Jan 1 2006 is a Sunday), so the anchor date for a Day is simply
// 2006-01-(1+day) and weekday math lines up with time.Weekday numbering.
// Only the wall-clock offset matters; the specific week is irrelevant as
// long as every conversion uses the same one. Zones that observe DST are
// therefore converted with their January offset, which keeps results stable
// year round.
const anchorYear = 2006

// LoadZone resolves an IANA zone name against the system timezone database.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// IsValidZone reports whether name resolves in the IANA database.
func IsValidZone(name string) bool {
	_, err := LoadZone(name)
	return err == nil
}

// ToUTC converts a (day, time) pair expressed in sourceZone into UTC.
// When the conversion crosses midnight the returned day advances or
// regresses by one, cyclically.
func ToUTC(day Day, t TimeOfDay, sourceZone string) (Day, TimeOfDay, error) {
	loc, err := LoadZone(sourceZone)
	if err != nil {
		return day, t, err
	}

	local := anchorTime(day, t, loc)
	return splitInstant(local.UTC())
}

// FromUTC converts a UTC (day, time) pair into targetZone local time.
func FromUTC(day Day, t TimeOfDay, targetZone string) (Day, TimeOfDay, error) {
	loc, err := LoadZone(targetZone)
	if err != nil {
		return day, t, err
	}

	utc := anchorTime(day, t, time.UTC)
	return splitInstant(utc.In(loc))
}

// fromUTCLenient is FromUTC with the display-path failure policy applied:
// a conversion failure degrades to UTC passthrough with a warning rather
// than blocking the caller from seeing or booking the slot.
func fromUTCLenient(day Day, t TimeOfDay, targetZone string) (Day, TimeOfDay) {
	localDay, localTime, err := FromUTC(day, t, targetZone)
	if err != nil {
		log.Printf("warning: cannot convert %s %s to %q, showing UTC: %v", day, t.Display(), targetZone, err)
		return day, t
	}
	return localDay, localTime
}

func anchorTime(day Day, t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(anchorYear, time.January, 1+int(day), t.Hour, t.Minute, t.Second, 0, loc)
}

func splitInstant(instant time.Time) (Day, TimeOfDay, error) {
	d := Day(instant.Weekday())
	h, m, s := instant.Clock()
	return d, TimeOfDay{Hour: h, Minute: m, Second: s}, nil
}
