package schedule

import "sort"

// ProjectedSlot is one selectable slot rendered for a display timezone.
// UTCDay and UTCTime are the slot's immutable identity; the local fields
// are presentation only and must never be used for selection matching.
type ProjectedSlot struct {
	UTCDay   Day
	UTCTime  TimeOfDay
	LocalDay Day
	Local    TimeOfDay
	Timezone string
}

// DaySchedule is one of the seven fixed output buckets of a projection.
type DaySchedule struct {
	Day      Day
	Label    string
	HasSlots bool
	Slots    []ProjectedSlot
}

// Project renders an aggregated UTC weekly set into displayZone local time.
// The result always has exactly 7 entries in Sunday-first order; days left
// without slots are kept with HasSlots=false so callers can render an empty
// state. Slots whose conversion crosses midnight are re-bucketed into the
// local day they fall on, and every bucket is re-sorted by local time.
func Project(weekly Weekly, displayZone string) []DaySchedule {
	buckets := make(map[Day][]ProjectedSlot, 7)

	// "UTC" bypasses the converter entirely. This guarantees identical
	// output whether or not the timezone database is available.
	passthrough := displayZone == "" || displayZone == "UTC"

	for day, times := range weekly {
		for _, t := range times {
			slot := ProjectedSlot{
				UTCDay:   day,
				UTCTime:  t,
				LocalDay: day,
				Local:    t,
				Timezone: "UTC",
			}
			if !passthrough {
				slot.LocalDay, slot.Local = fromUTCLenient(day, t, displayZone)
				slot.Timezone = displayZone
			}
			buckets[slot.LocalDay] = append(buckets[slot.LocalDay], slot)
		}
	}

	out := make([]DaySchedule, 0, 7)
	for _, day := range AllDays() {
		slots := buckets[day]
		sort.Slice(slots, func(i, j int) bool {
			if slots[i].Local != slots[j].Local {
				return slots[i].Local.Before(slots[j].Local)
			}
			// Stable order for slots that collapse onto the same local
			// time (possible around DST gaps).
			return slots[i].UTCDay < slots[j].UTCDay
		})

		out = append(out, DaySchedule{
			Day:      day,
			Label:    day.Label(),
			HasSlots: len(slots) > 0,
			Slots:    slots,
		})
	}

	return out
}
