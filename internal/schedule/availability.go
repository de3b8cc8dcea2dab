package schedule

import (
	"encoding/json"
	"sort"
)

// Weekly maps each day of the week to the UTC times a lesson can start on
// that day. Slices are kept sorted ascending with no duplicates. Days with
// no slots are simply absent from the map.
type Weekly map[Day][]TimeOfDay

// ParseAvailabilityJSON decodes the persisted availability shape: a JSON
// object keyed by lowercase English day name, each value an array of UTC
// time strings.
//
// The decoder is deliberately tolerant of partially-invalid stored data:
// missing days are treated as empty, non-array values are dropped, and
// malformed or off-hour time strings are dropped. One corrupt provider
// record must never fail a whole schedule read.
func ParseAvailabilityJSON(raw []byte) Weekly {
	if len(raw) == 0 {
		return Weekly{}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Weekly{}
	}

	w := Weekly{}
	for key, val := range obj {
		day, err := ParseDay(key)
		if err != nil {
			continue
		}

		var times []string
		if err := json.Unmarshal(val, &times); err != nil {
			continue
		}

		for _, s := range times {
			t, err := ParseTimeOfDay(s)
			if err != nil || !t.OnHour() {
				continue
			}
			w[day] = append(w[day], t)
		}
	}

	w.Normalize()
	return w
}

// MarshalJSON encodes the weekly set back into the persisted day-name-keyed
// shape with "HH:MM:SS" values, omitting empty days.
func (w Weekly) MarshalJSON() ([]byte, error) {
	obj := make(map[string][]string, len(w))
	for day, times := range w {
		if len(times) == 0 {
			continue
		}
		strs := make([]string, len(times))
		for i, t := range times {
			strs[i] = t.Storage()
		}
		obj[day.String()] = strs
	}
	return json.Marshal(obj)
}

// Contains reports whether the weekly set has a slot on day at the given
// minute. Seconds are ignored so that "09:00" matches a stored "09:00:00".
func (w Weekly) Contains(day Day, t TimeOfDay) bool {
	for _, have := range w[day] {
		if have.sameMinute(t) {
			return true
		}
	}
	return false
}

// SlotCount returns the total number of slots across all days.
func (w Weekly) SlotCount() int {
	n := 0
	for _, times := range w {
		n += len(times)
	}
	return n
}

// Normalize sorts each day ascending and removes duplicates and empty days.
func (w Weekly) Normalize() {
	for day, times := range w {
		if len(times) == 0 {
			delete(w, day)
			continue
		}

		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

		dedup := times[:1]
		for _, t := range times[1:] {
			if t != dedup[len(dedup)-1] {
				dedup = append(dedup, t)
			}
		}
		w[day] = dedup
	}
}
