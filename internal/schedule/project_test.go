package schedule

import (
	"reflect"
	"testing"
)

func TestProjectAlwaysReturnsSevenDays(t *testing.T) {
	for _, weekly := range []Weekly{
		{},
		{Sunday: {{Hour: 9}}},
		{Saturday: {{Hour: 23}}},
	} {
		got := Project(weekly, "UTC")
		if len(got) != 7 {
			t.Fatalf("Project() returned %d days, want 7", len(got))
		}
		for i, day := range AllDays() {
			if got[i].Day != day {
				t.Errorf("day %d = %v, want %v", i, got[i].Day, day)
			}
			if got[i].Label != day.Label() {
				t.Errorf("day %d label = %q, want %q", i, got[i].Label, day.Label())
			}
			if got[i].HasSlots != (len(got[i].Slots) > 0) {
				t.Errorf("day %v HasSlots = %v with %d slots", day, got[i].HasSlots, len(got[i].Slots))
			}
		}
	}
}

func TestProjectUTCFastPath(t *testing.T) {
	weekly := Weekly{Sunday: {{Hour: 9}, {Hour: 10}}}

	for _, zone := range []string{"UTC", ""} {
		got := Project(weekly, zone)

		sunday := got[int(Sunday)]
		if !sunday.HasSlots || len(sunday.Slots) != 2 {
			t.Fatalf("zone %q: sunday = %+v", zone, sunday)
		}
		for _, slot := range sunday.Slots {
			if slot.Local != slot.UTCTime || slot.LocalDay != slot.UTCDay {
				t.Errorf("zone %q: UTC projection altered slot %+v", zone, slot)
			}
			if slot.Timezone != "UTC" {
				t.Errorf("zone %q: slot timezone = %q, want UTC", zone, slot.Timezone)
			}
		}
	}
}

func TestProjectOffsetWithoutRollover(t *testing.T) {
	// Sunday 09:00, 10:00, 11:00 UTC shown in Dubai (UTC+4, no DST)
	// stays on Sunday at 13:00, 14:00, 15:00.
	weekly := Weekly{Sunday: {{Hour: 9}, {Hour: 10}, {Hour: 11}}}

	got := Project(weekly, "Asia/Dubai")

	var locals []string
	for _, slot := range got[int(Sunday)].Slots {
		locals = append(locals, slot.Local.Display())
	}
	want := []string{"13:00", "14:00", "15:00"}
	if !reflect.DeepEqual(locals, want) {
		t.Errorf("sunday local times = %v, want %v", locals, want)
	}
}

func TestProjectCrossMidnightRebucketing(t *testing.T) {
	// Friday 23:00 UTC in UTC+3 lands on Saturday 02:00 and must appear
	// under Saturday's bucket, not Friday's.
	weekly := Weekly{Friday: {{Hour: 23}}}

	got := Project(weekly, "Africa/Nairobi")

	if got[int(Friday)].HasSlots {
		t.Errorf("friday still has slots after rollover: %+v", got[int(Friday)].Slots)
	}

	saturday := got[int(Saturday)]
	if len(saturday.Slots) != 1 {
		t.Fatalf("saturday slots = %+v, want exactly one", saturday.Slots)
	}

	slot := saturday.Slots[0]
	if slot.Local != (TimeOfDay{Hour: 2}) || slot.LocalDay != Saturday {
		t.Errorf("slot local = (%v, %v), want (saturday, 02:00)", slot.LocalDay, slot.Local.Display())
	}
	// UTC identity is untouched by re-bucketing.
	if slot.UTCDay != Friday || slot.UTCTime != (TimeOfDay{Hour: 23}) {
		t.Errorf("slot UTC identity = (%v, %v), want (friday, 23:00)", slot.UTCDay, slot.UTCTime.Display())
	}
}

func TestProjectResortsAfterRebucketing(t *testing.T) {
	// Saturday 08:00 stays Saturday 11:00 local; Friday 23:00 becomes
	// Saturday 02:00 local and must sort ahead of it.
	weekly := Weekly{
		Friday:   {{Hour: 23}},
		Saturday: {{Hour: 8}},
	}

	got := Project(weekly, "Africa/Nairobi")

	saturday := got[int(Saturday)]
	if len(saturday.Slots) != 2 {
		t.Fatalf("saturday slots = %+v, want two", saturday.Slots)
	}
	if saturday.Slots[0].Local != (TimeOfDay{Hour: 2}) || saturday.Slots[1].Local != (TimeOfDay{Hour: 11}) {
		t.Errorf("saturday order = [%v %v], want [02:00 11:00]",
			saturday.Slots[0].Local.Display(), saturday.Slots[1].Local.Display())
	}
}

func TestProjectUnknownZoneDegradesToUTC(t *testing.T) {
	weekly := Weekly{Monday: {{Hour: 14}}}

	got := Project(weekly, "Not/AZone")

	monday := got[int(Monday)]
	if len(monday.Slots) != 1 {
		t.Fatalf("monday slots = %+v, want one", monday.Slots)
	}
	if monday.Slots[0].Local != (TimeOfDay{Hour: 14}) {
		t.Errorf("slot local = %v, want UTC passthrough 14:00", monday.Slots[0].Local.Display())
	}
}
