package schedule

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"09:00", TimeOfDay{Hour: 9}, false},
		{"09:00:00", TimeOfDay{Hour: 9}, false},
		{"23:30", TimeOfDay{Hour: 23, Minute: 30}, false},
		{"00:00:59", TimeOfDay{Second: 59}, false},
		{" 10:00 ", TimeOfDay{Hour: 10}, false},
		{"24:00", TimeOfDay{}, true},
		{"9:00", TimeOfDay{}, true}, // stored times are zero padded
		{"09:60", TimeOfDay{}, true},
		{"garbage", TimeOfDay{}, true},
		{"", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestTimeOfDayFormats(t *testing.T) {
	tests := []struct {
		in       TimeOfDay
		storage  string
		display  string
		twelveHr string
	}{
		{TimeOfDay{Hour: 9}, "09:00:00", "09:00", "9:00 AM"},
		{TimeOfDay{Hour: 0}, "00:00:00", "00:00", "12:00 AM"},
		{TimeOfDay{Hour: 12}, "12:00:00", "12:00", "12:00 PM"},
		{TimeOfDay{Hour: 15, Minute: 30}, "15:30:00", "15:30", "3:30 PM"},
		{TimeOfDay{Hour: 23, Minute: 5, Second: 7}, "23:05:07", "23:05", "11:05 PM"},
	}

	for _, tt := range tests {
		if got := tt.in.Storage(); got != tt.storage {
			t.Errorf("%+v Storage() = %q, want %q", tt.in, got, tt.storage)
		}
		if got := tt.in.Display(); got != tt.display {
			t.Errorf("%+v Display() = %q, want %q", tt.in, got, tt.display)
		}
		if got := tt.in.Display12h(); got != tt.twelveHr {
			t.Errorf("%+v Display12h() = %q, want %q", tt.in, got, tt.twelveHr)
		}
	}
}

func TestTimeOfDayOnHour(t *testing.T) {
	if !(TimeOfDay{Hour: 7}).OnHour() {
		t.Error("07:00:00 should be on the hour")
	}
	if (TimeOfDay{Hour: 7, Minute: 30}).OnHour() {
		t.Error("07:30:00 should not be on the hour")
	}
}
