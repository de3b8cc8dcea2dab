package timezone

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		chain []Resolver
		want  string
	}{
		{
			name:  "first valid wins",
			chain: []Resolver{FromValue("Asia/Dubai"), Fixed("Europe/London")},
			want:  "Asia/Dubai",
		},
		{
			name:  "empty value skipped",
			chain: []Resolver{FromValue(""), Fixed("Europe/London")},
			want:  "Europe/London",
		},
		{
			name:  "invalid candidate skipped, chain continues",
			chain: []Resolver{FromValue("Not/AZone"), Fixed("America/Bogota")},
			want:  "America/Bogota",
		},
		{
			name:  "exhausted chain falls back to UTC",
			chain: []Resolver{FromValue(""), FromValue("garbage")},
			want:  "UTC",
		},
		{
			name:  "empty chain",
			chain: nil,
			want:  "UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.chain...); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
