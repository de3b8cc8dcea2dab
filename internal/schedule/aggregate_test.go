package schedule

import (
	"reflect"
	"testing"
)

func TestAggregate(t *testing.T) {
	providerA := Contributor{
		Gender: GenderMale, Active: true,
		Slots: Weekly{Sunday: {{Hour: 9}, {Hour: 10}}},
	}
	providerB := Contributor{
		Gender: GenderMale, Active: true,
		Slots: Weekly{Sunday: {{Hour: 10}, {Hour: 11}}},
	}
	providerC := Contributor{
		Gender: GenderFemale, AgeGroup: AgeGroupChild, Active: true,
		Slots: Weekly{Monday: {{Hour: 15}}},
	}
	inactive := Contributor{
		Gender: GenderMale, Active: false,
		Slots: Weekly{Saturday: {{Hour: 8}}},
	}

	tests := []struct {
		name         string
		contributors []Contributor
		audience     Audience
		want         Weekly
	}{
		{
			name:         "union of two male providers is deduplicated and sorted",
			contributors: []Contributor{providerA, providerB},
			audience:     Audience{Gender: GenderMale},
			want:         Weekly{Sunday: {{Hour: 9}, {Hour: 10}, {Hour: 11}}},
		},
		{
			name:         "gender filter excludes non-matching providers",
			contributors: []Contributor{providerA, providerC},
			audience:     Audience{Gender: GenderFemale},
			want:         Weekly{Monday: {{Hour: 15}}},
		},
		{
			name:         "age group filter",
			contributors: []Contributor{providerA, providerC},
			audience:     Audience{AgeGroup: AgeGroupChild},
			// A has no age group and serves any audience age.
			want: Weekly{Sunday: {{Hour: 9}, {Hour: 10}}, Monday: {{Hour: 15}}},
		},
		{
			name:         "inactive provider contributes nothing",
			contributors: []Contributor{providerA, inactive},
			audience:     Audience{Gender: GenderMale},
			want:         Weekly{Sunday: {{Hour: 9}, {Hour: 10}}},
		},
		{
			name:         "zero audience matches every active provider",
			contributors: []Contributor{providerA, providerC, inactive},
			audience:     Audience{},
			want:         Weekly{Sunday: {{Hour: 9}, {Hour: 10}}, Monday: {{Hour: 15}}},
		},
		{
			name:         "no matching providers yields empty set, not error",
			contributors: []Contributor{providerC},
			audience:     Audience{Gender: GenderMale},
			want:         Weekly{},
		},
		{
			name:         "no providers at all",
			contributors: nil,
			audience:     Audience{Gender: GenderFemale},
			want:         Weekly{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.contributors, tt.audience)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aggregate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Aggregating the same inputs twice must yield identical output: there is no
// accumulation across calls.
func TestAggregateIdempotent(t *testing.T) {
	contributors := []Contributor{
		{Gender: GenderMale, Active: true, Slots: Weekly{Sunday: {{Hour: 9}}}},
		{Gender: GenderMale, Active: true, Slots: Weekly{Sunday: {{Hour: 9}, {Hour: 11}}}},
	}
	audience := Audience{Gender: GenderMale}

	first := Aggregate(contributors, audience)
	second := Aggregate(contributors, audience)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs: %v vs %v", first, second)
	}
}

// Aggregation must not mutate the contributors' own slot sets.
func TestAggregateDoesNotMutateInput(t *testing.T) {
	slots := Weekly{Sunday: {{Hour: 11}, {Hour: 9}}}
	slots.Normalize()
	orig := Weekly{Sunday: {{Hour: 9}, {Hour: 11}}}

	Aggregate([]Contributor{
		{Gender: GenderMale, Active: true, Slots: slots},
		{Gender: GenderMale, Active: true, Slots: Weekly{Sunday: {{Hour: 10}}}},
	}, Audience{})

	if !reflect.DeepEqual(slots, orig) {
		t.Errorf("contributor slots mutated: %v, want %v", slots, orig)
	}
}
