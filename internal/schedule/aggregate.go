package schedule

// Gender is the staffing attribute used to match providers to a requested
// audience.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether g is a known gender category.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// AgeGroup is the optional audience age category. Not every deployment uses
// it; providers without one match any age audience.
type AgeGroup string

const (
	AgeGroupAdult AgeGroup = "adult"
	AgeGroupChild AgeGroup = "child"
)

// IsValid reports whether a is a known age group.
func (a AgeGroup) IsValid() bool {
	return a == AgeGroupAdult || a == AgeGroupChild
}

// Audience is the caller-supplied predicate for aggregation. An empty field
// means "any": Audience{Gender: GenderMale} selects male providers of every
// age group, the zero Audience selects every active provider.
type Audience struct {
	Gender   Gender
	AgeGroup AgeGroup
}

// Contributor is one provider's availability as seen by the aggregator:
// just the matching attributes plus the parsed weekly slot set.
type Contributor struct {
	Gender   Gender
	AgeGroup AgeGroup
	Active   bool
	Slots    Weekly
}

// matches applies the audience predicate to a contributor. A contributor
// without an age group serves any audience age.
func (a Audience) matches(c Contributor) bool {
	if !c.Active {
		return false
	}
	if a.Gender != "" && c.Gender != a.Gender {
		return false
	}
	if a.AgeGroup != "" && c.AgeGroup != "" && c.AgeGroup != a.AgeGroup {
		return false
	}
	return true
}

// Aggregate merges the availability of every active contributor matching the
// audience into one weekly set: per-day union, deduplicated, ascending.
// No matching contributors is a normal state and yields an empty set, not
// an error.
func Aggregate(contributors []Contributor, audience Audience) Weekly {
	merged := Weekly{}
	for _, c := range contributors {
		if !audience.matches(c) {
			continue
		}
		for day, times := range c.Slots {
			merged[day] = append(merged[day], times...)
		}
	}

	merged.Normalize()
	return merged
}
