// Package timezone resolves which display timezone to use for a schedule
// request. The policy is an explicit ordered chain of resolvers; the first
// one that yields a valid IANA zone wins, and the chain always terminates
// with UTC.
package timezone

import (
	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

// Resolver is one step of the resolution chain. It returns the candidate
// zone and whether it produced one at all; validity is checked by the chain.
type Resolver func() (string, bool)

// Fixed returns a resolver that always yields the given zone.
// Useful for the configured site default.
func Fixed(zone string) Resolver {
	return func() (string, bool) {
		return zone, zone != ""
	}
}

// FromValue returns a resolver over an already-extracted request value
// (query parameter, header, stored user preference).
func FromValue(value string) Resolver {
	return func() (string, bool) {
		return value, value != ""
	}
}

// Resolve runs the chain in order and returns the first candidate that is a
// valid IANA zone. Candidates that fail validation are skipped, not fatal.
// If nothing in the chain yields a valid zone the result is "UTC".
func Resolve(chain ...Resolver) string {
	for _, r := range chain {
		zone, ok := r()
		if !ok {
			continue
		}
		if schedule.IsValidZone(zone) {
			return zone
		}
	}
	return "UTC"
}
