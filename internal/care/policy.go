// Package care derives the daily list of due care actions for a user
// plant from its species attributes, its care history, and the current
// weather. The derivation is pure: nothing is persisted and repeated
// calls with the same inputs yield the same output.
package care

import "github.com/nhle/plant-reminder/internal/model"

// Policy holds the cadence day-counts the engine derives from. The
// literal intervals are configuration, not law; DefaultPolicy matches
// the documented defaults.
type Policy struct {
	// WateringInterval maps a watering frequency tier to the number
	// of days between waterings.
	WateringInterval map[model.WateringFrequency]int

	// DroughtFactor is the multiple of the watering cadence beyond
	// which rain no longer satisfies a due watering.
	DroughtFactor int

	// FertilizerInterval maps a fertilizer category to its feeding
	// period in days. Categories not listed use DefaultFertilizerDays.
	FertilizerInterval map[string]int

	// DefaultFertilizerDays is the feeding period for categories
	// without an explicit interval.
	DefaultFertilizerDays int
}

// DefaultPolicy returns the standard cadence policy: low-need plants
// every 3 days, medium every 2, high daily; succulents fed monthly,
// low-nitrogen feeders every 3 weeks, everything else biweekly.
func DefaultPolicy() Policy {
	return Policy{
		WateringInterval: map[model.WateringFrequency]int{
			model.WateringLow:    3,
			model.WateringMedium: 2,
			model.WateringHigh:   1,
		},
		DroughtFactor: 2,
		FertilizerInterval: map[string]int{
			"cactus or succulent":    30,
			"low-nitrogen":           21,
			"balanced, low-nitrogen": 21,
		},
		DefaultFertilizerDays: 14,
	}
}

// wateringDays returns the base cadence for a frequency tier.
func (p Policy) wateringDays(freq model.WateringFrequency) int {
	if d, ok := p.WateringInterval[freq]; ok && d > 0 {
		return d
	}
	return p.WateringInterval[model.WateringMedium]
}

// fertilizerDays returns the feeding period for a fertilizer category.
func (p Policy) fertilizerDays(category string) int {
	if d, ok := p.FertilizerInterval[category]; ok && d > 0 {
		return d
	}
	return p.DefaultFertilizerDays
}
