// Package weather provides the current-conditions collaborator: a
// closed condition enumeration consumed by the care engine and an
// Open-Meteo client that produces observations for the configured
// location.
package weather

import "strings"

// Condition is the categorical weather state the care engine adjusts
// its derivation by.
type Condition string

const (
	ConditionSunny     Condition = "sunny"
	ConditionRainy     Condition = "rainy"
	ConditionHot       Condition = "hot"
	ConditionCold      Condition = "cold"
	ConditionTemperate Condition = "temperate"
)

// ParseCondition maps a free-form condition string onto the closed
// enumeration. Unrecognized values fall back to temperate, which the
// engine treats as the no-adjustment policy.
func ParseCondition(s string) Condition {
	switch Condition(strings.ToLower(strings.TrimSpace(s))) {
	case ConditionSunny:
		return ConditionSunny
	case ConditionRainy:
		return ConditionRainy
	case ConditionHot:
		return ConditionHot
	case ConditionCold:
		return ConditionCold
	default:
		return ConditionTemperate
	}
}

// Temperature thresholds for classifying an observation as hot or cold.
const (
	hotThresholdC  = 30.0
	coldThresholdC = 5.0
)

// Classify derives the categorical condition from a WMO weather code
// and the current temperature. Rain takes precedence over temperature
// extremes: a rainy day is rainy regardless of how hot it is.
func Classify(wmoCode int, temperatureC float64) Condition {
	if isRainCode(wmoCode) {
		return ConditionRainy
	}
	switch {
	case temperatureC >= hotThresholdC:
		return ConditionHot
	case temperatureC <= coldThresholdC:
		return ConditionCold
	case wmoCode <= 1:
		return ConditionSunny
	default:
		return ConditionTemperate
	}
}

// isRainCode reports whether a WMO weather interpretation code means
// precipitation (drizzle, rain, showers, thunderstorm).
func isRainCode(code int) bool {
	switch {
	case code >= 51 && code <= 67:
		return true
	case code >= 80 && code <= 82:
		return true
	case code >= 95 && code <= 99:
		return true
	default:
		return false
	}
}
