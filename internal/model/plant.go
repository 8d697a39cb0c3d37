package model

import "fmt"

// WateringFrequency describes how often a species needs watering.
type WateringFrequency string

const (
	WateringLow    WateringFrequency = "low"
	WateringMedium WateringFrequency = "medium"
	WateringHigh   WateringFrequency = "high"
)

// LightPreference describes the light a species grows best in.
type LightPreference string

const (
	LightFullSun    LightPreference = "full sun"
	LightPartialSun LightPreference = "partial sun"
	LightShade      LightPreference = "shade"
)

// Range is an inclusive numeric range. Used for plant height (cm)
// and ideal temperature (°C).
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Valid reports whether the range is well-formed (Min <= Max).
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// Plant is an immutable catalog entry describing a species and its
// care attributes. Catalog plants are created at load time and never
// mutated.
type Plant struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	ScientificName    string            `json:"scientificName"`
	Image             string            `json:"image"`
	Description       string            `json:"description"`
	WateringFrequency WateringFrequency `json:"wateringFrequency"`
	LightPreference   LightPreference   `json:"lightPreference"`
	Fertilizer        string            `json:"fertilizer"`
	HeightRange       Range             `json:"heightRange"`
	IdealTemperature  Range             `json:"idealTemperature"`
	CareInstructions  string            `json:"careInstructions"`
}

// Validate checks the structural invariants of a catalog entry.
func (p Plant) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("plant has empty id")
	}
	if !p.HeightRange.Valid() {
		return fmt.Errorf("plant %s: height range min %d > max %d",
			p.ID, p.HeightRange.Min, p.HeightRange.Max)
	}
	if !p.IdealTemperature.Valid() {
		return fmt.Errorf("plant %s: temperature range min %d > max %d",
			p.ID, p.IdealTemperature.Min, p.IdealTemperature.Max)
	}
	return nil
}
