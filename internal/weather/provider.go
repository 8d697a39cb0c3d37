package weather

import (
	"context"
	"time"
)

// Observation is a snapshot of current conditions at the configured
// location.
type Observation struct {
	Condition    Condition `json:"condition"`
	TemperatureC float64   `json:"temperature_c"`
	WindSpeedKmh float64   `json:"wind_speed_kmh"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// Provider fetches the current weather observation.
type Provider interface {
	Current(ctx context.Context) (Observation, error)
}
