package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/weather"
)

var today = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func mediumPlant() model.Plant {
	return model.Plant{
		ID:                "rose",
		Name:              "Rose",
		WateringFrequency: model.WateringMedium,
		Fertilizer:        "balanced",
	}
}

func plantAddedDaysAgo(days int) model.UserPlant {
	return model.UserPlant{
		ID:        "rose",
		DateAdded: today.AddDate(0, 0, -days),
	}
}

func wateredDaysAgo(up model.UserPlant, days int) model.UserPlant {
	up.CareHistory = append(up.CareHistory, model.CareHistoryEntry{
		PlantID: up.ID,
		Action:  model.ActionWater,
		Day:     today.AddDate(0, 0, -days).Format("2006-01-02"),
	})
	return up
}

func fertilizedDaysAgo(up model.UserPlant, days int) model.UserPlant {
	up.CareHistory = append(up.CareHistory, model.CareHistoryEntry{
		PlantID: up.ID,
		Action:  model.ActionFertilize,
		Day:     today.AddDate(0, 0, -days).Format("2006-01-02"),
	})
	return up
}

func kinds(actions []model.CareAction) []model.ActionKind {
	out := make([]model.ActionKind, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Kind)
	}
	return out
}

func TestDeriveNothingDueOnAdditionDay(t *testing.T) {
	e := NewEngine(DefaultPolicy())
	up := plantAddedDaysAgo(0)

	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	assert.Empty(t, actions)
}

func TestDeriveWateringDueAtCadence(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	// Medium cadence is 2 days: not due after 1, due after 2.
	up := wateredDaysAgo(plantAddedDaysAgo(10), 1)
	assert.Empty(t, kinds(e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)))

	up = wateredDaysAgo(plantAddedDaysAgo(10), 2)
	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionWater, actions[0].Kind)
	assert.Equal(t, model.PriorityMedium, actions[0].Priority)
}

func TestDeriveFallsBackToDateAdded(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	// Never watered: the cadence base is the adoption date.
	up := plantAddedDaysAgo(2)
	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	assert.Contains(t, kinds(actions), model.ActionWater)
}

func TestDeriveOverdueWateringIsHighPriority(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	// 4 days since watering is twice the medium cadence.
	up := wateredDaysAgo(plantAddedDaysAgo(20), 4)
	// Keep feeding quiet so only watering shows up.
	up = fertilizedDaysAgo(up, 0)
	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	require.Len(t, actions, 1)
	assert.Equal(t, model.PriorityHigh, actions[0].Priority)
}

func TestDeriveRainSuppressesWatering(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	up := wateredDaysAgo(plantAddedDaysAgo(20), 2)
	actions := e.Derive(up, mediumPlant(), today, weather.ConditionRainy)
	assert.NotContains(t, kinds(actions), model.ActionWater)
}

func TestDeriveRainDoesNotSuppressOverdueWatering(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	// 10 days without water is far past the drought threshold; rain
	// is not enough.
	up := wateredDaysAgo(plantAddedDaysAgo(30), 10)
	// Keep feeding quiet so only watering shows up.
	up = fertilizedDaysAgo(up, 0)
	actions := e.Derive(up, mediumPlant(), today, weather.ConditionRainy)
	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionWater, actions[0].Kind)
	assert.Equal(t, model.PriorityHigh, actions[0].Priority)
}

func TestDeriveHeatShortensCadence(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	// Medium cadence 2 shortens to 1 under heat.
	up := wateredDaysAgo(plantAddedDaysAgo(20), 1)
	actions := e.Derive(up, mediumPlant(), today, weather.ConditionHot)
	assert.Contains(t, kinds(actions), model.ActionWater)
}

func TestDeriveHeatDoesNotAffectLowCadence(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	plant := mediumPlant()
	plant.WateringFrequency = model.WateringLow

	// Low cadence is 3 days; heat leaves it alone.
	up := wateredDaysAgo(plantAddedDaysAgo(20), 2)
	actions := e.Derive(up, plant, today, weather.ConditionHot)
	assert.NotContains(t, kinds(actions), model.ActionWater)
}

func TestDeriveFertilizerPeriods(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	tests := []struct {
		name     string
		category string
		days     int
		due      bool
	}{
		{"default period not yet", "balanced", 13, false},
		{"default period due", "balanced", 14, true},
		{"succulent not yet", "cactus or succulent", 29, false},
		{"succulent due", "cactus or succulent", 30, true},
		{"low-nitrogen due", "low-nitrogen", 21, true},
		{"combined low-nitrogen due", "balanced, low-nitrogen", 21, true},
		{"unknown category uses default", "seaweed extract", 14, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plant := mediumPlant()
			plant.Fertilizer = tt.category

			up := fertilizedDaysAgo(plantAddedDaysAgo(90), tt.days)
			// Keep watering quiet so only feeding shows up.
			up = wateredDaysAgo(up, 0)

			actions := e.Derive(up, plant, today, weather.ConditionTemperate)
			if tt.due {
				assert.Contains(t, kinds(actions), model.ActionFertilize)
			} else {
				assert.NotContains(t, kinds(actions), model.ActionFertilize)
			}
		})
	}
}

func TestDeriveLongNeglectedFertilizerIsMediumPriority(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	up := fertilizedDaysAgo(plantAddedDaysAgo(90), 28)
	up = wateredDaysAgo(up, 0)

	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionFertilize, actions[0].Kind)
	assert.Equal(t, model.PriorityMedium, actions[0].Priority)
}

func TestDeriveOrdersByPriority(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	// Watering long overdue (high), feeding just due (low).
	up := plantAddedDaysAgo(90)
	up = wateredDaysAgo(up, 6)
	up = fertilizedDaysAgo(up, 14)

	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	require.Len(t, actions, 2)
	assert.Equal(t, model.PriorityHigh, actions[0].Priority)
	assert.Equal(t, model.ActionWater, actions[0].Kind)
	assert.Equal(t, model.PriorityLow, actions[1].Priority)
}

func TestDeriveEqualPriorityKeepsWateringFirst(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	// Both just due: watering medium, feeding twice past its period
	// is also medium. The stable sort keeps insertion order.
	up := plantAddedDaysAgo(90)
	up = wateredDaysAgo(up, 2)
	up = fertilizedDaysAgo(up, 28)

	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	require.Len(t, actions, 2)
	assert.Equal(t, model.PriorityMedium, actions[0].Priority)
	assert.Equal(t, model.PriorityMedium, actions[1].Priority)
	assert.Equal(t, model.ActionWater, actions[0].Kind)
	assert.Equal(t, model.ActionFertilize, actions[1].Kind)
}

func TestDeriveIsDeterministic(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	up := plantAddedDaysAgo(90)
	up = wateredDaysAgo(up, 4)
	up = fertilizedDaysAgo(up, 15)

	first := e.Derive(up, mediumPlant(), today, weather.ConditionSunny)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Derive(up, mediumPlant(), today, weather.ConditionSunny))
	}
}

func TestDeriveCompletionTodayResetsCadence(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	up := wateredDaysAgo(plantAddedDaysAgo(20), 3)
	require.NotEmpty(t, e.Derive(up, mediumPlant(), today, weather.ConditionTemperate))

	// Recording today's watering removes it from the derived list.
	up = wateredDaysAgo(up, 0)
	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	assert.NotContains(t, kinds(actions), model.ActionWater)
}

func TestDeriveActionIDEncodesKindAndDay(t *testing.T) {
	e := NewEngine(DefaultPolicy())

	up := wateredDaysAgo(plantAddedDaysAgo(20), 2)
	// Keep feeding quiet so only watering shows up.
	up = fertilizedDaysAgo(up, 0)
	actions := e.Derive(up, mediumPlant(), today, weather.ConditionTemperate)
	require.Len(t, actions, 1)
	assert.Equal(t, "water-2025-06-15", actions[0].ID)
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, 6, 14, 23, 50, 0, 0, time.UTC)
	early := time.Date(2025, 6, 15, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 1, daysBetween(late, early))
	assert.Equal(t, 0, daysBetween(early, early))
}
