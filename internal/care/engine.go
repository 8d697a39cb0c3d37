package care

import (
	"slices"
	"time"

	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/weather"
)

// Engine evaluates the cadence rules for a single (plant, date,
// weather) input. It holds only the policy and is safe for reuse.
type Engine struct {
	policy Policy
}

// NewEngine creates an engine with the given cadence policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Derive produces the ordered list of care actions due for the user
// plant on the given day. Ordering is by priority (high, medium, low)
// with ties kept in insertion order, watering before fertilizing.
//
// Completion feeds back through the care history: an action completed
// today resets its cadence base to today, so it no longer derives as
// due. Unrecognized weather conditions use the temperate
// (no-adjustment) policy.
func (e *Engine) Derive(
	up model.UserPlant,
	plant model.Plant,
	today time.Time,
	cond weather.Condition,
) []model.CareAction {
	var actions []model.CareAction

	if a, due := e.wateringAction(up, plant, today, cond); due {
		actions = append(actions, a)
	}
	if a, due := e.fertilizingAction(up, plant, today); due {
		actions = append(actions, a)
	}

	slices.SortStableFunc(actions, func(a, b model.CareAction) int {
		return a.Priority.Rank() - b.Priority.Rank()
	})

	return actions
}

// wateringAction evaluates the watering cadence with weather
// adjustments. Rain satisfies a due watering unless the plant is
// overdue beyond DroughtFactor times its cadence; heat shortens
// medium and high cadences by one day, to a minimum of one.
func (e *Engine) wateringAction(
	up model.UserPlant,
	plant model.Plant,
	today time.Time,
	cond weather.Condition,
) (model.CareAction, bool) {
	cadence := e.policy.wateringDays(plant.WateringFrequency)

	if cond == weather.ConditionHot &&
		plant.WateringFrequency != model.WateringLow {
		cadence--
		if cadence < 1 {
			cadence = 1
		}
	}

	base := up.LastCare(model.ActionWater)
	if base.IsZero() {
		base = up.DateAdded
	}
	days := daysBetween(base, today)

	if days < cadence {
		return model.CareAction{}, false
	}

	overdue := days >= cadence*e.policy.DroughtFactor
	if cond == weather.ConditionRainy && !overdue {
		// Rainfall counts as today's watering.
		return model.CareAction{}, false
	}

	priority := model.PriorityMedium
	if overdue {
		priority = model.PriorityHigh
	}

	return model.CareAction{
		ID:          model.ActionID(model.ActionWater, today),
		Name:        "actions.water.name",
		Description: "actions.water.description",
		Priority:    priority,
		Kind:        model.ActionWater,
	}, true
}

// fertilizingAction evaluates the fixed feeding period for the plant's
// fertilizer category. Feeding is independent of weather.
func (e *Engine) fertilizingAction(
	up model.UserPlant,
	plant model.Plant,
	today time.Time,
) (model.CareAction, bool) {
	period := e.policy.fertilizerDays(plant.Fertilizer)

	base := up.LastCare(model.ActionFertilize)
	if base.IsZero() {
		base = up.DateAdded
	}
	days := daysBetween(base, today)

	if days < period {
		return model.CareAction{}, false
	}

	priority := model.PriorityLow
	if days >= period*2 {
		priority = model.PriorityMedium
	}

	return model.CareAction{
		ID:          model.ActionID(model.ActionFertilize, today),
		Name:        "actions.fertilize.name",
		Description: "actions.fertilize.description",
		Priority:    priority,
		Kind:        model.ActionFertilize,
	}, true
}

// daysBetween returns the number of calendar days from a to b,
// ignoring the time of day of either.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
