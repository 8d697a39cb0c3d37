package model

import "time"

// CareHistoryEntry records a single completed care action for a user
// plant. Entries are append-only; they are removed only when the owning
// UserPlant is deleted.
type CareHistoryEntry struct {
	// ID is the internal row identifier.
	ID string `json:"id" db:"id"`

	// PlantID references the owning UserPlant (the catalog id).
	PlantID string `json:"plant_id" db:"plant_id"`

	// Action is the kind of care that was performed.
	Action ActionKind `json:"action" db:"action"`

	// Day is the calendar day the action was completed, in YYYY-MM-DD.
	// Completion is de-duplicated per (plant, action, day).
	Day string `json:"day" db:"day"`

	// CreatedAt is the wall-clock time the entry was recorded.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserPlant is a catalog plant the user has adopted into their garden.
// It references the catalog entry by id rather than duplicating it;
// the catalog remains the source of truth for species attributes.
type UserPlant struct {
	// ID is the catalog plant id. A species can be adopted at most once.
	ID string `json:"id" db:"id"`

	// DateAdded is when the plant was added to the garden.
	DateAdded time.Time `json:"date_added" db:"date_added"`

	// CareHistory holds completed care entries in chronological
	// addition order.
	CareHistory []CareHistoryEntry `json:"care_history,omitempty" db:"-"`
}

// LastCare returns the calendar day of the most recent history entry of
// the given kind, or the zero time if the plant has never received that
// care. History is in chronological order, so the last match wins.
func (u UserPlant) LastCare(kind ActionKind) time.Time {
	var last time.Time
	for _, e := range u.CareHistory {
		if e.Action != kind {
			continue
		}
		if d, err := time.Parse("2006-01-02", e.Day); err == nil && d.After(last) {
			last = d
		}
	}
	return last
}
