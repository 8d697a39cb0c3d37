package model

import (
	"fmt"
	"strings"
	"time"
)

// ActionKind identifies the underlying care operation of a derived action.
type ActionKind string

const (
	ActionWater     ActionKind = "water"
	ActionFertilize ActionKind = "fertilize"
)

// KnownActionKind reports whether the kind is one the engine can derive.
func KnownActionKind(k ActionKind) bool {
	return k == ActionWater || k == ActionFertilize
}

// Priority ranks a care action for display ordering.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort key for a priority: high before medium before low.
// Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// CareAction is a single care task derived for one user plant on one
// calendar day. Actions are recomputed on demand and never persisted;
// only their completion is recorded, as a CareHistoryEntry.
//
// Name and Description are canonical translation keys; the UI resolves
// them through the i18n layer.
type CareAction struct {
	// ID is unique within a single plant's single-day derivation only.
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Kind        ActionKind `json:"kind"`
}

// ActionID builds the derived action identifier for a kind on a day.
func ActionID(kind ActionKind, day time.Time) string {
	return fmt.Sprintf("%s-%s", kind, day.Format("2006-01-02"))
}

// KindFromActionID extracts the care kind from a derived action id.
// Returns false for ids that do not name a known kind.
func KindFromActionID(id string) (ActionKind, bool) {
	kind, _, _ := strings.Cut(id, "-")
	k := ActionKind(kind)
	if !KnownActionKind(k) {
		return "", false
	}
	return k, true
}
