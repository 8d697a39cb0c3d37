// Package garden owns the user's plant collection: which catalog
// plants have been adopted, their care history, and the derived list
// of actions due today. It is the single source of truth the UI reads;
// every mutation goes through the store synchronously, so a read
// immediately following a write observes the write.
package garden

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nhle/plant-reminder/internal/care"
	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/store"
	"github.com/nhle/plant-reminder/internal/weather"
)

// Catalog is the read-only species reference the garden validates
// membership against.
type Catalog interface {
	Get(id string) (model.Plant, bool)
	List() []model.Plant
}

// Service coordinates the garden store and the species catalog with
// the care rule engine.
type Service struct {
	store   store.Store
	catalog Catalog
	engine  *care.Engine

	// now and condition are injected collaborators: the calendar
	// clock and the current weather. Overridable in tests.
	now       func() time.Time
	condition func() weather.Condition
}

// New creates a garden service. condition supplies the current weather
// category for action derivation; it must not block.
func New(
	s store.Store,
	c Catalog,
	e *care.Engine,
	condition func() weather.Condition,
) *Service {
	return &Service{
		store:     s,
		catalog:   c,
		engine:    e,
		now:       time.Now,
		condition: condition,
	}
}

// GetPlantByID looks up a catalog plant. Absence is a handled state,
// not an error.
func (s *Service) GetPlantByID(id string) (model.Plant, bool) {
	return s.catalog.Get(id)
}

// ListCatalog returns all catalog plants.
func (s *Service) ListCatalog() []model.Plant {
	return s.catalog.List()
}

// AddPlant adopts a catalog plant into the garden. Fails with
// ErrNotFound for an unknown catalog id and ErrAlreadyExists when the
// plant is already in the garden.
func (s *Service) AddPlant(
	ctx context.Context,
	catalogID string,
) (*model.UserPlant, error) {
	if _, ok := s.catalog.Get(catalogID); !ok {
		return nil, fmt.Errorf("catalog plant %s: %w", catalogID, ErrNotFound)
	}

	existing, err := s.GetUserPlantByID(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("plant %s: %w", catalogID, ErrAlreadyExists)
	}

	up := model.UserPlant{
		ID:        catalogID,
		DateAdded: s.now().UTC(),
	}
	if err := s.store.CreateUserPlant(ctx, up); err != nil {
		return nil, err
	}

	return &up, nil
}

// RemovePlant deletes a user plant and its entire care history.
// Fails with ErrNotFound when the plant is not in the garden.
func (s *Service) RemovePlant(ctx context.Context, catalogID string) error {
	err := s.store.DeleteUserPlant(ctx, catalogID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("plant %s: %w", catalogID, ErrNotFound)
	}
	return err
}

// GetUserPlantByID retrieves a user plant with its history. Absence is
// reported as (nil, nil), never as an error.
func (s *Service) GetUserPlantByID(
	ctx context.Context,
	id string,
) (*model.UserPlant, error) {
	up, err := s.store.GetUserPlant(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return up, nil
}

// ListUserPlants returns all adopted plants in adoption order.
// A stored plant whose catalog id no longer resolves is dropped from
// the result; a degraded garden beats a failed one.
func (s *Service) ListUserPlants(ctx context.Context) ([]model.UserPlant, error) {
	plants, err := s.store.ListUserPlants(ctx)
	if err != nil {
		return nil, err
	}

	valid := plants[:0]
	for _, up := range plants {
		if _, ok := s.catalog.Get(up.ID); ok {
			valid = append(valid, up)
		}
	}
	return valid, nil
}

// TodaysActions derives the care actions due today for every plant in
// the garden, keyed by plant id. The derivation is pure and
// deterministic for a fixed (history, date, weather); values may be
// empty for plants needing nothing today.
func (s *Service) TodaysActions(
	ctx context.Context,
) (map[string][]model.CareAction, error) {
	plants, err := s.ListUserPlants(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	cond := s.condition()

	actions := make(map[string][]model.CareAction, len(plants))
	for _, up := range plants {
		plant, ok := s.catalog.Get(up.ID)
		if !ok {
			continue
		}
		actions[up.ID] = s.engine.Derive(up, plant, today, cond)
	}

	return actions, nil
}

// MarkActionComplete records that a derived action was completed today.
// The append is idempotent per (plant, action kind, calendar day):
// repeat calls on the same day leave the history unchanged, so the
// cadence calculation never double-advances. After a successful call
// the same-day derivation no longer lists the action as pending.
func (s *Service) MarkActionComplete(
	ctx context.Context,
	plantID string,
	actionID string,
) error {
	up, err := s.GetUserPlantByID(ctx, plantID)
	if err != nil {
		return err
	}
	if up == nil {
		return fmt.Errorf("plant %s: %w", plantID, ErrNotFound)
	}

	kind, ok := model.KindFromActionID(actionID)
	if !ok {
		return fmt.Errorf("action %s: %w", actionID, ErrNotFound)
	}

	entry := model.CareHistoryEntry{
		PlantID:   plantID,
		Action:    kind,
		Day:       s.now().Format("2006-01-02"),
		CreatedAt: s.now().UTC(),
	}

	if _, err := s.store.AppendCareEntry(ctx, entry); err != nil {
		return err
	}
	return nil
}
