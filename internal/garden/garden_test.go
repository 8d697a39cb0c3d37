package garden

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/plant-reminder/internal/care"
	"github.com/nhle/plant-reminder/internal/catalog"
	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/weather"
	"github.com/nhle/plant-reminder/tests/testutil"
)

// newTestService builds a service over an in-memory store with a fixed
// clock and weather condition.
func newTestService(t *testing.T) *Service {
	t.Helper()

	s := New(
		testutil.NewTestStore(t),
		catalog.Static{},
		care.NewEngine(care.DefaultPolicy()),
		func() weather.Condition { return weather.ConditionTemperate },
	)
	s.now = func() time.Time {
		return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	}
	return s
}

func advanceDays(s *Service, days int) {
	prev := s.now
	s.now = func() time.Time { return prev().AddDate(0, 0, days) }
}

func TestGetPlantByID(t *testing.T) {
	s := newTestService(t)

	p, ok := s.GetPlantByID("rose")
	require.True(t, ok)
	assert.Equal(t, "Rose", p.Name)

	_, ok = s.GetPlantByID("triffid")
	assert.False(t, ok)
}

func TestAddPlantLifecycle(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	up, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)
	assert.Equal(t, "rose", up.ID)
	assert.Equal(t, s.now().UTC(), up.DateAdded)

	got, err := s.GetUserPlantByID(ctx, "rose")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.CareHistory)

	require.NoError(t, s.RemovePlant(ctx, "rose"))

	got, err = s.GetUserPlantByID(ctx, "rose")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddPlantUnknownCatalogID(t *testing.T) {
	s := newTestService(t)

	_, err := s.AddPlant(context.Background(), "triffid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddPlantTwice(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddPlant(ctx, "basil")
	require.NoError(t, err)

	_, err = s.AddPlant(ctx, "basil")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRemovePlantNotInGarden(t *testing.T) {
	s := newTestService(t)

	err := s.RemovePlant(context.Background(), "rose")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUserPlantsInAdoptionOrder(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for i, id := range []string{"jasmine", "aloe-vera", "rose"} {
		prev := s.now
		offset := i
		s.now = func() time.Time { return prev().Add(time.Duration(offset) * time.Minute) }
		_, err := s.AddPlant(ctx, id)
		require.NoError(t, err)
	}

	plants, err := s.ListUserPlants(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 3)
	assert.Equal(t, "jasmine", plants[0].ID)
	assert.Equal(t, "aloe-vera", plants[1].ID)
	assert.Equal(t, "rose", plants[2].ID)
}

func TestListUserPlantsDropsUnknownCatalogIDs(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)

	// A row left behind by an older catalog version resolves to no
	// species; it is inserted directly because AddPlant validates the id.
	err = s.store.CreateUserPlant(ctx, model.UserPlant{
		ID:        "triffid",
		DateAdded: s.now().UTC(),
	})
	require.NoError(t, err)

	plants, err := s.ListUserPlants(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "rose", plants[0].ID)

	actions, err := s.TodaysActions(ctx)
	require.NoError(t, err)
	_, ok := actions["triffid"]
	assert.False(t, ok)
	_, ok = actions["rose"]
	assert.True(t, ok)
}

func TestTodaysActionsIncludesQuietPlants(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)

	// On the adoption day nothing is due, but the plant still has an
	// entry in the map.
	actions, err := s.TodaysActions(ctx)
	require.NoError(t, err)
	acts, ok := actions["rose"]
	assert.True(t, ok)
	assert.Empty(t, acts)
}

func TestTodaysActionsDerivesAfterCadence(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)

	advanceDays(s, 3)

	actions, err := s.TodaysActions(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, actions["rose"])
	assert.Equal(t, model.ActionWater, actions["rose"][0].Kind)
}

func TestTodaysActionsIsDeterministic(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"rose", "basil", "snake-plant"} {
		_, err := s.AddPlant(ctx, id)
		require.NoError(t, err)
	}
	advanceDays(s, 5)

	first, err := s.TodaysActions(ctx)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := s.TodaysActions(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMarkActionCompleteClearsSameDayPending(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)
	advanceDays(s, 3)

	actions, err := s.TodaysActions(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, actions["rose"])
	actionID := actions["rose"][0].ID

	require.NoError(t, s.MarkActionComplete(ctx, "rose", actionID))

	actions, err = s.TodaysActions(ctx)
	require.NoError(t, err)
	for _, a := range actions["rose"] {
		assert.NotEqual(t, model.ActionWater, a.Kind)
	}
}

func TestMarkActionCompleteIsIdempotent(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)
	advanceDays(s, 3)

	actionID := model.ActionID(model.ActionWater, s.now())
	for i := 0; i < 3; i++ {
		require.NoError(t, s.MarkActionComplete(ctx, "rose", actionID))
	}

	up, err := s.GetUserPlantByID(ctx, "rose")
	require.NoError(t, err)
	require.NotNil(t, up)
	assert.Len(t, up.CareHistory, 1)
}

func TestMarkActionCompleteUnknownPlant(t *testing.T) {
	s := newTestService(t)

	actionID := model.ActionID(model.ActionWater, s.now())
	err := s.MarkActionComplete(context.Background(), "rose", actionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkActionCompleteMalformedActionID(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)

	err = s.MarkActionComplete(ctx, "rose", "prune-2025-06-15")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemovePlantDeletesHistory(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)
	advanceDays(s, 2)

	actionID := model.ActionID(model.ActionWater, s.now())
	require.NoError(t, s.MarkActionComplete(ctx, "rose", actionID))
	require.NoError(t, s.RemovePlant(ctx, "rose"))

	// Re-adopting starts a fresh history.
	up, err := s.AddPlant(ctx, "rose")
	require.NoError(t, err)
	assert.Empty(t, up.CareHistory)

	got, err := s.GetUserPlantByID(ctx, "rose")
	require.NoError(t, err)
	assert.Empty(t, got.CareHistory)
}
