package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/plant-reminder/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func addPlant(t *testing.T, s *SQLiteStore, id string) {
	t.Helper()
	err := s.CreateUserPlant(context.Background(), model.UserPlant{
		ID:        id,
		DateAdded: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestCreateAndGetUserPlant(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addPlant(t, s, "rose")

	up, err := s.GetUserPlant(ctx, "rose")
	require.NoError(t, err)
	assert.Equal(t, "rose", up.ID)
	assert.Empty(t, up.CareHistory)
}

func TestCreateUserPlantEmptyID(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateUserPlant(context.Background(), model.UserPlant{})
	assert.Error(t, err)
}

func TestGetUserPlantMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUserPlant(context.Background(), "rose")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteUserPlantMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteUserPlant(context.Background(), "rose")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteUserPlantCascadesHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addPlant(t, s, "rose")
	_, err := s.AppendCareEntry(ctx, model.CareHistoryEntry{
		PlantID: "rose",
		Action:  model.ActionWater,
		Day:     "2025-06-02",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUserPlant(ctx, "rose"))

	var count int
	err = s.db.Get(&count, "SELECT COUNT(*) FROM care_history WHERE plant_id = 'rose'")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAppendCareEntryDeduplicatesPerDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addPlant(t, s, "rose")

	entry := model.CareHistoryEntry{
		PlantID: "rose",
		Action:  model.ActionWater,
		Day:     "2025-06-02",
	}

	inserted, err := s.AppendCareEntry(ctx, entry)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.AppendCareEntry(ctx, entry)
	require.NoError(t, err)
	assert.False(t, inserted)

	up, err := s.GetUserPlant(ctx, "rose")
	require.NoError(t, err)
	assert.Len(t, up.CareHistory, 1)
}

func TestAppendCareEntryDistinctKindsSameDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addPlant(t, s, "rose")

	for _, kind := range []model.ActionKind{model.ActionWater, model.ActionFertilize} {
		inserted, err := s.AppendCareEntry(ctx, model.CareHistoryEntry{
			PlantID: "rose",
			Action:  kind,
			Day:     "2025-06-02",
		})
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	up, err := s.GetUserPlant(ctx, "rose")
	require.NoError(t, err)
	assert.Len(t, up.CareHistory, 2)
}

func TestCareHistoryDropsMalformedRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addPlant(t, s, "rose")

	// One good row and two rows that predate the action/day validation.
	_, err := s.AppendCareEntry(ctx, model.CareHistoryEntry{
		PlantID: "rose",
		Action:  model.ActionWater,
		Day:     "2025-06-02",
	})
	require.NoError(t, err)

	_, err = s.db.Exec(`
		INSERT INTO care_history (id, plant_id, action, day, created_at)
		VALUES ('bad1', 'rose', 'prune', '2025-06-03', ?),
		       ('bad2', 'rose', 'water', 'yesterday', ?)`,
		time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)

	up, err := s.GetUserPlant(ctx, "rose")
	require.NoError(t, err)
	require.Len(t, up.CareHistory, 1)
	assert.Equal(t, model.ActionWater, up.CareHistory[0].Action)
	assert.Equal(t, "2025-06-02", up.CareHistory[0].Day)
}

func TestListUserPlantsOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"jasmine", "rose", "basil"} {
		err := s.CreateUserPlant(ctx, model.UserPlant{
			ID:        id,
			DateAdded: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	plants, err := s.ListUserPlants(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 3)
	assert.Equal(t, "jasmine", plants[0].ID)
	assert.Equal(t, "rose", plants[1].ID)
	assert.Equal(t, "basil", plants[2].ID)
}
