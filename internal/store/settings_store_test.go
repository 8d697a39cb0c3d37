package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/plant-reminder/internal/model"
)

func TestGetSettingUnsetKey(t *testing.T) {
	s := newTestStore(t)

	v, err := s.GetSetting(context.Background(), SettingTheme)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestSetSettingReplaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSetting(ctx, SettingTheme, "dark"))
	require.NoError(t, s.SetSetting(ctx, SettingTheme, "light"))

	v, err := s.GetSetting(ctx, SettingTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestResetAllClearsEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addPlant(t, s, "rose")
	_, err := s.AppendCareEntry(ctx, model.CareHistoryEntry{
		PlantID: "rose",
		Action:  model.ActionWater,
		Day:     "2025-06-02",
	})
	require.NoError(t, err)
	require.NoError(t, s.SetSetting(ctx, SettingLanguage, "id"))
	require.NoError(t, s.CreateReminder(ctx, model.Reminder{Message: "water today"}))

	require.NoError(t, s.ResetAll(ctx))

	plants, err := s.ListUserPlants(ctx)
	require.NoError(t, err)
	assert.Empty(t, plants)

	lang, err := s.GetSetting(ctx, SettingLanguage)
	require.NoError(t, err)
	assert.Equal(t, "", lang)

	reminders, err := s.UnreadReminders(ctx)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestReminderLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateReminder(ctx, model.Reminder{Message: "water today"}))

	reminders, err := s.UnreadReminders(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "water today", reminders[0].Message)
	assert.False(t, reminders[0].Read)

	require.NoError(t, s.MarkReminderRead(ctx, reminders[0].ID))

	reminders, err = s.UnreadReminders(ctx)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}
