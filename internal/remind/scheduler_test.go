package remind

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/plant-reminder/tests/testutil"
)

func newTestScheduler(t *testing.T, enabled bool, at string, pending int) *Scheduler {
	t.Helper()

	s := New(
		testutil.NewTestStore(t),
		func(ctx context.Context) (bool, string) { return enabled, at },
		func(ctx context.Context) (int, error) { return pending, nil },
		func() string { return "Your plants need care today" },
	)
	return s
}

func at(hhmm string) func() time.Time {
	return func() time.Time {
		parsed, err := time.Parse("15:04", hhmm)
		if err != nil {
			panic(err)
		}
		return time.Date(2025, 6, 15, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	}
}

func TestTickFiresAfterConfiguredTime(t *testing.T) {
	s := newTestScheduler(t, true, "08:00", 2)
	s.now = at("09:00")

	s.tick()

	msg := <-s.resultCh
	assert.Equal(t, "Your plants need care today (2)", msg.Reminder.Message)

	unread, err := s.store.UnreadReminders(context.Background())
	require.NoError(t, err)
	require.Len(t, unread, 1)
}

func TestTickDoesNotFireBeforeConfiguredTime(t *testing.T) {
	s := newTestScheduler(t, true, "08:00", 2)
	s.now = at("07:59")

	s.tick()

	unread, err := s.store.UnreadReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestTickFiresAtMostOncePerDay(t *testing.T) {
	s := newTestScheduler(t, true, "08:00", 1)
	s.now = at("08:30")

	s.tick()
	s.tick()
	s.tick()

	unread, err := s.store.UnreadReminders(context.Background())
	require.NoError(t, err)
	assert.Len(t, unread, 1)
}

func TestTickSkipsWhenDisabled(t *testing.T) {
	s := newTestScheduler(t, false, "08:00", 3)
	s.now = at("12:00")

	s.tick()

	unread, err := s.store.UnreadReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestTickSkipsWhenNothingPending(t *testing.T) {
	s := newTestScheduler(t, true, "08:00", 0)
	s.now = at("12:00")

	s.tick()

	unread, err := s.store.UnreadReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestTickIgnoresMalformedTime(t *testing.T) {
	s := newTestScheduler(t, true, "8 oclock", 3)
	s.now = at("12:00")

	s.tick()

	unread, err := s.store.UnreadReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestFiresAgainOnNextDay(t *testing.T) {
	s := newTestScheduler(t, true, "08:00", 1)
	s.now = at("08:30")

	s.tick()
	<-s.resultCh

	// Advance to the following day.
	s.now = func() time.Time {
		return time.Date(2025, 6, 16, 8, 30, 0, 0, time.UTC)
	}
	s.tick()

	unread, err := s.store.UnreadReminders(context.Background())
	require.NoError(t, err)
	assert.Len(t, unread, 2)
}
