package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionIDEncodesKindAndDay(t *testing.T) {
	day := time.Date(2025, 6, 15, 23, 45, 0, 0, time.UTC)

	assert.Equal(t, "water-2025-06-15", ActionID(ActionWater, day))
	assert.Equal(t, "fertilize-2025-06-15", ActionID(ActionFertilize, day))
}

func TestKindFromActionIDRoundTrips(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	for _, kind := range []ActionKind{ActionWater, ActionFertilize} {
		got, ok := KindFromActionID(ActionID(kind, day))
		require.True(t, ok)
		assert.Equal(t, kind, got)
	}
}

func TestKindFromActionIDRejectsUnknownKinds(t *testing.T) {
	for _, id := range []string{"prune-2025-06-15", "", "2025-06-15"} {
		_, ok := KindFromActionID(id)
		assert.False(t, ok, "id %q", id)
	}
}

func TestPriorityRankOrdersHighFirst(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Greater(t, Priority("bogus").Rank(), PriorityLow.Rank())
}
