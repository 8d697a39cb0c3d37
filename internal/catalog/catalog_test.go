package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/plant-reminder/internal/model"
)

func TestGetKnownPlant(t *testing.T) {
	p, ok := Get("snake-plant")
	require.True(t, ok)
	assert.Equal(t, "Snake Plant", p.Name)
	assert.Equal(t, model.WateringLow, p.WateringFrequency)
}

func TestGetUnknownPlant(t *testing.T) {
	_, ok := Get("triffid")
	assert.False(t, ok)
}

func TestListCoversAllSpecies(t *testing.T) {
	plants := List()
	require.Len(t, plants, 8)

	ids := make(map[string]bool, len(plants))
	for _, p := range plants {
		ids[p.ID] = true
	}
	for _, want := range []string{
		"rose", "sunflower", "jasmine", "peace-lily",
		"snake-plant", "aloe-vera", "basil", "lavender",
	} {
		assert.True(t, ids[want], "missing %s", want)
	}
}

func TestListReturnsACopy(t *testing.T) {
	plants := List()
	plants[0].Name = "mutated"

	fresh, ok := Get(plants[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Name)
}

func TestEveryEntryValidates(t *testing.T) {
	for _, p := range List() {
		assert.NoError(t, p.Validate(), p.ID)
		assert.True(t, p.HeightRange.Valid(), "%s height range", p.ID)
		assert.True(t, p.IdealTemperature.Valid(), "%s temperature range", p.ID)
	}
}
