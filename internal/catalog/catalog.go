// Package catalog holds the immutable plant species reference data.
// Entries are defined at build time and never mutated; user-specific
// state (adoption, care history) lives in the garden store.
package catalog

import (
	"fmt"

	"github.com/nhle/plant-reminder/internal/model"
)

var plants = []model.Plant{
	{
		ID:                "rose",
		Name:              "Rose",
		ScientificName:    "Rosa",
		Image:             "https://images.pexels.com/photos/736230/pexels-photo-736230.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description:       "A classic flowering plant known for its beautiful blooms and pleasant fragrance.",
		WateringFrequency: model.WateringMedium,
		LightPreference:   model.LightFullSun,
		Fertilizer:        "rose-specific balanced",
		HeightRange:       model.Range{Min: 30, Max: 150},
		IdealTemperature:  model.Range{Min: 16, Max: 28},
		CareInstructions:  "Roses need well-draining soil and regular pruning to encourage blooming. Watch for pests like aphids and blackspot disease.",
	},
	{
		ID:                "sunflower",
		Name:              "Sunflower",
		ScientificName:    "Helianthus annuus",
		Image:             "https://images.pexels.com/photos/46216/sunflower-flowers-bright-yellow-46216.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description:       "Tall annual plants known for their large, bright yellow blooms that follow the sun.",
		WateringFrequency: model.WateringMedium,
		LightPreference:   model.LightFullSun,
		Fertilizer:        "balanced, low-nitrogen",
		HeightRange:       model.Range{Min: 50, Max: 300},
		IdealTemperature:  model.Range{Min: 20, Max: 30},
		CareInstructions:  "Sunflowers are relatively easy to grow. They need support as they grow taller and regular watering until established.",
	},
	{
		ID:                "jasmine",
		Name:              "Jasmine",
		ScientificName:    "Jasminum",
		Image:             "https://images.pexels.com/photos/8210498/pexels-photo-8210498.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description:       "Climbing vines or shrubs with intensely fragrant white or yellow flowers.",
		WateringFrequency: model.WateringMedium,
		LightPreference:   model.LightPartialSun,
		Fertilizer:        "balanced, high-phosphorus",
		HeightRange:       model.Range{Min: 20, Max: 150},
		IdealTemperature:  model.Range{Min: 18, Max: 26},
		CareInstructions:  "Jasmine likes humid conditions and consistent moisture. Provide a trellis or support for climbing varieties.",
	},
	{
		ID:                "peace-lily",
		Name:              "Peace Lily",
		ScientificName:    "Spathiphyllum",
		Image:             "https://images.pexels.com/photos/7663968/pexels-photo-7663968.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description:       "Popular indoor plant with elegant white flowers and glossy leaves.",
		WateringFrequency: model.WateringMedium,
		LightPreference:   model.LightShade,
		Fertilizer:        "balanced houseplant",
		HeightRange:       model.Range{Min: 30, Max: 90},
		IdealTemperature:  model.Range{Min: 18, Max: 30},
		CareInstructions:  "Peace lilies prefer humid environments and will droop when thirsty. Keep away from cold drafts and direct sunlight.",
	},
	{
		ID:                "snake-plant",
		Name:              "Snake Plant",
		ScientificName:    "Sansevieria trifasciata",
		Image:             "https://images.pexels.com/photos/2123482/pexels-photo-2123482.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description:       "Nearly indestructible plant with tall, stiff leaves. Excellent air purifier.",
		WateringFrequency: model.WateringLow,
		LightPreference:   model.LightPartialSun,
		Fertilizer:        "cactus or succulent",
		HeightRange:       model.Range{Min: 20, Max: 120},
		IdealTemperature:  model.Range{Min: 15, Max: 32},
		CareInstructions:  "Allow soil to dry completely between waterings. Can tolerate low light but grows faster in brighter conditions.",
	},
	{
		ID:                "aloe-vera",
		Name:              "Aloe Vera",
		ScientificName:    "Aloe barbadensis miller",
		Image:             "https://images.pexels.com/photos/4505182/pexels-photo-4505182.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description:       "Succulent plant with medicinal properties. Gel from leaves soothes burns and skin irritations.",
		WateringFrequency: model.WateringLow,
		LightPreference:   model.LightFullSun,
		Fertilizer:        "cactus or succulent",
		HeightRange:       model.Range{Min: 15, Max: 60},
		IdealTemperature:  model.Range{Min: 13, Max: 27},
		CareInstructions:  "Plant in well-draining soil and water only when top inch of soil is dry. Watch for brown spots which may indicate too much sun.",
	},
	{
		ID:                "basil",
		Name:              "Basil",
		ScientificName:    "Ocimum basilicum",
		Image:             "https://images.pexels.com/photos/5635099/pexels-photo-5635099.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description:       "Aromatic herb used in cooking, especially in Italian and Thai cuisines.",
		WateringFrequency: model.WateringHigh,
		LightPreference:   model.LightFullSun,
		Fertilizer:        "balanced, organic",
		HeightRange:       model.Range{Min: 20, Max: 60},
		IdealTemperature:  model.Range{Min: 18, Max: 30},
		CareInstructions:  "Pinch off flower buds to encourage leaf growth. Harvest from the top to promote bushier growth.",
	},
	{
		ID:                "lavender",
		Name:              "Lavender",
		ScientificName:    "Lavandula",
		Image:             "https://images.pexels.com/photos/4913766/pexels-photo-4913766.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		Description:       "Fragrant perennial herb with purple flowers, known for its calming scent.",
		WateringFrequency: model.WateringLow,
		LightPreference:   model.LightFullSun,
		Fertilizer:        "low-nitrogen",
		HeightRange:       model.Range{Min: 30, Max: 90},
		IdealTemperature:  model.Range{Min: 15, Max: 30},
		CareInstructions:  "Lavender needs excellent drainage. Prune after flowering to maintain shape and promote new growth.",
	},
}

// index maps plant id to its position in the plants slice.
var index = func() map[string]int {
	m := make(map[string]int, len(plants))
	for i, p := range plants {
		if err := p.Validate(); err != nil {
			panic(fmt.Sprintf("invalid catalog entry: %v", err))
		}
		m[p.ID] = i
	}
	return m
}()

// Get looks up a catalog plant by id. The boolean reports whether the
// id exists; callers must treat absence as a valid handled state.
func Get(id string) (model.Plant, bool) {
	i, ok := index[id]
	if !ok {
		return model.Plant{}, false
	}
	return plants[i], true
}

// List returns all catalog plants in declaration order. The returned
// slice is a copy; callers may not mutate the catalog through it.
func List() []model.Plant {
	out := make([]model.Plant, len(plants))
	copy(out, plants)
	return out
}

// Static adapts the package-level catalog to an injectable value for
// consumers that take a catalog interface.
type Static struct{}

func (Static) Get(id string) (model.Plant, bool) { return Get(id) }
func (Static) List() []model.Plant               { return List() }
