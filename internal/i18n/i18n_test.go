package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/plant-reminder/internal/catalog"
	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/weather"
)

func TestNewMatchesSupportedLanguages(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"id", "id"},
		{"id-ID", "id"},
		{"fr", "en"},
		{"", "en"},
		{"nonsense", "en"},
	}
	for _, tc := range tests {
		t.Run(tc.lang, func(t *testing.T) {
			tr := New(tc.lang)
			assert.Equal(t, tc.want, tr.Lang())
		})
	}
}

func TestTFallsBackToCanonicalText(t *testing.T) {
	tr := New("en")

	assert.Equal(t, "Water", tr.T("actions.water.name", "water"))
	assert.Equal(t, "water", tr.T("actions.prune.name", "water"))
	assert.Equal(t, "", tr.T("no.such.key", ""))
}

func TestIndonesianBundleOverridesActionNames(t *testing.T) {
	tr := New("id")

	assert.Equal(t, "Siram", tr.T("actions.water.name", "Water"))
	assert.Equal(t, "Pupuk", tr.T("actions.fertilize.name", "Fertilize"))
}

func TestTranslatePlantLocalizesWithoutMutating(t *testing.T) {
	p, ok := catalog.Get("snake-plant")
	require.True(t, ok)

	tr := New("id")
	got := tr.TranslatePlant(p)

	assert.Equal(t, "Lidah Mertua", got.Name)
	assert.Equal(t, p.Description, got.Description)
	assert.Equal(t, p.ScientificName, got.ScientificName)

	// The catalog copy must be untouched.
	again, ok := catalog.Get("snake-plant")
	require.True(t, ok)
	assert.Equal(t, p.Name, again.Name)
}

func TestTranslatePlantEnglishIsIdentity(t *testing.T) {
	p, ok := catalog.Get("aloe-vera")
	require.True(t, ok)

	tr := New("en")
	got := tr.TranslatePlant(p)

	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.CareInstructions, got.CareInstructions)
}

func TestWateringAndLightLabels(t *testing.T) {
	en := New("en")
	id := New("id")

	assert.Equal(t, "medium", en.WateringLabel(model.WateringMedium))
	assert.Equal(t, "sedang", id.WateringLabel(model.WateringMedium))
	assert.Equal(t, "matahari sebagian", id.LightLabel(model.LightPartialSun))
}

func TestActionNameResolvesCanonicalKey(t *testing.T) {
	tr := New("id")
	a := model.CareAction{
		Name: "actions.water.name",
		Kind: model.ActionWater,
	}
	assert.Equal(t, "Siram", tr.ActionName(a))

	unknown := model.CareAction{Name: "actions.mist.name", Kind: "mist"}
	assert.Equal(t, "mist", tr.ActionName(unknown))
}

func TestConditionLabelsCoverAllConditions(t *testing.T) {
	conds := []weather.Condition{
		weather.ConditionSunny,
		weather.ConditionRainy,
		weather.ConditionHot,
		weather.ConditionCold,
		weather.ConditionTemperate,
	}
	for _, lang := range []string{"en", "id"} {
		tr := New(lang)
		for _, c := range conds {
			assert.NotEmpty(t, tr.ConditionLabel(c), "%s %s", lang, c)
			assert.NotEmpty(t, tr.ConditionTip(c), "%s %s tip", lang, c)
		}
	}
}
