// Package i18n resolves canonical translation keys to display strings.
// The core packages return canonical keys (e.g. "actions.water.name");
// only the UI goes through a Translator. English and Indonesian are
// supported, matching the original deployment.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/nhle/plant-reminder/internal/model"
	"github.com/nhle/plant-reminder/internal/weather"
)

var supported = []language.Tag{
	language.English,
	language.Indonesian,
}

var matcher = language.NewMatcher(supported)

// Translator resolves canonical keys for a single language.
type Translator struct {
	lang   string
	bundle map[string]string
}

// New creates a translator for the given BCP 47 language string.
// Unknown languages match to English.
func New(lang string) *Translator {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()

	code := base.String()
	bundle, ok := bundles[code]
	if !ok {
		code = "en"
		bundle = bundles["en"]
	}

	return &Translator{lang: code, bundle: bundle}
}

// Lang returns the resolved language code ("en" or "id").
func (t *Translator) Lang() string {
	return t.lang
}

// T resolves a canonical key, returning fallback when the bundle has
// no entry. This mirrors the lookup-with-default contract the UI
// depends on: a missing translation degrades to the canonical text,
// never to an error.
func (t *Translator) T(key, fallback string) string {
	if v, ok := t.bundle[key]; ok {
		return v
	}
	return fallback
}

// TranslatePlant returns a copy of the catalog plant with its
// user-facing fields localized. The catalog entry itself is immutable;
// translation never mutates the source.
func (t *Translator) TranslatePlant(p model.Plant) model.Plant {
	p.Name = t.T("plants.names."+p.ID, p.Name)
	p.Description = t.T("plants.descriptions."+p.ID, p.Description)
	p.CareInstructions = t.T("plants.careInstructions."+p.ID, p.CareInstructions)
	p.Fertilizer = t.T("plants.fertilizers."+p.Fertilizer, p.Fertilizer)
	return p
}

// WateringLabel localizes a watering frequency tier.
func (t *Translator) WateringLabel(f model.WateringFrequency) string {
	return t.T("plants.wateringFrequency."+string(f), string(f))
}

// LightLabel localizes a light preference.
func (t *Translator) LightLabel(l model.LightPreference) string {
	return t.T("plants.lightPreference."+string(l), string(l))
}

// ActionName resolves a derived action's canonical name key.
func (t *Translator) ActionName(a model.CareAction) string {
	return t.T(a.Name, string(a.Kind))
}

// ActionDescription resolves a derived action's canonical description key.
func (t *Translator) ActionDescription(a model.CareAction) string {
	return t.T(a.Description, "")
}

// ConditionLabel localizes a weather condition.
func (t *Translator) ConditionLabel(c weather.Condition) string {
	return t.T("weather."+string(c), string(c))
}

// ConditionTip returns the dashboard care tip for a weather condition.
func (t *Translator) ConditionTip(c weather.Condition) string {
	return t.T("weather."+string(c)+"Tip", "")
}
