package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		in   string
		want Condition
	}{
		{"sunny", ConditionSunny},
		{"Rainy", ConditionRainy},
		{"  HOT  ", ConditionHot},
		{"cold", ConditionCold},
		{"temperate", ConditionTemperate},
		{"drizzle", ConditionTemperate},
		{"", ConditionTemperate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCondition(tt.in), "input %q", tt.in)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code int
		temp float64
		want Condition
	}{
		{"clear sky mild", 0, 22, ConditionSunny},
		{"mainly clear mild", 1, 22, ConditionSunny},
		{"overcast mild", 3, 22, ConditionTemperate},
		{"drizzle", 53, 22, ConditionRainy},
		{"rain", 63, 22, ConditionRainy},
		{"showers", 81, 22, ConditionRainy},
		{"thunderstorm", 95, 22, ConditionRainy},
		{"rain wins over heat", 63, 35, ConditionRainy},
		{"hot at threshold", 0, 30, ConditionHot},
		{"cold at threshold", 0, 5, ConditionCold},
		{"just below hot", 3, 29.9, ConditionTemperate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.code, tt.temp))
		})
	}
}
