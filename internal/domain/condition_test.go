package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		input    string
		expected Condition
	}{
		{"Clear", ConditionClear},
		{"rain", ConditionRain},
		{" THUNDERSTORM ", ConditionThunderstorm},
		{"Tornado", ConditionTornado},
		{"", ConditionUnknown},
		{"Hail", ConditionUnknown},
		{"Unknown", ConditionUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseCondition(tt.input), "input=%q", tt.input)
	}
}

func TestCondition_Known(t *testing.T) {
	for _, c := range Conditions() {
		assert.True(t, c.Known(), string(c))
	}
	assert.False(t, ConditionUnknown.Known())
	assert.False(t, Condition("rain").Known())
	assert.Len(t, Conditions(), 15)
}

func TestAssetLookups(t *testing.T) {
	for _, c := range append(Conditions(), ConditionUnknown) {
		assert.NotEmpty(t, WeatherAnimationURL(c), string(c))
		assert.NotEmpty(t, PlantAnimationURL(c), string(c))
		assert.NotEmpty(t, BackgroundColor(c), string(c))
	}

	assert.Equal(t, WeatherAnimationURL(ConditionClear), WeatherAnimationURL(ConditionUnknown))
	assert.Equal(t, PlantAnimationURL(ConditionClear), PlantAnimationURL(ConditionSquall))
	assert.Equal(t, "#87CEEB", BackgroundColor(ConditionUnknown))
	assert.NotEqual(t, WeatherAnimationURL(ConditionClear), WeatherAnimationURL(ConditionRain))
}

func TestNormalizeCity(t *testing.T) {
	assert.Equal(t, "Bengaluru, IN", NormalizeCity("Bangalore, IN"))
	assert.Equal(t, "Mumbai, IN", NormalizeCity("  Bombay, IN "))
	assert.Equal(t, "Delhi, IN", NormalizeCity("Delhi, IN"))
	assert.Equal(t, "", NormalizeCity("   "))
}

func TestPopularCities(t *testing.T) {
	cities := PopularCities()
	assert.Len(t, cities, 10)
	assert.Equal(t, "Mumbai, IN", cities[0])

	cities[0] = "mutated"
	assert.Equal(t, "Mumbai, IN", PopularCities()[0])
}
