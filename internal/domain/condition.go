package domain

import "strings"

// Condition is the coarse weather category reported by the provider in
// weather[0].main.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionRain         Condition = "Rain"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionSnow         Condition = "Snow"
	ConditionMist         Condition = "Mist"
	ConditionHaze         Condition = "Haze"
	ConditionFog          Condition = "Fog"
	ConditionSmoke        Condition = "Smoke"
	ConditionDust         Condition = "Dust"
	ConditionSand         Condition = "Sand"
	ConditionAsh          Condition = "Ash"
	ConditionSquall       Condition = "Squall"
	ConditionTornado      Condition = "Tornado"

	// ConditionUnknown is the Default bucket for anything outside the set above.
	ConditionUnknown Condition = "Unknown"
)

var knownConditions = []Condition{
	ConditionClear,
	ConditionClouds,
	ConditionRain,
	ConditionThunderstorm,
	ConditionDrizzle,
	ConditionSnow,
	ConditionMist,
	ConditionHaze,
	ConditionFog,
	ConditionSmoke,
	ConditionDust,
	ConditionSand,
	ConditionAsh,
	ConditionSquall,
	ConditionTornado,
}

// ParseCondition maps a provider category to a Condition, ignoring case and
// surrounding whitespace. Unrecognized values yield ConditionUnknown.
func ParseCondition(s string) Condition {
	s = strings.TrimSpace(s)
	for _, c := range knownConditions {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return ConditionUnknown
}

// Conditions returns the enumerated conditions in declaration order,
// excluding ConditionUnknown.
func Conditions() []Condition {
	out := make([]Condition, len(knownConditions))
	copy(out, knownConditions)
	return out
}

// Known reports whether c is one of the enumerated conditions.
func (c Condition) Known() bool {
	return ParseCondition(string(c)) == c && c != ConditionUnknown
}

func (c Condition) String() string { return string(c) }

func (c Condition) isWet() bool {
	return c == ConditionRain || c == ConditionDrizzle
}
