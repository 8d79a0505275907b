package domain

// Outfit is a short clothing recommendation intended for direct display.
type Outfit string

// Base layers, one per temperature band.
const (
	OutfitHot  Outfit = "Cap, cotton T-shirt, shorts"
	OutfitWarm Outfit = "T-shirt, jeans, sunscreen"
	OutfitMild Outfit = "Light jacket, sneakers"
	OutfitCool Outfit = "Scarf, warm coat, gloves"
	OutfitCold Outfit = "Heavy coat, thermals, woollen gloves"
)

// Condition-specific extras.
const (
	OutfitWaterproof Outfit = "Umbrella or waterproof jacket"
	OutfitInsulated  Outfit = "Insulated boots and layered clothing"
	OutfitAvoidMetal Outfit = "Avoid metal items; stay indoors"
)

var outfitMeta = map[Outfit]struct{ key, icon string }{
	OutfitHot:        {"hot", "🧢"},
	OutfitWarm:       {"warm", "👕"},
	OutfitMild:       {"mild", "🧥"},
	OutfitCool:       {"cool", "🧣"},
	OutfitCold:       {"cold", "🧥"},
	OutfitWaterproof: {"waterproof", "☔"},
	OutfitInsulated:  {"insulated", "❄️"},
	OutfitAvoidMetal: {"avoid_metal", "⚡"},
}

func (o Outfit) Key() string  { return outfitMeta[o].key }
func (o Outfit) Icon() string { return outfitMeta[o].icon }

func (o Outfit) String() string { return string(o) }

// temperatureBands is evaluated top-down; the first band whose lower bound
// the temperature reaches wins. The last band has no lower bound.
var temperatureBands = []struct {
	min  float64
	item Outfit
}{
	{35, OutfitHot},
	{25, OutfitWarm},
	{15, OutfitMild},
	{5, OutfitCool},
}

// BaseLayer returns the band item for a temperature in degrees Celsius.
func BaseLayer(temperatureC float64) Outfit {
	for _, b := range temperatureBands {
		if temperatureC >= b.min {
			return b.item
		}
	}
	return OutfitCold
}

// SuggestOutfit returns the clothing recommendations for an observation. The
// first element is always the temperature band item; condition extras follow
// in the order waterproof, insulated, avoid-metal.
func SuggestOutfit(temperatureC float64, condition Condition) []Outfit {
	outfit := []Outfit{BaseLayer(temperatureC)}

	if condition.isWet() {
		outfit = append(outfit, OutfitWaterproof)
	}
	if condition == ConditionSnow {
		outfit = append(outfit, OutfitInsulated)
	}
	if condition == ConditionThunderstorm {
		outfit = append(outfit, OutfitAvoidMetal)
	}

	return outfit
}
