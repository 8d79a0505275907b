package domain

import "strings"

// cityAliases maps colonial-era names still accepted as input to the names
// the provider indexes.
var cityAliases = map[string]string{
	"Bangalore, IN": "Bengaluru, IN",
	"Bombay, IN":    "Mumbai, IN",
	"Madras, IN":    "Chennai, IN",
	"Calcutta, IN":  "Kolkata, IN",
}

var popularCities = []string{
	"Mumbai, IN", "Delhi, IN", "Bangalore, IN", "Chennai, IN",
	"Kolkata, IN", "Hyderabad, IN", "Pune, IN", "Ahmedabad, IN",
	"Jaipur, IN", "Lucknow, IN",
}

// NormalizeCity trims the query and replaces known aliases. Matching is
// exact on the trimmed input; anything else passes through unchanged.
func NormalizeCity(name string) string {
	name = strings.TrimSpace(name)
	if v, ok := cityAliases[name]; ok {
		return v
	}
	return name
}

// PopularCities returns the preset city list offered by the selector.
func PopularCities() []string {
	out := make([]string, len(popularCities))
	copy(out, popularCities)
	return out
}
