// Package domain models a current-weather observation and the display
// decisions derived from it.
//
// # Data Source
//
// Observations come from the OpenWeatherMap current weather endpoint queried
// with units=metric, so temperatures are degrees Celsius and wind speeds are
// metres per second. The fields used are weather[0].main (condition
// category), weather[0].description, main.temp, main.humidity, wind.speed,
// dt (Unix seconds, UTC) and timezone (offset in seconds).
//
// # Conditions
//
// weather[0].main is a coarse category from a closed set: Clear, Clouds,
// Rain, Thunderstorm, Drizzle, Snow, Mist, Haze, Fog, Smoke, Dust, Sand, Ash,
// Squall, Tornado. Anything else is ConditionUnknown, which gets the
// temperature band outfit and no condition-specific advisories.
//
// # Alert Rules
//
// Evaluated independently in this order, each adding at most one advisory:
//
//	temperature >= 38           heatwave
//	else temperature <= 5       cold
//	wind >= 10                  high wind
//	Thunderstorm                thunderstorm
//	Rain|Drizzle and wind > 7   heavy rain
//	Snow                        slippery roads
//
// # Outfit Bands
//
// Exactly one base item by temperature, first match wins:
//
//	>= 35 hot | >= 25 warm | >= 15 mild | >= 5 cool | otherwise cold
//
// followed by extras: Rain|Drizzle waterproof, Snow insulated boots,
// Thunderstorm avoid metal.
//
// Both evaluators are total, pure functions. Lookup tables (animations,
// background colours, city aliases) are package-level and never mutated.
package domain
