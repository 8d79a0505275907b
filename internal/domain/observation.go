package domain

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LocalTimeLayout is the display format for an observation's local time.
const LocalTimeLayout = "2006-01-02 15:04:05"

// Observation is a decoded current-weather reading. It is read-only once
// built by a provider adapter.
type Observation struct {
	City           string
	Condition      Condition
	Description    string
	TemperatureC   float64
	HumidityPct    float64
	WindSpeedMS    float64
	ObservedAt     time.Time // UTC
	TimezoneOffset int       // seconds east of UTC
}

// LocalTime returns ObservedAt expressed in the city's UTC offset.
func (o Observation) LocalTime() time.Time {
	return o.ObservedAt.In(time.FixedZone("", o.TimezoneOffset))
}

// TitleDescription title-cases a provider description, e.g.
// "light intensity drizzle" -> "Light Intensity Drizzle".
func TitleDescription(s string) string {
	// Casers keep state and are not safe for concurrent use.
	return cases.Title(language.English).String(s)
}
