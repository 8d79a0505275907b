package domain

// Thresholds for the alert rules. Temperatures are degrees Celsius, wind
// speeds metres per second.
const (
	heatwaveTempC   = 38.0
	coldTempC       = 5.0
	highWindMS      = 10.0
	heavyRainWindMS = 7.0 // strictly greater than
)

// Advisory is a short hazard warning intended for direct display.
type Advisory string

const (
	AdvisoryHeatwave      Advisory = "Heatwave: Stay hydrated!"
	AdvisoryCold          Advisory = "Cold: Dress warmly."
	AdvisoryHighWind      Advisory = "High wind: Be cautious."
	AdvisoryThunderstorm  Advisory = "Thunderstorm: Stay indoors."
	AdvisoryHeavyRain     Advisory = "Heavy rain: Watch flooding."
	AdvisorySlipperyRoads Advisory = "Snow alert: Roads may be slippery."
)

var advisoryMeta = map[Advisory]struct{ key, icon string }{
	AdvisoryHeatwave:      {"heatwave", "🔥"},
	AdvisoryCold:          {"cold", "❄️"},
	AdvisoryHighWind:      {"high_wind", "🌬️"},
	AdvisoryThunderstorm:  {"thunderstorm", "⛈️"},
	AdvisoryHeavyRain:     {"heavy_rain", "🌧"},
	AdvisorySlipperyRoads: {"slippery_roads", "🌨️"},
}

// Key returns a stable machine-readable identifier, used as a metric label.
func (a Advisory) Key() string { return advisoryMeta[a].key }

// Icon returns the emoji shown next to the advisory in text output.
func (a Advisory) Icon() string { return advisoryMeta[a].icon }

func (a Advisory) String() string { return string(a) }

// EvaluateAlerts returns the hazard advisories for an observation, in rule
// order:
//
//  1. heatwave (t >= 38) or else cold (t <= 5)
//  2. high wind (wind >= 10)
//  3. thunderstorm
//  4. heavy rain (rain or drizzle with wind > 7)
//  5. slippery roads (snow)
//
// Each rule contributes at most one advisory. The result is empty, never nil,
// when nothing fires.
func EvaluateAlerts(temperatureC, windSpeedMS float64, condition Condition) []Advisory {
	alerts := make([]Advisory, 0, 3)

	if temperatureC >= heatwaveTempC {
		alerts = append(alerts, AdvisoryHeatwave)
	} else if temperatureC <= coldTempC {
		alerts = append(alerts, AdvisoryCold)
	}
	if windSpeedMS >= highWindMS {
		alerts = append(alerts, AdvisoryHighWind)
	}
	if condition == ConditionThunderstorm {
		alerts = append(alerts, AdvisoryThunderstorm)
	}
	if condition.isWet() && windSpeedMS > heavyRainWindMS {
		alerts = append(alerts, AdvisoryHeavyRain)
	}
	if condition == ConditionSnow {
		alerts = append(alerts, AdvisorySlipperyRoads)
	}

	return alerts
}
