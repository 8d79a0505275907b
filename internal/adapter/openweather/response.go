package openweather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/domain"
)

// OpenWeatherMap API response types.

type response struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Name    string     `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Timezone int   `json:"timezone"`
	Dt       int64 `json:"dt"`
}

// statusCode decodes "cod", which the API sends as a number on success and
// as a string on most errors ("404").
type statusCode int

func (s *statusCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = 0
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("cod %q is not numeric", str)
		}
		*s = statusCode(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = statusCode(n)
	return nil
}

func (r response) toObservation(city string) domain.Observation {
	obs := domain.Observation{
		City:           city,
		Condition:      domain.ConditionUnknown,
		TemperatureC:   r.Main.Temp,
		HumidityPct:    r.Main.Humidity,
		WindSpeedMS:    r.Wind.Speed,
		ObservedAt:     time.Unix(r.Dt, 0).UTC(),
		TimezoneOffset: r.Timezone,
	}
	if len(r.Weather) > 0 {
		obs.Condition = domain.ParseCondition(r.Weather[0].Main)
		obs.Description = domain.TitleDescription(r.Weather[0].Description)
	}
	if obs.WindSpeedMS < 0 {
		obs.WindSpeedMS = 0
	}
	return obs
}
