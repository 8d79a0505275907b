package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Report is everything one dashboard render displays. Alerts and Outfit are
// ordered for direct display.
type Report struct {
	ID          string    `json:"id"`
	City        string    `json:"city"`
	Condition   Condition `json:"condition"`
	Description string    `json:"description"`

	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	WindSpeedMS  float64 `json:"wind_speed_ms"`

	ObservedAt time.Time `json:"observed_at"`
	LocalTime  string    `json:"local_time"`

	Alerts []Advisory `json:"alerts"`
	Outfit []Outfit   `json:"outfit"`

	WeatherAnimationURL string          `json:"weather_animation_url"`
	PlantAnimationURL   string          `json:"plant_animation_url"`
	WeatherAnimation    json.RawMessage `json:"weather_animation,omitempty"`
	PlantAnimation      json.RawMessage `json:"plant_animation,omitempty"`
	BackgroundColor     string          `json:"background_color"`

	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport evaluates advisories, outfit and asset lookups for an
// observation. Animation documents are attached later by the caller.
func NewReport(obs Observation) Report {
	return Report{
		ID:          reportID(obs),
		City:        obs.City,
		Condition:   obs.Condition,
		Description: obs.Description,

		TemperatureC: obs.TemperatureC,
		HumidityPct:  obs.HumidityPct,
		WindSpeedMS:  obs.WindSpeedMS,

		ObservedAt: obs.ObservedAt,
		LocalTime:  obs.LocalTime().Format(LocalTimeLayout),

		Alerts: EvaluateAlerts(obs.TemperatureC, obs.WindSpeedMS, obs.Condition),
		Outfit: SuggestOutfit(obs.TemperatureC, obs.Condition),

		WeatherAnimationURL: WeatherAnimationURL(obs.Condition),
		PlantAnimationURL:   PlantAnimationURL(obs.Condition),
		BackgroundColor:     BackgroundColor(obs.Condition),

		GeneratedAt: clock.Now().UTC(),
	}
}

// AlertStrings returns the advisories as plain display strings.
func (r Report) AlertStrings() []string {
	out := make([]string, len(r.Alerts))
	for i, a := range r.Alerts {
		out[i] = string(a)
	}
	return out
}

// OutfitStrings returns the outfit items as plain display strings.
func (r Report) OutfitStrings() []string {
	out := make([]string, len(r.Outfit))
	for i, o := range r.Outfit {
		out[i] = string(o)
	}
	return out
}

// reportID is deterministic over city and observation time, so repeated
// renders of the same provider reading share an ID downstream.
func reportID(obs Observation) string {
	input := fmt.Sprintf("%s|%d", strings.ToLower(obs.City), obs.ObservedAt.Unix())
	hash := sha256.Sum256([]byte(input))
	prefix := obs.Condition
	if prefix == "" {
		prefix = ConditionUnknown
	}
	return strings.ToLower(string(prefix)) + "-" + hex.EncodeToString(hash[:8])
}
