package http

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/couchcryptid/weather-advisory-service/internal/domain"
)

type advisoriesResponse struct {
	Condition domain.Condition `json:"condition"`
	Alerts    []string         `json:"alerts"`
	Outfit    []string         `json:"outfit"`
}

// handleAdvisories evaluates alerts and outfit for caller-supplied readings
// without contacting the weather provider.
func (s *Server) handleAdvisories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	temp, err := parseReading(q, "temperature")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	wind, err := parseReading(q, "wind_speed")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if wind < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "wind_speed must not be negative"})
		return
	}
	condition := domain.ParseCondition(q.Get("condition"))

	alerts := domain.EvaluateAlerts(temp, wind, condition)
	outfit := domain.SuggestOutfit(temp, condition)

	resp := advisoriesResponse{
		Condition: condition,
		Alerts:    make([]string, len(alerts)),
		Outfit:    make([]string, len(outfit)),
	}
	for i, a := range alerts {
		resp.Alerts[i] = a.String()
	}
	for i, o := range outfit {
		resp.Outfit[i] = o.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseReading(q url.Values, name string) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a finite number", name)
	}
	return v, nil
}
