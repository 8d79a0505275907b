// Package render draws a dashboard report as terminal text or a PNG image.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-advisory-service/internal/domain"
)

// Title heads every rendering.
const Title = "Real-Time Weather Dashboard"

// Text writes the report in the layout of the interactive dashboard: the
// observation block, the animation placeholders, alerts when any fired, then
// clothing suggestions.
func Text(w io.Writer, r domain.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "🌤️ %s\n\n", Title)
	fmt.Fprintf(&b, "📍 %s\n", r.City)
	fmt.Fprintf(&b, "🌡️ Temperature: %s°C\n", formatNumber(r.TemperatureC))
	fmt.Fprintf(&b, "💧 Humidity: %s%%\n", formatNumber(r.HumidityPct))
	fmt.Fprintf(&b, "💨 Wind Speed: %s m/s\n", formatNumber(r.WindSpeedMS))
	fmt.Fprintf(&b, "🌈 Condition: %s\n", r.Description)
	fmt.Fprintf(&b, "🕒 Local Time: %s\n\n", r.LocalTime)

	writeAnimation(&b, "weather", r.WeatherAnimation, r.WeatherAnimationURL)
	writeAnimation(&b, "plant", r.PlantAnimation, r.PlantAnimationURL)

	if len(r.Alerts) > 0 {
		b.WriteString("\n🚨 Weather Alerts:\n")
		for _, a := range r.Alerts {
			fmt.Fprintf(&b, "- %s %s\n", a.Icon(), a)
		}
	}

	b.WriteString("\n👕 Clothing Suggestions:\n")
	for _, o := range r.Outfit {
		fmt.Fprintf(&b, "- %s %s\n", o.Icon(), o)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeAnimation(b *strings.Builder, kind string, doc []byte, url string) {
	if len(doc) == 0 {
		fmt.Fprintf(b, "No %s animation available.\n", kind)
		return
	}
	fmt.Fprintf(b, "Animation (%s): %s\n", kind, url)
}

// formatNumber prints provider readings without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
