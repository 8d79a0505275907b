package render

import (
	"fmt"
	"image"
	"io"
	"strings"
	"sync"

	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Dashboard image size, sized for small e-ink panels.
const (
	Width  = 800
	Height = 480
)

const (
	margin      = 20.0
	columnX     = 420.0
	columnWidth = Width - columnX - margin
)

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

func face(size float64) (font.Face, error) {
	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// PNG encodes the report as a dashboard image.
func PNG(w io.Writer, r domain.Report) error {
	dc, err := DrawDashboard(r)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// DrawDashboard paints the report onto a fresh canvas. The left column holds
// the observation, the right column alerts and clothing suggestions.
func DrawDashboard(r domain.Report) (*gg.Context, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	dc := gg.NewContextForRGBA(img)

	dc.SetHexColor(r.BackgroundColor)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	ink := textColor(r.BackgroundColor)
	dc.SetHexColor(ink)

	if err := drawHeading(dc, r); err != nil {
		return nil, err
	}
	if err := drawObservation(dc, r, 70); err != nil {
		return nil, err
	}
	y, err := drawList(dc, "Weather Alerts", r.AlertStrings(), "No alerts", 70)
	if err != nil {
		return nil, err
	}
	if _, err := drawList(dc, "Clothing Suggestions", r.OutfitStrings(), "", y+20); err != nil {
		return nil, err
	}
	if err := drawFooter(dc, r); err != nil {
		return nil, err
	}
	return dc, nil
}

func drawHeading(dc *gg.Context, r domain.Report) error {
	if err := setFace(dc, 17.5); err != nil {
		return err
	}
	drawStringLeft(dc, Title, margin, 12)

	if err := setFace(dc, 22); err != nil {
		return err
	}
	w, _ := dc.MeasureString(r.LocalTime)
	drawStringLeft(dc, r.LocalTime, float64(dc.Width())-w-margin, 10)
	return nil
}

func drawObservation(dc *gg.Context, r domain.Report, top float64) error {
	if err := setFace(dc, 30); err != nil {
		return err
	}
	drawStringLeft(dc, r.City, margin, top)

	if err := setFace(dc, 48); err != nil {
		return err
	}
	drawStringLeft(dc, fmt.Sprintf("%.1f°C", r.TemperatureC), margin, top+50)

	if err := setFace(dc, 20); err != nil {
		return err
	}
	lines := []string{
		r.Description,
		fmt.Sprintf("Humidity: %s%%", formatNumber(r.HumidityPct)),
		fmt.Sprintf("Wind: %s m/s", formatNumber(r.WindSpeedMS)),
	}
	y := top + 130
	for _, line := range lines {
		drawStringLeft(dc, line, margin, y)
		y += 32
	}
	return nil
}

// drawList draws a headed bullet list in the right column, wrapping long
// items, and returns the y position below it. An empty list shows
// placeholder, or nothing when placeholder is empty.
func drawList(dc *gg.Context, heading string, items []string, placeholder string, top float64) (float64, error) {
	if len(items) == 0 && placeholder == "" {
		return top, nil
	}

	if err := setFace(dc, 22); err != nil {
		return 0, err
	}
	drawStringLeft(dc, heading, columnX, top)
	y := top + 34

	if err := setFace(dc, 17); err != nil {
		return 0, err
	}
	if len(items) == 0 {
		drawStringLeft(dc, placeholder, columnX, y)
		return y + 26, nil
	}
	for _, item := range items {
		for i, line := range dc.WordWrap(item, columnWidth-16) {
			prefix := "  "
			if i == 0 {
				prefix = "- "
			}
			drawStringLeft(dc, prefix+line, columnX, y)
			y += 24
		}
	}
	return y, nil
}

func drawFooter(dc *gg.Context, r domain.Report) error {
	if err := setFace(dc, 12); err != nil {
		return err
	}
	drawStringLeft(dc, "Report "+r.ID, margin, Height-30)
	return nil
}

func setFace(dc *gg.Context, size float64) error {
	f, err := face(size)
	if err != nil {
		return err
	}
	dc.SetFontFace(f)
	return nil
}

func drawStringLeft(dc *gg.Context, text string, x, y float64) {
	_, h := dc.MeasureString(text)
	dc.DrawString(text, x, y+h)
}

// textColor picks black or white ink for legibility on a hex background.
func textColor(background string) string {
	var r, g, b uint8
	hex := strings.TrimPrefix(background, "#")
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return "#000000"
	}
	// ITU-R BT.601 luma.
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luma < 128 {
		return "#FFFFFF"
	}
	return "#000000"
}
