// Command weather renders the dashboard for one city and exits.
//
// Usage:
//
//	go run ./cmd/weather -city "Pune, IN"
//	go run ./cmd/weather -city "Pune, IN" -format png -out pune.png
//	go run ./cmd/weather -list
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/adapter/lottie"
	"github.com/couchcryptid/weather-advisory-service/internal/adapter/openweather"
	"github.com/couchcryptid/weather-advisory-service/internal/config"
	"github.com/couchcryptid/weather-advisory-service/internal/dashboard"
	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/couchcryptid/weather-advisory-service/internal/observability"
	"github.com/couchcryptid/weather-advisory-service/internal/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	city := flag.String("city", "", "city to render, e.g. \"Delhi, IN\" (default DEFAULT_CITY)")
	format := flag.String("format", "text", "output format: text, json or png")
	out := flag.String("out", "", "output file (default stdout)")
	list := flag.Bool("list", false, "print the popular city list and exit")
	timeout := flag.Duration("timeout", 15*time.Second, "overall deadline for the render")
	flag.Parse()

	if *list {
		for _, c := range domain.PopularCities() {
			fmt.Println(c)
		}
		return nil
	}

	write, err := writerFor(*format)
	if err != nil {
		flag.Usage()
		return err
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *city == "" {
		*city = cfg.DefaultCity
	}

	logger := observability.NewLoggerTo(os.Stderr, cfg)
	// Unregistered: a one-shot run exposes no /metrics.
	metrics := observability.NewMetricsForTesting()

	provider := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.OpenWeatherTimeout, metrics, logger)
	var assets domain.AnimationLoader
	if cfg.AssetsEnabled {
		assets = lottie.NewLoader(cfg.AssetTimeout, 2, metrics, logger)
	}
	svc := dashboard.New(provider, assets, nil, logger, metrics)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	report, err := svc.Render(ctx, *city)
	if err != nil {
		return fmt.Errorf("⚠️ %w", err)
	}

	dst := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}
	return write(dst, report)
}

func writerFor(format string) (func(io.Writer, domain.Report) error, error) {
	switch format {
	case "text":
		return render.Text, nil
	case "png":
		return render.PNG, nil
	case "json":
		return func(w io.Writer, r domain.Report) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
