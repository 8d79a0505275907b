// Command advise evaluates advisories and outfit suggestions for a CSV of
// readings and writes the resulting reports as a JSON fixture. Report
// timestamps come from a fixed clock so the output is reproducible.
//
// CSV columns (header required, order free): city, temperature, wind_speed,
// condition, and optionally humidity.
//
// Usage:
//
//	go run ./cmd/advise -csv data/readings.csv -out data/mock/reports.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// observedAt stamps every reading; it feeds the report IDs.
var observedAt = time.Date(2024, time.July, 1, 6, 30, 0, 0, time.UTC)

var generatedAt = time.Date(2024, time.July, 1, 7, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "input CSV of readings")
	out := flag.String("out", "", "output path for the JSON fixture")
	flag.Parse()

	if *csvPath == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -out")
	}

	domain.SetClock(clockwork.NewFakeClockAt(generatedAt))
	defer domain.SetClock(nil)

	f, err := os.Open(*csvPath)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	observations, err := readObservations(f)
	if err != nil {
		return fmt.Errorf("processing %s: %w", *csvPath, err)
	}

	reports := make([]domain.Report, len(observations))
	for i, obs := range observations {
		reports[i] = domain.NewReport(obs)
	}
	log.Printf("total: %d readings", len(reports))

	if err := writeJSON(*out, reports); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s", *out)

	printStats(os.Stdout, reports)
	return nil
}

func readObservations(r io.Reader) ([]domain.Observation, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"city", "temperature", "wind_speed", "condition"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	observations := make([]domain.Observation, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		temp, err := parseFloat(get(row, colIdx, "temperature"))
		if err != nil {
			return nil, fmt.Errorf("line %d: temperature: %w", line, err)
		}
		wind, err := parseFloat(get(row, colIdx, "wind_speed"))
		if err != nil {
			return nil, fmt.Errorf("line %d: wind_speed: %w", line, err)
		}
		if wind < 0 {
			return nil, fmt.Errorf("line %d: wind_speed must not be negative", line)
		}
		var humidity float64
		if h := get(row, colIdx, "humidity"); h != "" {
			if humidity, err = parseFloat(h); err != nil {
				return nil, fmt.Errorf("line %d: humidity: %w", line, err)
			}
		}

		condition := domain.ParseCondition(get(row, colIdx, "condition"))
		observations = append(observations, domain.Observation{
			City:         domain.NormalizeCity(get(row, colIdx, "city")),
			Condition:    condition,
			Description:  condition.String(),
			TemperatureC: temp,
			HumidityPct:  humidity,
			WindSpeedMS:  wind,
			ObservedAt:   observedAt,
		})
	}
	return observations, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

type keyCount struct {
	key   string
	count int
}

// printStats summarizes the fixture for updating test assertions.
func printStats(w io.Writer, reports []domain.Report) {
	advisories := map[string]int{}
	outfit := map[string]int{}
	var quiet int
	for i := range reports {
		if len(reports[i].Alerts) == 0 {
			quiet++
		}
		for _, a := range reports[i].Alerts {
			advisories[a.Key()]++
		}
		for _, o := range reports[i].Outfit {
			outfit[o.Key()]++
		}
	}

	fmt.Fprintln(w, "\n=== Stats for updating test assertions ===")
	fmt.Fprintf(w, "Total: %d (no alerts: %d)\n", len(reports), quiet)
	fmt.Fprintf(w, "Advisories: %s\n", formatCounts(advisories))
	fmt.Fprintf(w, "Outfit items: %s\n", formatCounts(outfit))
}

func formatCounts(m map[string]int) string {
	kc := make([]keyCount, 0, len(m))
	for k, c := range m {
		kc = append(kc, keyCount{k, c})
	}
	sort.Slice(kc, func(i, j int) bool {
		if kc[i].count != kc[j].count {
			return kc[i].count > kc[j].count
		}
		return kc[i].key < kc[j].key
	})
	parts := make([]string, len(kc))
	for i, c := range kc {
		parts[i] = fmt.Sprintf("%s=%d", c.key, c.count)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
