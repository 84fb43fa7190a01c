package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Default vocabulary served when the historical CSV is missing or unusable.
var defaultRoutes = []string{"R1", "R2", "R3", "R4"}

// CSVCatalog is the route vocabulary read from the historical trip CSV at
// startup. Read-only afterwards.
type CSVCatalog struct {
	routes    []string
	avgDelays map[string]float64
}

// LoadCSV builds a catalog from the trip history at path. Any failure falls
// back to the default routes with a warning; the catalog endpoint must stay
// serviceable without the dataset.
func LoadCSV(path string, logger *slog.Logger) *CSVCatalog {
	routes, avg, err := readHistory(path)
	if err != nil {
		logger.Warn("route history unavailable, serving default catalog", "path", path, "error", err)
		return &CSVCatalog{routes: defaultRoutes, avgDelays: map[string]float64{}}
	}

	logger.Info("route catalog loaded", "path", path, "routes", len(routes))
	return &CSVCatalog{routes: routes, avgDelays: avg}
}

// Routes returns distinct route IDs in sorted order.
func (c *CSVCatalog) Routes() []string {
	return c.routes
}

// AverageDelays returns the mean historical delay per route in minutes,
// rounded to one decimal.
func (c *CSVCatalog) AverageDelays() map[string]float64 {
	return c.avgDelays
}

func readHistory(path string) ([]string, map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read history: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows in the cleaned dataset

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read history: read header: %w", err)
	}

	routeCol, delayCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "route_id":
			routeCol = i
		case "delay_minutes":
			delayCol = i
		}
	}
	if routeCol < 0 {
		return nil, nil, fmt.Errorf("read history: no route_id column in %q", path)
	}

	sums := map[string]float64{}
	counts := map[string]int{}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read history: read row: %w", err)
		}
		if routeCol >= len(record) {
			continue
		}

		route := strings.ToUpper(strings.TrimSpace(record[routeCol]))
		if route == "" {
			continue
		}

		if _, ok := counts[route]; !ok {
			counts[route] = 0
			sums[route] = 0
		}

		if delayCol < 0 || delayCol >= len(record) {
			continue
		}
		if d, err := strconv.ParseFloat(strings.TrimSpace(record[delayCol]), 64); err == nil {
			sums[route] += d
			counts[route]++
		}
	}

	if len(counts) == 0 {
		return nil, nil, fmt.Errorf("read history: no routes in %q", path)
	}

	routes := make([]string, 0, len(counts))
	avg := make(map[string]float64, len(counts))
	for route, n := range counts {
		routes = append(routes, route)
		if n > 0 {
			avg[route] = math.Round(sums[route]/float64(n)*10) / 10
		}
	}
	sort.Strings(routes)

	return routes, avg, nil
}
