package ports

// RouteCatalog exposes the route vocabulary known to the service. Backed by
// the historical trip CSV; loaded once at startup, accessors are read-only.
type RouteCatalog interface {
	// Routes returns distinct route IDs in sorted order.
	Routes() []string
	// AverageDelays returns the mean historical delay per route in minutes.
	AverageDelays() map[string]float64
}
