package ports

// LabelEncoder maps a categorical label to the integer code assigned during
// training. Lookup reports ok=false for labels outside the trained vocabulary
// so callers handle the unseen case uniformly instead of trapping errors.
type LabelEncoder interface {
	Lookup(label string) (code int, ok bool)
	// Classes returns the trained vocabulary in code order.
	Classes() []string
}
