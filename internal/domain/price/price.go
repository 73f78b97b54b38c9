// Package price defines the ordered price-tier scale used by businesses.
package price

// Range is a price tier on the ordered scale $ < $$ < $$$ < $$$$.
type Range string

// Price tier constants, cheapest to most expensive.
const (
	Budget   Range = "$"
	Moderate Range = "$$"
	Premium  Range = "$$$"
	Luxury   Range = "$$$$"
)

// IsValid checks if the range is one of the supported tiers.
func (r Range) IsValid() bool {
	return r == Budget || r == Moderate || r == Premium || r == Luxury
}

// BudgetFriendly reports whether the tier is $ or $$.
func (r Range) BudgetFriendly() bool {
	return r == Budget || r == Moderate
}

// Expensive reports whether the tier is $$$ or $$$$.
func (r Range) Expensive() bool {
	return r == Premium || r == Luxury
}

// Tier returns the 1-based position on the scale, or 0 for an invalid range.
func (r Range) Tier() int {
	switch r {
	case Budget:
		return 1
	case Moderate:
		return 2
	case Premium:
		return 3
	case Luxury:
		return 4
	default:
		return 0
	}
}

// Parse converts a string to a Range, reporting whether it is a valid tier.
func Parse(s string) (Range, bool) {
	r := Range(s)
	return r, r.IsValid()
}
