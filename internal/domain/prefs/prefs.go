// Package prefs defines the per-user preference record consumed by scoring.
package prefs

import "github.com/locallens/bizrank/internal/domain/geo"

// Preferences is an immutable user preference record: liked interest
// categories, liked sub-categories, enforced deal-breakers, and an optional
// location. Duplicate ids are inert and membership order is irrelevant.
type Preferences struct {
	interests     map[string]struct{}
	subcategories map[string]struct{}
	dealBreakers  map[string]struct{}
	lat, lng      float64
	hasLocation   bool
}

// Option configures an optional preference attribute.
type Option func(*Preferences)

// WithInterests adds interest-category ids the user likes.
func WithInterests(ids ...string) Option {
	return func(p *Preferences) { addAll(p.interests, ids) }
}

// WithSubcategories adds sub-category ids the user likes.
func WithSubcategories(ids ...string) Option {
	return func(p *Preferences) { addAll(p.subcategories, ids) }
}

// WithDealBreakers adds deal-breaker rule ids the user wants enforced.
// Unrecognized ids are stored as-is; the engine ignores them.
func WithDealBreakers(ids ...string) Option {
	return func(p *Preferences) { addAll(p.dealBreakers, ids) }
}

// WithLocation sets the user location. Out-of-range coordinates are ignored,
// leaving distance scoring inert.
func WithLocation(lat, lng float64) Option {
	return func(p *Preferences) {
		if !geo.ValidateCoordinates(lat, lng) {
			return
		}
		p.lat = lat
		p.lng = lng
		p.hasLocation = true
	}
}

// New creates a preference record.
func New(opts ...Option) Preferences {
	p := Preferences{
		interests:     make(map[string]struct{}),
		subcategories: make(map[string]struct{}),
		dealBreakers:  make(map[string]struct{}),
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// HasInterest reports whether the user likes the interest category.
func (p *Preferences) HasInterest(id string) bool {
	_, ok := p.interests[id]
	return ok
}

// HasSubcategory reports whether the user likes the sub-category.
func (p *Preferences) HasSubcategory(id string) bool {
	_, ok := p.subcategories[id]
	return ok
}

// DealBreakers returns the enforced deal-breaker ids (unspecified order).
func (p *Preferences) DealBreakers() []string {
	out := make([]string, 0, len(p.dealBreakers))
	for id := range p.dealBreakers {
		out = append(out, id)
	}
	return out
}

// HasDealBreakers reports whether any deal-breaker is enforced.
func (p *Preferences) HasDealBreakers() bool { return len(p.dealBreakers) > 0 }

// Location returns the user location, if known.
func (p *Preferences) Location() (lat, lng float64, ok bool) {
	return p.lat, p.lng, p.hasLocation
}

func addAll(set map[string]struct{}, ids []string) {
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
}
