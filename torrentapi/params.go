package torrentapi

import (
	"fmt"
	"slices"
)

// Parameters is an immutable set of options shaping a list or search request.
// Build it with a ParametersBuilder.
type Parameters struct {
	ranked      bool
	limit       Limit
	categories  []Category
	sortBy      SortBy
	minSeeders  *uint
	minLeechers *uint
	format      Format
}

// Ranked reports whether only scene, rarbg and rartv releases are returned
func (p *Parameters) Ranked() bool { return p.ranked }

// Limit returns the number of torrents the request returns
func (p *Parameters) Limit() Limit { return p.limit }

// Categories returns a copy of the categories the request is restricted to, or nil
func (p *Parameters) Categories() []Category { return slices.Clone(p.categories) }

// SortBy returns the sorting criteria
func (p *Parameters) SortBy() SortBy { return p.sortBy }

// MinSeeders returns the minimum seeder count, if set
func (p *Parameters) MinSeeders() (uint, bool) {
	if p.minSeeders == nil {
		return 0, false
	}
	return *p.minSeeders, true
}

// MinLeechers returns the minimum leecher count, if set
func (p *Parameters) MinLeechers() (uint, bool) {
	if p.minLeechers == nil {
		return 0, false
	}
	return *p.minLeechers, true
}

// Format returns the response format
func (p *Parameters) Format() Format { return p.format }

// ParametersBuilder accumulates options for a Parameters value
type ParametersBuilder struct {
	p Parameters
}

// NewParametersBuilder returns a builder holding the API defaults:
// ranked releases, 25 results, sorted by upload date, compact JSON.
func NewParametersBuilder() *ParametersBuilder {
	return &ParametersBuilder{
		p: Parameters{
			ranked: true,
			limit:  Limit25,
			sortBy: SortLast,
			format: FormatJSON,
		},
	}
}

func (b *ParametersBuilder) Ranked(ranked bool) *ParametersBuilder {
	b.p.ranked = ranked
	return b
}

func (b *ParametersBuilder) Limit(limit Limit) *ParametersBuilder {
	b.p.limit = limit
	return b
}

// Categories restricts the request to the given categories. An empty list
// leaves the request unrestricted.
func (b *ParametersBuilder) Categories(categories ...Category) *ParametersBuilder {
	b.p.categories = slices.Clone(categories)
	return b
}

func (b *ParametersBuilder) SortBy(sortBy SortBy) *ParametersBuilder {
	b.p.sortBy = sortBy
	return b
}

func (b *ParametersBuilder) MinSeeders(n uint) *ParametersBuilder {
	b.p.minSeeders = &n
	return b
}

func (b *ParametersBuilder) MinLeechers(n uint) *ParametersBuilder {
	b.p.minLeechers = &n
	return b
}

func (b *ParametersBuilder) Format(format Format) *ParametersBuilder {
	b.p.format = format
	return b
}

// Build validates the accumulated options and returns a Parameters value
// that shares no state with the builder.
func (b *ParametersBuilder) Build() (*Parameters, error) {
	if !b.p.limit.IsValid() {
		return nil, fmt.Errorf("%w: limit %d must be 25, 50 or 100", ErrInvalidConfig, b.p.limit)
	}
	if b.p.sortBy.Wire() == "" {
		return nil, fmt.Errorf("%w: unknown sort criteria %d", ErrInvalidConfig, b.p.sortBy)
	}
	if b.p.format.Wire() == "" {
		return nil, fmt.Errorf("%w: unknown format %d", ErrInvalidConfig, b.p.format)
	}
	for _, c := range b.p.categories {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %d", ErrInvalidConfig, c)
		}
	}

	p := b.p
	p.categories = slices.Clone(b.p.categories)
	if b.p.minSeeders != nil {
		n := *b.p.minSeeders
		p.minSeeders = &n
	}
	if b.p.minLeechers != nil {
		n := *b.p.minLeechers
		p.minLeechers = &n
	}
	return &p, nil
}
