package element

import "github.com/helixml/periodic/domain/repository"

// WithDiscoveryYear filters by the "discovery_year" column.
func WithDiscoveryYear(year int64) repository.Option {
	return repository.WithCondition("discovery_year", year)
}

// WithStateID filters by the "state_id" column.
func WithStateID(id int64) repository.Option {
	return repository.WithCondition("state_id", id)
}

// WithSeriesID filters by the "series_id" column.
func WithSeriesID(id int64) repository.Option {
	return repository.WithCondition("series_id", id)
}
