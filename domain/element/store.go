package element

import (
	"context"

	"github.com/helixml/periodic/domain/repository"
)

// StateStore defines persistence for states.
type StateStore interface {
	repository.Store[State]
	Insert(ctx context.Context, state State) (State, error)
	// Rename sets the name of an existing state row.
	Rename(ctx context.Context, id int64, name string) error
}

// SeriesStore defines persistence for series.
type SeriesStore interface {
	repository.Store[Series]
	Insert(ctx context.Context, series Series) (Series, error)
}

// Store defines persistence for elements.
type Store interface {
	repository.Store[Element]
	Insert(ctx context.Context, element Element) (Element, error)
	// DiscoveryYears returns the distinct discovery years in ascending order.
	DiscoveryYears(ctx context.Context) ([]int64, error)
	// AssignSeries points every element matching the options at seriesID and
	// returns the number of rows changed.
	AssignSeries(ctx context.Context, seriesID int64, options ...repository.Option) (int64, error)
}
