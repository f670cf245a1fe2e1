package dataset

import (
	"context"

	"github.com/helixml/periodic/domain/compound"
	"github.com/helixml/periodic/domain/element"
)

// SchemaStore creates and removes entity tables.
type SchemaStore interface {
	// EnsureTable creates the table for kind when it is absent and reports
	// whether it did.
	EnsureTable(ctx context.Context, kind Kind) (created bool, err error)
	// DropTable removes the table for kind.
	DropTable(ctx context.Context, kind Kind) error
	// HasTable reports whether the table for kind exists.
	HasTable(ctx context.Context, kind Kind) (bool, error)
}

// Stores is the set of stores bound to one unit of work.
type Stores struct {
	Schema       SchemaStore
	States       element.StateStore
	Series       element.SeriesStore
	Elements     element.Store
	Compounds    compound.Store
	Compositions compound.CompositionStore
}

// UnitOfWork runs fn against stores bound to a single transaction. The work
// commits when fn returns nil and is rolled back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(Stores) error) error
}
