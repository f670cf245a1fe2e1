package persistence

import (
	"context"

	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/internal/database"
)

// UnitOfWork implements dataset.UnitOfWork over database transactions.
type UnitOfWork struct {
	db database.Database
}

// NewUnitOfWork creates a UnitOfWork on the given database.
func NewUnitOfWork(db database.Database) UnitOfWork {
	return UnitOfWork{db: db}
}

// Do runs fn with stores bound to a fresh transaction.
func (u UnitOfWork) Do(ctx context.Context, fn func(dataset.Stores) error) error {
	return database.WithTransaction(ctx, u.db, func(tx database.Database) error {
		return fn(NewStores(tx))
	})
}

// NewStores builds every store on db. Outside a unit of work each statement
// runs in its own implicit transaction.
func NewStores(db database.Database) dataset.Stores {
	return dataset.Stores{
		Schema:       NewSchemaStore(db),
		States:       NewStateStore(db),
		Series:       NewSeriesStore(db),
		Elements:     NewElementStore(db),
		Compounds:    NewCompoundStore(db),
		Compositions: NewCompositionStore(db),
	}
}
