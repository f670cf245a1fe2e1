package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helixml/periodic/domain/compound"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/element"
	"github.com/helixml/periodic/domain/repository"
)

// Query provides the read operations over every entity kind.
type Query struct {
	uow    dataset.UnitOfWork
	logger *slog.Logger
}

// NewQuery creates a new Query service.
func NewQuery(uow dataset.UnitOfWork, logger *slog.Logger) *Query {
	if logger == nil {
		logger = slog.Default()
	}
	return &Query{uow: uow, logger: logger}
}

// read runs fn inside a unit of work and returns its value.
func read[T any](ctx context.Context, uow dataset.UnitOfWork, fn func(dataset.Stores) (T, error)) (T, error) {
	var out T
	err := uow.Do(ctx, func(stores dataset.Stores) error {
		var err error
		out, err = fn(stores)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// ListStates returns every state in insertion order.
func (q *Query) ListStates(ctx context.Context) ([]element.State, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]element.State, error) {
		return s.States.Find(ctx, repository.WithInsertionOrder())
	})
}

// ListSeries returns every series in insertion order.
func (q *Query) ListSeries(ctx context.Context) ([]element.Series, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]element.Series, error) {
		return s.Series.Find(ctx, repository.WithInsertionOrder())
	})
}

// ListElements returns every element in insertion order.
func (q *Query) ListElements(ctx context.Context) ([]element.Element, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]element.Element, error) {
		return s.Elements.Find(ctx, repository.WithInsertionOrder())
	})
}

// ListCompounds returns every compound in insertion order.
func (q *Query) ListCompounds(ctx context.Context) ([]compound.Compound, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]compound.Compound, error) {
		return s.Compounds.Find(ctx, repository.WithInsertionOrder())
	})
}

// ListCompositions returns every composition edge in insertion order.
func (q *Query) ListCompositions(ctx context.Context) ([]compound.Composition, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]compound.Composition, error) {
		return s.Compositions.Find(ctx, repository.WithInsertionOrder())
	})
}

// FindState returns the state with the given key or dataset.ErrNotFound.
func (q *Query) FindState(ctx context.Context, id int64) (element.State, error) {
	state, err := read(ctx, q.uow, func(s dataset.Stores) (element.State, error) {
		return s.States.FindOne(ctx, repository.WithID(id))
	})
	if err != nil {
		return element.State{}, fmt.Errorf("state %d: %w", id, err)
	}
	return state, nil
}

// FindSeries returns the series with the given key or dataset.ErrNotFound.
func (q *Query) FindSeries(ctx context.Context, id int64) (element.Series, error) {
	series, err := read(ctx, q.uow, func(s dataset.Stores) (element.Series, error) {
		return s.Series.FindOne(ctx, repository.WithID(id))
	})
	if err != nil {
		return element.Series{}, fmt.Errorf("series %d: %w", id, err)
	}
	return series, nil
}

// FindElement returns the element with the given key or dataset.ErrNotFound.
func (q *Query) FindElement(ctx context.Context, id int64) (element.Element, error) {
	e, err := read(ctx, q.uow, func(s dataset.Stores) (element.Element, error) {
		return s.Elements.FindOne(ctx, repository.WithID(id))
	})
	if err != nil {
		return element.Element{}, fmt.Errorf("element %d: %w", id, err)
	}
	return e, nil
}

// FindCompound returns the compound with the given key or dataset.ErrNotFound.
func (q *Query) FindCompound(ctx context.Context, id int64) (compound.Compound, error) {
	c, err := read(ctx, q.uow, func(s dataset.Stores) (compound.Compound, error) {
		return s.Compounds.FindOne(ctx, repository.WithID(id))
	})
	if err != nil {
		return compound.Compound{}, fmt.Errorf("compound %d: %w", id, err)
	}
	return c, nil
}

// FindComposition returns the composition edge with the given id or
// dataset.ErrNotFound.
func (q *Query) FindComposition(ctx context.Context, id int64) (compound.Composition, error) {
	c, err := read(ctx, q.uow, func(s dataset.Stores) (compound.Composition, error) {
		return s.Compositions.FindOne(ctx, repository.WithID(id))
	})
	if err != nil {
		return compound.Composition{}, fmt.Errorf("composition %d: %w", id, err)
	}
	return c, nil
}

// SearchElementsByName returns the elements whose name contains text,
// matched case-sensitively. No match is an empty slice.
func (q *Query) SearchElementsByName(ctx context.Context, text string) ([]element.Element, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]element.Element, error) {
		return s.Elements.Find(ctx, repository.WithNameContaining(text), repository.WithInsertionOrder())
	})
}

// DiscoveryYears returns the distinct element discovery years, ascending.
func (q *Query) DiscoveryYears(ctx context.Context) ([]int64, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]int64, error) {
		return s.Elements.DiscoveryYears(ctx)
	})
}

// Formulas returns every compound formula in insertion order.
func (q *Query) Formulas(ctx context.Context) ([]string, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]string, error) {
		return s.Compounds.Formulas(ctx)
	})
}

// FindCompoundsByFormula returns the compounds whose formula equals formula.
func (q *Query) FindCompoundsByFormula(ctx context.Context, formula string) ([]compound.Compound, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]compound.Compound, error) {
		return s.Compounds.Find(ctx, compound.WithFormula(formula), repository.WithInsertionOrder())
	})
}

// FindCompositionsByElement returns the composition edges that point at
// the element. A missing element is dataset.ErrNotFound, distinct from an
// element that appears in no compound.
func (q *Query) FindCompositionsByElement(ctx context.Context, elementID int64) ([]compound.Composition, error) {
	return read(ctx, q.uow, func(s dataset.Stores) ([]compound.Composition, error) {
		exists, err := s.Elements.Exists(ctx, repository.WithID(elementID))
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("element %d: %w", elementID, dataset.ErrNotFound)
		}
		return s.Compositions.Find(ctx, compound.WithElementID(elementID), repository.WithInsertionOrder())
	})
}
