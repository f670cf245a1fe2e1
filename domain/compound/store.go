package compound

import (
	"context"

	"github.com/helixml/periodic/domain/repository"
)

// Store defines persistence for compounds.
type Store interface {
	repository.Store[Compound]
	Insert(ctx context.Context, compound Compound) (Compound, error)
	// Formulas returns every compound formula in key order.
	Formulas(ctx context.Context) ([]string, error)
}

// CompositionStore defines persistence for composition edges.
type CompositionStore interface {
	repository.Store[Composition]
	// Insert stores a new edge and returns it with its assigned id.
	Insert(ctx context.Context, composition Composition) (Composition, error)
}
