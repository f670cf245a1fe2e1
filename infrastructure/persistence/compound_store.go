package persistence

import (
	"context"
	"fmt"

	"github.com/helixml/periodic/domain/compound"
	"github.com/helixml/periodic/internal/database"
)

// CompoundStore implements compound.Store using GORM.
type CompoundStore struct {
	database.Repository[compound.Compound, CompoundModel]
}

// NewCompoundStore creates a new CompoundStore.
func NewCompoundStore(db database.Database) CompoundStore {
	return CompoundStore{
		Repository: database.NewRepository[compound.Compound, CompoundModel](db, CompoundMapper{}, "compound"),
	}
}

// Formulas returns every compound formula in key order.
func (s CompoundStore) Formulas(ctx context.Context) ([]string, error) {
	var formulas []string
	err := s.DB(ctx).Model(&CompoundModel{}).Order("id ASC").Pluck("formula", &formulas).Error
	if err != nil {
		return nil, fmt.Errorf("compound formulas: %w", err)
	}
	return formulas, nil
}

// CompositionStore implements compound.CompositionStore using GORM.
type CompositionStore struct {
	database.Repository[compound.Composition, CompositionModel]
}

// NewCompositionStore creates a new CompositionStore.
func NewCompositionStore(db database.Database) CompositionStore {
	return CompositionStore{
		Repository: database.NewRepository[compound.Composition, CompositionModel](db, CompositionMapper{}, "composition"),
	}
}
