package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/internal/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm/clause"
)

// ErrTableReferenced indicates a drop was refused because another table
// still declares a foreign key to it.
var ErrTableReferenced = errors.New("table is referenced by another table")

// PostgreSQL error codes reported by a failed drop.
const (
	pgDependentObjects = "2BP01"
	pgUndefinedTable   = "42P01"
)

// modelFor returns the GORM model backing a kind.
func modelFor(kind dataset.Kind) (any, error) {
	switch kind {
	case dataset.KindState:
		return &StateModel{}, nil
	case dataset.KindSeries:
		return &SeriesModel{}, nil
	case dataset.KindElement:
		return &ElementModel{}, nil
	case dataset.KindCompound:
		return &CompoundModel{}, nil
	case dataset.KindComposition:
		return &CompositionModel{}, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", dataset.ErrInvalidArgument, kind)
}

// TableName returns the table backing a kind.
func TableName(kind dataset.Kind) string {
	switch kind {
	case dataset.KindState:
		return tableStates
	case dataset.KindSeries:
		return tableSeries
	case dataset.KindElement:
		return tableElements
	case dataset.KindCompound:
		return tableCompounds
	case dataset.KindComposition:
		return tableCompositions
	}
	return ""
}

// SchemaStore implements dataset.SchemaStore using the GORM migrator.
type SchemaStore struct {
	db database.Database
}

// NewSchemaStore creates a new SchemaStore.
func NewSchemaStore(db database.Database) SchemaStore {
	return SchemaStore{db: db}
}

// HasTable reports whether the table for kind exists.
func (s SchemaStore) HasTable(ctx context.Context, kind dataset.Kind) (bool, error) {
	model, err := modelFor(kind)
	if err != nil {
		return false, err
	}
	return s.db.Session(ctx).Migrator().HasTable(model), nil
}

// EnsureTable creates the table for kind if it is absent. Element tables
// are created with foreign keys to the classification tables.
func (s SchemaStore) EnsureTable(ctx context.Context, kind dataset.Kind) (bool, error) {
	model, err := modelFor(kind)
	if err != nil {
		return false, err
	}
	migrator := s.db.Session(ctx).Migrator()
	if migrator.HasTable(model) {
		return false, nil
	}
	if err := migrator.CreateTable(model); err != nil {
		return false, fmt.Errorf("create table %s: %w", TableName(kind), err)
	}
	return true, nil
}

// DropTable removes the table for kind. A table is kept while any table
// that references it exists, even an empty one. The statement is issued
// directly because the SQLite migrator turns foreign key enforcement off
// while it drops.
func (s SchemaStore) DropTable(ctx context.Context, kind dataset.Kind) error {
	if _, err := modelFor(kind); err != nil {
		return err
	}
	table := TableName(kind)
	for _, dependent := range kind.Dependents() {
		has, err := s.HasTable(ctx, dependent)
		if err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
		if has {
			return fmt.Errorf("drop table %s: %w by %s", table, ErrTableReferenced, TableName(dependent))
		}
	}
	if err := s.db.Session(ctx).Exec("DROP TABLE ?", clause.Table{Name: table}).Error; err != nil {
		return fmt.Errorf("drop table %s: %w", table, err)
	}
	return nil
}

// DropFailureReason describes why a drop was refused by the store.
func DropFailureReason(err error) string {
	if errors.Is(err, ErrTableReferenced) {
		return "other tables still depend on it"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgDependentObjects:
			return "other tables still depend on it"
		case pgUndefinedTable:
			return "table does not exist"
		}
		return pgErr.Message
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return "rows in other tables still reference it"
	}

	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return "rows in other tables still reference it"
	case strings.Contains(msg, "no such table"):
		return "table does not exist"
	}
	return msg
}
