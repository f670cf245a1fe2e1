package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helixml/periodic/domain/dataset"
)

// TableStatus is the result of a single schema action.
type TableStatus string

// TableStatus values.
const (
	TableCreated       TableStatus = "created"
	TableAlreadyExists TableStatus = "already exists"
	TableDropped       TableStatus = "dropped"
	TableDropFailed    TableStatus = "drop failed"
)

// TableOutcome reports what happened to one table.
type TableOutcome struct {
	Kind   dataset.Kind
	Status TableStatus
	// Reason is a short description of a failed drop.
	Reason string
	Err    error
}

// Failed reports whether the action did not take effect.
func (o TableOutcome) Failed() bool {
	return o.Status == TableDropFailed
}

// DropClassifier turns a store error from a failed drop into a short reason.
type DropClassifier func(error) string

// Schema creates and tears down the entity tables.
type Schema struct {
	uow      dataset.UnitOfWork
	classify DropClassifier
	logger   *slog.Logger
}

// NewSchema creates a new Schema service. A nil classifier reports the raw
// store error text.
func NewSchema(uow dataset.UnitOfWork, classify DropClassifier, logger *slog.Logger) *Schema {
	if classify == nil {
		classify = func(err error) string { return err.Error() }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Schema{
		uow:      uow,
		classify: classify,
		logger:   logger,
	}
}

// Ensure creates the table for kind if it is absent. Calling it again is
// not an error; the outcome reports TableAlreadyExists.
func (s *Schema) Ensure(ctx context.Context, kind dataset.Kind) (TableOutcome, error) {
	var created bool
	err := s.uow.Do(ctx, func(stores dataset.Stores) error {
		var err error
		created, err = stores.Schema.EnsureTable(ctx, kind)
		return err
	})
	if err != nil {
		return TableOutcome{Kind: kind, Err: err}, fmt.Errorf("%w: ensure %s: %w", dataset.ErrStoreFailure, kind, err)
	}

	outcome := TableOutcome{Kind: kind, Status: TableAlreadyExists}
	if created {
		outcome.Status = TableCreated
	}
	s.logger.InfoContext(ctx, "table ensured", slog.String("kind", kind.String()), slog.String("status", string(outcome.Status)))
	return outcome, nil
}

// EnsureAll creates every table in dependency order and stops at the first
// store error.
func (s *Schema) EnsureAll(ctx context.Context) ([]TableOutcome, error) {
	outcomes := make([]TableOutcome, 0, len(dataset.Kinds()))
	for _, kind := range dataset.Kinds() {
		outcome, err := s.Ensure(ctx, kind)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// Drop removes the table for kind. A refused drop is reported in the outcome
// and never returned as an error.
func (s *Schema) Drop(ctx context.Context, kind dataset.Kind) TableOutcome {
	err := s.uow.Do(ctx, func(stores dataset.Stores) error {
		return stores.Schema.DropTable(ctx, kind)
	})
	if err != nil {
		outcome := TableOutcome{
			Kind:   kind,
			Status: TableDropFailed,
			Reason: s.classify(err),
			Err:    fmt.Errorf("%w: drop %s: %w", dataset.ErrStoreFailure, kind, err),
		}
		s.logger.WarnContext(ctx, "table not dropped",
			slog.String("kind", kind.String()),
			slog.String("reason", outcome.Reason),
			slog.Any("error", err),
		)
		return outcome
	}

	s.logger.InfoContext(ctx, "table dropped", slog.String("kind", kind.String()))
	return TableOutcome{Kind: kind, Status: TableDropped}
}

// DropAll removes every table in reverse dependency order, continuing past
// failures.
func (s *Schema) DropAll(ctx context.Context) []TableOutcome {
	kinds := dataset.TeardownOrder()
	outcomes := make([]TableOutcome, 0, len(kinds))
	for _, kind := range kinds {
		outcomes = append(outcomes, s.Drop(ctx, kind))
	}
	return outcomes
}
