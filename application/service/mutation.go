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

// Mutation provides the update and delete operations. Each call validates,
// writes and re-reads inside one unit of work.
type Mutation struct {
	uow    dataset.UnitOfWork
	logger *slog.Logger
}

// NewMutation creates a new Mutation service.
func NewMutation(uow dataset.UnitOfWork, logger *slog.Logger) *Mutation {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mutation{uow: uow, logger: logger}
}

// RenameState sets the name of a state and returns the stored row.
// A key outside the state range is dataset.ErrNotFound without any write.
func (m *Mutation) RenameState(ctx context.Context, id int64, name string) (element.State, error) {
	if !element.ValidStateID(id) {
		return element.State{}, fmt.Errorf("state %d: %w", id, dataset.ErrNotFound)
	}

	state, err := read(ctx, m.uow, func(s dataset.Stores) (element.State, error) {
		if err := s.States.Rename(ctx, id, name); err != nil {
			return element.State{}, err
		}
		return s.States.FindOne(ctx, repository.WithID(id))
	})
	if err != nil {
		return element.State{}, fmt.Errorf("rename state %d: %w", id, err)
	}

	m.logger.InfoContext(ctx, "state renamed", slog.Int64("id", id), slog.String("name", name))
	return state, nil
}

// ReassignSeriesByDiscoveryYear points every element discovered in year at
// seriesID and returns those elements as stored. A series id outside the
// series range is dataset.ErrInvalidArgument; a missing series row is
// dataset.ErrNotFound. Neither writes anything.
func (m *Mutation) ReassignSeriesByDiscoveryYear(ctx context.Context, year, seriesID int64) ([]element.Element, error) {
	if !element.ValidSeriesID(seriesID) {
		return nil, fmt.Errorf("%w: series id %d outside %d..%d",
			dataset.ErrInvalidArgument, seriesID, element.MinSeriesID, element.MaxSeriesID)
	}

	var changed int64
	elements, err := read(ctx, m.uow, func(s dataset.Stores) ([]element.Element, error) {
		exists, err := s.Series.Exists(ctx, repository.WithID(seriesID))
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("series %d: %w", seriesID, dataset.ErrNotFound)
		}
		changed, err = s.Elements.AssignSeries(ctx, seriesID, element.WithDiscoveryYear(year))
		if err != nil {
			return nil, err
		}
		return s.Elements.Find(ctx, element.WithDiscoveryYear(year), repository.WithInsertionOrder())
	})
	if err != nil {
		return nil, fmt.Errorf("reassign series for %d: %w", year, err)
	}

	m.logger.InfoContext(ctx, "series reassigned",
		slog.Int64("year", year),
		slog.Int64("series_id", seriesID),
		slog.Int64("changed", changed),
	)
	return elements, nil
}

// DeleteCompound removes one compound and returns it. Composition edges
// that point at it are left in place.
func (m *Mutation) DeleteCompound(ctx context.Context, id int64) (compound.Compound, error) {
	removed, err := read(ctx, m.uow, func(s dataset.Stores) (compound.Compound, error) {
		c, err := s.Compounds.FindOne(ctx, repository.WithID(id))
		if err != nil {
			return compound.Compound{}, err
		}
		if err := s.Compounds.DeleteBy(ctx, repository.WithID(id)); err != nil {
			return compound.Compound{}, err
		}
		return c, nil
	})
	if err != nil {
		return compound.Compound{}, fmt.Errorf("delete compound %d: %w", id, err)
	}

	m.logger.InfoContext(ctx, "compound deleted", slog.Int64("id", id), slog.String("formula", removed.Formula()))
	return removed, nil
}

// DeleteElementsByState removes every element in the given state and
// returns the removed rows. An unknown state is dataset.ErrNotFound.
func (m *Mutation) DeleteElementsByState(ctx context.Context, stateID int64) ([]element.Element, error) {
	if !element.ValidStateID(stateID) {
		return nil, fmt.Errorf("state %d: %w", stateID, dataset.ErrNotFound)
	}

	removed, err := read(ctx, m.uow, func(s dataset.Stores) ([]element.Element, error) {
		exists, err := s.States.Exists(ctx, repository.WithID(stateID))
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("state %d: %w", stateID, dataset.ErrNotFound)
		}
		elements, err := s.Elements.Find(ctx, element.WithStateID(stateID), repository.WithInsertionOrder())
		if err != nil {
			return nil, err
		}
		if len(elements) == 0 {
			return elements, nil
		}
		if err := s.Elements.DeleteBy(ctx, element.WithStateID(stateID)); err != nil {
			return nil, err
		}
		return elements, nil
	})
	if err != nil {
		return nil, fmt.Errorf("delete elements in state %d: %w", stateID, err)
	}

	m.logger.InfoContext(ctx, "elements deleted", slog.Int64("state_id", stateID), slog.Int("count", len(removed)))
	return removed, nil
}
