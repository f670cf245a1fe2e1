package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/helixml/periodic/domain/dataset"
)

// SkippedRecord describes a source record that was not stored.
type SkippedRecord struct {
	Line   int
	Fields []string
	Reason string
	Err    error
}

// LoadResult summarises one load pass.
type LoadResult struct {
	RunID     uuid.UUID
	Kind      dataset.Kind
	Committed int
	Skipped   int
	// Defaulted counts committed rows that used a substituted reference.
	Defaulted int
	Skips     []SkippedRecord
}

// Loader converts raw records into stored rows, one unit of work per record.
type Loader struct {
	uow      dataset.UnitOfWork
	resolver *Resolver
	metrics  *LoadMetrics
	logger   *slog.Logger
}

// NewLoader creates a new Loader. metrics may be nil.
func NewLoader(uow dataset.UnitOfWork, resolver *Resolver, metrics *LoadMetrics, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if resolver == nil {
		resolver = NewResolver(logger)
	}
	return &Loader{
		uow:      uow,
		resolver: resolver,
		metrics:  metrics,
		logger:   logger,
	}
}

// Load reads every record from source and stores it as a row of kind.
// A record that cannot be stored is skipped and the pass continues. An
// error is returned only when the source fails or ctx is cancelled, along
// with the result so far.
func (l *Loader) Load(ctx context.Context, kind dataset.Kind, source dataset.RecordSource) (LoadResult, error) {
	if kind.FieldCount() == 0 {
		return LoadResult{}, fmt.Errorf("%w: unknown kind %q", dataset.ErrInvalidArgument, kind)
	}

	result := LoadResult{RunID: uuid.New(), Kind: kind}
	logger := l.logger.With(
		slog.String("run_id", result.RunID.String()),
		slog.String("kind", kind.String()),
	)
	logger.InfoContext(ctx, "load started")

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		record, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.ErrorContext(ctx, "source read failed", slog.Any("error", err))
			return result, fmt.Errorf("read %s source: %w", kind, err)
		}

		defaulted, err := l.loadRecord(ctx, logger, kind, record.Fields)
		if err != nil {
			result.Skipped++
			result.Skips = append(result.Skips, SkippedRecord{
				Line:   record.Line,
				Fields: record.Fields,
				Reason: err.Error(),
				Err:    err,
			})
			l.metrics.observe(kind, outcomeSkipped)
			logger.WarnContext(ctx, "record skipped",
				slog.Int("line", record.Line),
				slog.Any("fields", record.Fields),
				slog.String("reason", err.Error()),
			)
			continue
		}

		result.Committed++
		l.metrics.observe(kind, outcomeCommitted)
		if defaulted {
			result.Defaulted++
			l.metrics.observe(kind, outcomeDefaulted)
		}
	}

	logger.InfoContext(ctx, "load finished",
		slog.Int("committed", result.Committed),
		slog.Int("skipped", result.Skipped),
		slog.Int("defaulted", result.Defaulted),
	)
	return result, nil
}

// loadRecord stores one record in its own unit of work and reports whether
// a default reference was substituted.
func (l *Loader) loadRecord(ctx context.Context, logger *slog.Logger, kind dataset.Kind, values []string) (bool, error) {
	if len(values) < kind.FieldCount() {
		return false, fmt.Errorf("%w: got %d, want %d", dataset.ErrShortRecord, len(values), kind.FieldCount())
	}

	f := fields{ctx: ctx, logger: logger, values: values}
	var defaulted bool
	err := l.uow.Do(ctx, func(stores dataset.Stores) error {
		switch kind {
		case dataset.KindState:
			_, err := stores.States.Insert(ctx, f.state())
			return storeFailure(err)
		case dataset.KindSeries:
			_, err := stores.Series.Insert(ctx, f.series())
			return storeFailure(err)
		case dataset.KindElement:
			var err error
			defaulted, err = l.insertElement(ctx, stores, f)
			return err
		case dataset.KindCompound:
			_, err := stores.Compounds.Insert(ctx, f.compound())
			return storeFailure(err)
		case dataset.KindComposition:
			return l.insertComposition(ctx, stores, f)
		}
		return fmt.Errorf("%w: unknown kind %q", dataset.ErrInvalidArgument, kind)
	})
	if err != nil {
		return false, err
	}
	return defaulted, nil
}

func (l *Loader) insertElement(ctx context.Context, stores dataset.Stores, f fields) (bool, error) {
	e, seriesKey, stateKey := f.element()

	series, err := l.resolver.Resolve(ctx, stores, ElementSeries, seriesKey)
	if err != nil {
		return false, err
	}
	state, err := l.resolver.Resolve(ctx, stores, ElementState, stateKey)
	if err != nil {
		return false, err
	}

	e = e.WithSeriesID(series.ID).WithStateID(state.ID)
	if _, err := stores.Elements.Insert(ctx, e); err != nil {
		return false, storeFailure(err)
	}
	return series.Kind == ResolutionDefaulted || state.Kind == ResolutionDefaulted, nil
}

func (l *Loader) insertComposition(ctx context.Context, stores dataset.Stores, f fields) error {
	c := f.composition()

	parent, err := l.resolver.Resolve(ctx, stores, CompositionCompound, c.CompoundID())
	if err != nil {
		return err
	}
	if parent.Kind == ResolutionAbsent {
		return fmt.Errorf("%w: compound %d does not exist", dataset.ErrDanglingReference, c.CompoundID())
	}
	child, err := l.resolver.Resolve(ctx, stores, CompositionElement, c.ElementID())
	if err != nil {
		return err
	}
	if child.Kind == ResolutionAbsent {
		return fmt.Errorf("%w: element %d does not exist", dataset.ErrDanglingReference, c.ElementID())
	}

	_, err = stores.Compositions.Insert(ctx, c)
	return storeFailure(err)
}

// storeFailure marks a store error as dataset.ErrStoreFailure.
func storeFailure(err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", dataset.ErrStoreFailure, err)
	}
	return nil
}
