package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/element"
	"github.com/helixml/periodic/domain/repository"
)

// Reference names a foreign key carried by a source record.
type Reference int

// References resolved during a load.
const (
	ElementSeries Reference = iota
	ElementState
	CompositionCompound
	CompositionElement
)

// String returns the reference name used in logs.
func (r Reference) String() string {
	switch r {
	case ElementSeries:
		return "element.series"
	case ElementState:
		return "element.state"
	case CompositionCompound:
		return "composition.compound"
	case CompositionElement:
		return "composition.element"
	}
	return fmt.Sprintf("reference(%d)", int(r))
}

// fallback returns the substitute key of a soft reference.
func (r Reference) fallback() (int64, bool) {
	switch r {
	case ElementSeries:
		return element.DefaultSeriesID, true
	case ElementState:
		return element.DefaultStateID, true
	}
	return 0, false
}

// ResolutionKind classifies how a reference was resolved.
type ResolutionKind int

// ResolutionKind values.
const (
	// ResolutionFound means the requested key exists.
	ResolutionFound ResolutionKind = iota
	// ResolutionDefaulted means the default key was substituted.
	ResolutionDefaulted
	// ResolutionAbsent means neither the key nor a default exists.
	ResolutionAbsent
)

// Resolution is the result of resolving one reference.
type Resolution struct {
	Kind      ResolutionKind
	Requested int64
	// ID is the key to store, nil when the reference resolved to nothing.
	ID *int64
}

// Resolver maps raw foreign keys to existing rows.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// Resolve looks key up for ref inside the given stores. Soft references
// (series and state) fall back to their default row; when that row is
// missing too the reference is Absent and the caller stores NULL. Hard
// references (composition endpoints) are Absent whenever key is missing.
func (r *Resolver) Resolve(ctx context.Context, stores dataset.Stores, ref Reference, key int64) (Resolution, error) {
	found, err := r.exists(ctx, stores, ref, key)
	if err != nil {
		return Resolution{}, err
	}
	if found {
		return Resolution{Kind: ResolutionFound, Requested: key, ID: &key}, nil
	}

	fallback, soft := ref.fallback()
	if !soft {
		return Resolution{Kind: ResolutionAbsent, Requested: key}, nil
	}

	found, err = r.exists(ctx, stores, ref, fallback)
	if err != nil {
		return Resolution{}, err
	}
	if !found {
		r.logger.WarnContext(ctx, "default reference missing, storing null",
			slog.String("reference", ref.String()),
			slog.Int64("requested", key),
			slog.Int64("default", fallback),
		)
		return Resolution{Kind: ResolutionAbsent, Requested: key}, nil
	}

	r.logger.InfoContext(ctx, "reference defaulted",
		slog.String("reference", ref.String()),
		slog.Int64("requested", key),
		slog.Int64("default", fallback),
	)
	return Resolution{Kind: ResolutionDefaulted, Requested: key, ID: &fallback}, nil
}

func (r *Resolver) exists(ctx context.Context, stores dataset.Stores, ref Reference, key int64) (bool, error) {
	var (
		ok  bool
		err error
	)
	switch ref {
	case ElementSeries:
		ok, err = stores.Series.Exists(ctx, repository.WithID(key))
	case ElementState:
		ok, err = stores.States.Exists(ctx, repository.WithID(key))
	case CompositionCompound:
		ok, err = stores.Compounds.Exists(ctx, repository.WithID(key))
	case CompositionElement:
		ok, err = stores.Elements.Exists(ctx, repository.WithID(key))
	default:
		return false, fmt.Errorf("%w: unknown reference %d", dataset.ErrInvalidArgument, int(ref))
	}
	if err != nil {
		return false, fmt.Errorf("%w: resolve %s: %w", dataset.ErrStoreFailure, ref, err)
	}
	return ok, nil
}
