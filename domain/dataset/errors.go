package dataset

import (
	"errors"

	"github.com/helixml/periodic/domain/repository"
)

// Outcome errors shared by the services and the presentation layers.
var (
	// ErrNotFound indicates the target key of a lookup or mutation does not exist.
	ErrNotFound = repository.ErrNotFound

	// ErrInvalidArgument indicates a parameter outside its valid range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDanglingReference indicates a required reference could not be resolved.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrShortRecord indicates a source record with fewer fields than its kind needs.
	ErrShortRecord = errors.New("record has too few fields")

	// ErrStoreFailure indicates the store rejected an operation.
	ErrStoreFailure = errors.New("store failure")
)
