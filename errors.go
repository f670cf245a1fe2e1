package periodic

import (
	"errors"

	"github.com/helixml/periodic/application/service"
	"github.com/helixml/periodic/domain/dataset"
)

// Exported errors for library consumers.
var (
	// ErrNoDatabase indicates no database was configured.
	ErrNoDatabase = errors.New("periodic: no database configured")

	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = service.ErrClientClosed

	// ErrNotFound indicates the target key of a lookup or mutation does not exist.
	ErrNotFound = dataset.ErrNotFound

	// ErrInvalidArgument indicates a parameter outside its valid range.
	ErrInvalidArgument = dataset.ErrInvalidArgument

	// ErrDanglingReference indicates a composition record pointing at a missing row.
	ErrDanglingReference = dataset.ErrDanglingReference

	// ErrStoreFailure indicates the store rejected an operation.
	ErrStoreFailure = dataset.ErrStoreFailure
)
