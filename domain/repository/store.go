// Package repository holds the query options and store contracts shared by
// every entity kind.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound indicates that no stored entity matched a lookup.
var ErrNotFound = errors.New("entity not found")

// Store is the read and delete surface every entity store provides.
type Store[T any] interface {
	Find(ctx context.Context, options ...Option) ([]T, error)
	FindOne(ctx context.Context, options ...Option) (T, error)
	Exists(ctx context.Context, options ...Option) (bool, error)
	Count(ctx context.Context, options ...Option) (int64, error)
	DeleteBy(ctx context.Context, options ...Option) error
}
