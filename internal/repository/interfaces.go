package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a keyed record does not exist.
var ErrNotFound = errors.New("not found")

// ScoreRepo stores non-negative integer records by key.
type ScoreRepo interface {
	// Get returns ErrNotFound when the key was never written.
	Get(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value int) error
}
