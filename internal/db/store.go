package db

import (
	"context"

	"github.com/udisondev/stronghold/internal/model"
)

// ResultStore persists finished session results. Implemented by the
// PostgreSQL repository and by the local file store.
type ResultStore interface {
	Save(ctx context.Context, result model.SessionResult) (int64, error)
	Recent(ctx context.Context, limit int32) ([]model.SessionResult, error)
}
