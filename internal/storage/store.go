package storage

import (
	"context"

	"fitscape/internal/model"
)

// Store persists synthesized landscape records.
type Store interface {
	Init(ctx context.Context) error
	SaveLandscape(ctx context.Context, record model.LandscapeRecord) error
	GetLandscape(ctx context.Context, id string) (model.LandscapeRecord, bool, error)
	// ListLandscapes returns records newest first; limit <= 0 means all.
	ListLandscapes(ctx context.Context, limit int) ([]model.LandscapeRecord, error)
	Reset(ctx context.Context) error
}
