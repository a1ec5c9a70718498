package repository

import (
	"context"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
)

// DispatchRepository defines persistence for the prompt dispatch journal.
type DispatchRepository interface {
	// Save stores a dispatch and its targets, setting d.ID.
	Save(ctx context.Context, d *entity.Dispatch) error

	// Recent returns the newest dispatches first.
	Recent(ctx context.Context, limit int) ([]*entity.Dispatch, error)

	// Prune deletes dispatches created before the cutoff and returns how many.
	Prune(ctx context.Context, before time.Time) (int64, error)
}
