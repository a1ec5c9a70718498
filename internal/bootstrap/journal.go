package bootstrap

import (
	"context"
	"time"

	"github.com/bnema/tabcast/internal/application/usecase"
	"github.com/bnema/tabcast/internal/infrastructure/config"
	"github.com/bnema/tabcast/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabcast/internal/logging"
)

const day = 24 * time.Hour

// journal owns the dispatch database. A nil journal records nothing.
type journal struct {
	db       *sqlite.LazyDB
	recorder *usecase.RecordDispatchUseCase
}

// openJournal prepares the journal without touching the database; the
// first write opens it.
func openJournal(ctx context.Context, cfg config.JournalConfig) (*journal, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	path := cfg.Path
	if path == "" {
		var err error
		if path, err = config.GetDatabaseFile(); err != nil {
			return nil, err
		}
	}
	db := sqlite.NewLazyDB(path)
	return &journal{
		db:       db,
		recorder: usecase.NewRecordDispatchUseCase(ctx, sqlite.NewLazyDispatchRepository(db)),
	}, nil
}

// Recorder returns the recorder handed to the delivery use case.
func (j *journal) Recorder() usecase.DispatchRecorder {
	if j == nil {
		return nil
	}
	return j.recorder
}

// Prune drops entries older than retentionDays. Zero keeps everything.
func (j *journal) Prune(ctx context.Context, retentionDays int) {
	if j == nil || retentionDays <= 0 {
		return
	}
	log := logging.FromContext(ctx)
	n, err := j.recorder.Prune(ctx, time.Duration(retentionDays)*day)
	if err != nil {
		log.Warn().Err(err).Msg("journal prune failed")
		return
	}
	if n > 0 {
		log.Info().Int64("removed", n).Int("retention_days", retentionDays).Msg("journal pruned")
	}
}

// Close flushes queued records and closes the database.
func (j *journal) Close() {
	if j == nil {
		return
	}
	j.recorder.Close()
	_ = j.db.Close()
}
