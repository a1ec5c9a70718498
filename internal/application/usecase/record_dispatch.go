package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/domain/repository"
	"github.com/bnema/tabcast/internal/logging"
)

const (
	// journalQueueSize is the buffer of pending journal writes.
	// When full, new records are dropped with a warning.
	journalQueueSize = 64

	// journalWriteTimeout bounds one persistence write.
	journalWriteTimeout = 5 * time.Second

	// logPromptMaxLen is the max prompt length in log messages.
	logPromptMaxLen = 60
)

// RecordDispatchUseCase writes dispatch records to the journal from a
// background worker so delivery never waits on storage.
type RecordDispatchUseCase struct {
	repo repository.DispatchRepository

	queue     chan *entity.Dispatch
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	ctx       context.Context // Base context for background worker
}

// NewRecordDispatchUseCase starts the journal worker.
func NewRecordDispatchUseCase(ctx context.Context, repo repository.DispatchRepository) *RecordDispatchUseCase {
	uc := &RecordDispatchUseCase{
		repo:  repo,
		queue: make(chan *entity.Dispatch, journalQueueSize),
		done:  make(chan struct{}),
		ctx:   logging.WithComponent(ctx, "journal"),
	}

	uc.wg.Add(1)
	go uc.worker()

	return uc
}

// Record queues d for persistence.
func (uc *RecordDispatchUseCase) Record(ctx context.Context, d *entity.Dispatch) {
	select {
	case <-uc.done:
		logging.FromContext(ctx).Warn().Msg("journal closed, dropping dispatch record")
		return
	default:
	}

	select {
	case uc.queue <- d:
	default:
		logging.FromContext(ctx).Warn().
			Str("prompt", truncate(d.Prompt, logPromptMaxLen)).
			Msg("journal queue full, dropping dispatch record")
	}
}

// Close stops the worker after draining queued records.
func (uc *RecordDispatchUseCase) Close() {
	uc.closeOnce.Do(func() { close(uc.done) })
	uc.wg.Wait()
}

func (uc *RecordDispatchUseCase) worker() {
	defer uc.wg.Done()

	for {
		select {
		case d := <-uc.queue:
			uc.save(d)
		case <-uc.done:
			for {
				select {
				case d := <-uc.queue:
					uc.save(d)
				default:
					return
				}
			}
		}
	}
}

func (uc *RecordDispatchUseCase) save(d *entity.Dispatch) {
	ctx, cancel := context.WithTimeout(uc.ctx, journalWriteTimeout)
	defer cancel()

	if err := uc.repo.Save(ctx, d); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to record dispatch")
		return
	}
	logging.FromContext(ctx).Debug().
		Int64("id", d.ID).
		Int("targets", len(d.Targets)).
		Msg("dispatch recorded")
}

// Recent lists the newest journal entries.
func (uc *RecordDispatchUseCase) Recent(ctx context.Context, limit int) ([]*entity.Dispatch, error) {
	return uc.repo.Recent(ctx, limit)
}

// Prune removes journal entries older than maxAge.
func (uc *RecordDispatchUseCase) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	return uc.repo.Prune(ctx, time.Now().Add(-maxAge))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
