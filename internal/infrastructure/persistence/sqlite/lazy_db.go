package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/domain/repository"
	"github.com/bnema/tabcast/internal/logging"
)

// LazyDB opens the journal database on first access, keeping the WASM
// compilation and migrations off the startup path of the GUI.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

// NewLazyDB creates a lazy database provider.
// The connection is not established until DB() is called.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, initializing it if necessary.
// A failed initialization is not retried.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := NewConnection(ctx, l.dbPath)

		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized returns true if the database has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazyDispatchRepository wraps the dispatch journal with lazy database
// initialization.
type LazyDispatchRepository struct {
	provider *LazyDB
	repo     repository.DispatchRepository
	once     sync.Once
	initErr  error
}

// NewLazyDispatchRepository creates a lazy-loading dispatch journal.
func NewLazyDispatchRepository(provider *LazyDB) repository.DispatchRepository {
	return &LazyDispatchRepository{provider: provider}
}

func (r *LazyDispatchRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewDispatchRepository(db)
	})
	return r.initErr
}

func (r *LazyDispatchRepository) Save(ctx context.Context, d *entity.Dispatch) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, d)
}

func (r *LazyDispatchRepository) Recent(ctx context.Context, limit int) ([]*entity.Dispatch, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazyDispatchRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.Prune(ctx, before)
}
