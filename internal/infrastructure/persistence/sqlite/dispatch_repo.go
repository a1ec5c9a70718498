package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/domain/repository"
	"github.com/bnema/tabcast/internal/logging"
)

const (
	insertDispatchSQL = `INSERT INTO dispatches (prompt, created_at) VALUES (?, ?)`
	insertTargetSQL   = `INSERT INTO dispatch_targets (dispatch_id, position, tool_id, label, ok, error)
VALUES (?, ?, ?, ?, ?, ?)`
	recentDispatchesSQL = `SELECT d.id, d.prompt, d.created_at, t.tool_id, t.label, t.ok, t.error
FROM (SELECT id, prompt, created_at FROM dispatches ORDER BY created_at DESC, id DESC LIMIT ?) AS d
LEFT JOIN dispatch_targets AS t ON t.dispatch_id = d.id
ORDER BY d.created_at DESC, d.id DESC, t.position`
	pruneDispatchesSQL = `DELETE FROM dispatches WHERE created_at < ?`
)

type dispatchRepo struct {
	db *sql.DB
}

// NewDispatchRepository creates a SQLite-backed dispatch journal.
func NewDispatchRepository(db *sql.DB) repository.DispatchRepository {
	return &dispatchRepo{db: db}
}

func (r *dispatchRepo) Save(ctx context.Context, d *entity.Dispatch) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin dispatch insert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, insertDispatchSQL, d.Prompt, d.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("dispatch id: %w", err)
	}

	for i, t := range d.Targets {
		errText := sql.NullString{String: t.Error, Valid: t.Error != ""}
		if _, err = tx.ExecContext(ctx, insertTargetSQL, id, i, t.ToolID, t.Label, t.OK, errText); err != nil {
			return fmt.Errorf("insert dispatch target %s: %w", t.ToolID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit dispatch: %w", err)
	}
	d.ID = id

	logging.FromContext(ctx).Debug().Int64("id", id).Int("targets", len(d.Targets)).Msg("dispatch saved")
	return nil
}

// Recent returns up to limit dispatches, newest first. limit <= 0 means all.
func (r *dispatchRepo) Recent(ctx context.Context, limit int) ([]*entity.Dispatch, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, recentDispatchesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query dispatches: %w", err)
	}
	defer rows.Close()

	var (
		out  []*entity.Dispatch
		last *entity.Dispatch
	)
	for rows.Next() {
		var (
			id        int64
			prompt    string
			createdAt int64
			toolID    sql.NullString
			label     sql.NullString
			ok        sql.NullBool
			errText   sql.NullString
		)
		if err := rows.Scan(&id, &prompt, &createdAt, &toolID, &label, &ok, &errText); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}

		if last == nil || last.ID != id {
			last = &entity.Dispatch{
				ID:        id,
				Prompt:    prompt,
				CreatedAt: time.UnixMilli(createdAt),
				Targets:   []entity.DispatchTarget{},
			}
			out = append(out, last)
		}
		if toolID.Valid {
			last.Targets = append(last.Targets, entity.DispatchTarget{
				ToolID: toolID.String,
				Label:  label.String,
				OK:     ok.Bool,
				Error:  errText.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatches: %w", err)
	}
	if out == nil {
		out = []*entity.Dispatch{}
	}
	return out, nil
}

func (r *dispatchRepo) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, pruneDispatchesSQL, before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("prune dispatches: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune dispatches: %w", err)
	}
	return n, nil
}
