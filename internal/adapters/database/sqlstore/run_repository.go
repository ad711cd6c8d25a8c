package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	"github.com/SscSPs/banks_etl/internal/models"
	"github.com/SscSPs/banks_etl/internal/utils/mapping"
)

// RunsTable holds the run journal, created by the embedded migrations.
const RunsTable = "etl_runs"

// SQLRunRepository stores run journal entries.
type SQLRunRepository struct {
	BaseRepository
}

func newSQLRunRepository(db *sql.DB, dialect Dialect) *SQLRunRepository {
	return &SQLRunRepository{BaseRepository: BaseRepository{DB: db, Dialect: dialect}}
}

var _ portsrepo.RunRepositoryFacade = (*SQLRunRepository)(nil)

// SaveRun inserts run, replacing any entry with the same ID.
func (r *SQLRunRepository) SaveRun(ctx context.Context, run domain.Run) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	ph := r.Dialect.Placeholder
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE run_id = %s", RunsTable, ph(1)), run.RunID); err != nil {
		return fmt.Errorf("failed to clear run %s: %w", run.RunID, err)
	}

	modelRun := mapping.ToModelRun(run)
	query := fmt.Sprintf(`
		INSERT INTO %s (run_id, started_at, finished_at, status, rows_extracted, rows_loaded, error_message)
		VALUES (%s)`, RunsTable, r.Dialect.Placeholders(7))
	if _, err := tx.ExecContext(ctx, query,
		modelRun.RunID,
		modelRun.StartedAt,
		modelRun.FinishedAt,
		modelRun.Status,
		modelRun.RowsExtracted,
		modelRun.RowsLoaded,
		modelRun.ErrorMessage,
	); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.RunID, err)
	}
	return r.Commit(tx)
}

// ListRuns returns up to limit runs ordered by start time, newest first.
func (r *SQLRunRepository) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf(`
		SELECT run_id, started_at, finished_at, status, rows_extracted, rows_loaded, error_message
		FROM %s
		ORDER BY started_at DESC
		LIMIT %d`, RunsTable, limit)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	modelRuns := []models.Run{}
	for rows.Next() {
		var m models.Run
		if err := rows.Scan(
			&m.RunID,
			&m.StartedAt,
			&m.FinishedAt,
			&m.Status,
			&m.RowsExtracted,
			&m.RowsLoaded,
			&m.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		modelRuns = append(modelRuns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return mapping.ToDomainRunSlice(modelRuns), nil
}
