package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
)

// SQLQueryRepository runs ad-hoc read statements.
type SQLQueryRepository struct {
	BaseRepository
}

func newSQLQueryRepository(db *sql.DB, dialect Dialect) *SQLQueryRepository {
	return &SQLQueryRepository{BaseRepository: BaseRepository{DB: db, Dialect: dialect}}
}

var _ portsrepo.QueryRunner = (*SQLQueryRepository)(nil)

// RunQuery executes query and collects every row. Text columns returned as
// bytes are converted to strings.
func (r *SQLQueryRepository) RunQuery(ctx context.Context, query string) (*domain.QueryResult, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &domain.QueryResult{Query: query, Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}
	return result, nil
}
