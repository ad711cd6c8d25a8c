package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
)

// SQLTableRepository writes datasets into relational tables.
type SQLTableRepository struct {
	BaseRepository
}

func newSQLTableRepository(db *sql.DB, dialect Dialect) *SQLTableRepository {
	return &SQLTableRepository{BaseRepository: BaseRepository{DB: db, Dialect: dialect}}
}

// Ensure implementation matches interface
var _ portsrepo.DatasetTableWriter = (*SQLTableRepository)(nil)

// ReplaceTable drops table, recreates it from the dataset columns and inserts every row.
// All statements run in one transaction; on failure the previous table is left in place
// where the driver supports transactional DDL.
func (r *SQLTableRepository) ReplaceTable(ctx context.Context, table string, dataset *domain.Dataset) (int, error) {
	if dataset.IsEmpty() {
		return 0, apperrors.ErrEmptyDataset
	}
	if err := checkIdentifier(table); err != nil {
		return 0, err
	}
	columns := dataset.Columns()
	for _, col := range columns {
		if err := checkIdentifier(col); err != nil {
			return 0, err
		}
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(tx)

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return 0, fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, createTableSQL(table, columns)); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), r.Dialect.Placeholders(len(columns)))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()

	for i, bank := range dataset.Banks {
		if _, err := stmt.ExecContext(ctx, rowValues(dataset, bank)...); err != nil {
			return 0, fmt.Errorf("failed to insert row %d into %s: %w", i+1, table, err)
		}
	}

	if err := r.Commit(tx); err != nil {
		return 0, err
	}
	return dataset.Len(), nil
}

func createTableSQL(table string, columns []string) string {
	defs := make([]string, len(columns))
	defs[0] = columns[0] + " TEXT"
	for i := 1; i < len(columns); i++ {
		defs[i] = columns[i] + " DOUBLE PRECISION"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))
}

func rowValues(dataset *domain.Dataset, bank domain.Bank) []any {
	values := make([]any, 0, 2+len(dataset.Currencies))
	values = append(values, bank.Name, bank.MarketCapUSD.InexactFloat64())
	for _, c := range dataset.Currencies {
		v := bank.MarketCapIn(c)
		if !v.Valid {
			values = append(values, nil)
			continue
		}
		values = append(values, v.Decimal.InexactFloat64())
	}
	return values
}
