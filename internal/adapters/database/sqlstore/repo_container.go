package sqlstore

import (
	"database/sql"

	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
)

// NewRepositoryProvider fills the database backed repositories of provider.
// The run journal is only wired when recordRuns is set.
func NewRepositoryProvider(db *sql.DB, driver string, recordRuns bool, provider portsrepo.RepositoryProvider) (portsrepo.RepositoryProvider, error) {
	dialect, err := NewDialect(driver)
	if err != nil {
		return provider, err
	}

	provider.TableWriter = newSQLTableRepository(db, dialect)
	provider.Queries = newSQLQueryRepository(db, dialect)
	provider.RunRepo = nil
	if recordRuns {
		provider.RunRepo = newSQLRunRepository(db, dialect)
	}
	return provider, nil
}
