package services

import (
	"context"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExtractSvc scrapes the source document into a dataset
type ExtractSvc interface {
	// Extract fetches url and parses the first matching table into a dataset whose
	// two columns are named by attributes (name column, USD value column).
	Extract(ctx context.Context, url string, attributes []string) (*domain.Dataset, error)
}

// TransformSvc derives the converted currency columns
type TransformSvc interface {
	// LookupRate returns the USD multiplier for currency from the rate source.
	LookupRate(ctx context.Context, currency domain.Currency) (decimal.Decimal, error)

	// Transform adds one market capitalization column per target currency.
	// Columns whose rate is unavailable are left null and the returned error wraps apperrors.ErrDegraded.
	Transform(ctx context.Context, dataset *domain.Dataset) (*domain.Dataset, error)
}

// LoadSvc persists the dataset
type LoadSvc interface {
	// LoadToCSV writes the dataset to a CSV file.
	LoadToCSV(ctx context.Context, dataset *domain.Dataset, path string) error

	// LoadToDB replaces table with the dataset rows.
	LoadToDB(ctx context.Context, dataset *domain.Dataset, table string) error
}

// QuerySvc runs read-back queries and reports their results
type QuerySvc interface {
	// RunQuery executes query and prints the query text and result set.
	RunQuery(ctx context.Context, query string) (*domain.QueryResult, error)
}

// RunJournalSvc records pipeline runs
type RunJournalSvc interface {
	// Start records a new running entry.
	Start(ctx context.Context) domain.Run

	// Finish records the outcome of run.
	Finish(ctx context.Context, run domain.Run, err error) domain.Run

	// Recent lists the latest runs, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Run, error)
}
