package repositories

import (
	"context"

	"github.com/SscSPs/banks_etl/internal/core/domain"
)

// DatasetFileWriter persists a dataset to a flat file
type DatasetFileWriter interface {
	// WriteDataset serializes the dataset to path, overwriting any existing file.
	WriteDataset(ctx context.Context, dataset *domain.Dataset, path string) error
}

// DatasetTableWriter persists a dataset to a relational table
type DatasetTableWriter interface {
	// ReplaceTable drops and recreates table with the dataset rows in one transaction.
	ReplaceTable(ctx context.Context, table string, dataset *domain.Dataset) (int, error)
}

// QueryRunner executes read statements against the relational store
type QueryRunner interface {
	// RunQuery executes query and materializes the full result set.
	RunQuery(ctx context.Context, query string) (*domain.QueryResult, error)
}
