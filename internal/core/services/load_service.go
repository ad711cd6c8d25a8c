package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banks_etl/internal/core/ports/services"
)

type loadService struct {
	BaseService
	files  portsrepo.DatasetFileWriter
	tables portsrepo.DatasetTableWriter
}

// NewLoadService creates a load service writing to files and tables.
func NewLoadService(files portsrepo.DatasetFileWriter, tables portsrepo.DatasetTableWriter) portssvc.LoadSvc {
	return &loadService{files: files, tables: tables}
}

// LoadToCSV writes the dataset to path. A failed write is not returned: I/O and
// encoding problems are logged as warnings, anything else as an error.
func (s *loadService) LoadToCSV(ctx context.Context, dataset *domain.Dataset, path string) error {
	if dataset == nil {
		return fmt.Errorf("%w: nil dataset", apperrors.ErrValidation)
	}

	err := s.files.WriteDataset(ctx, dataset, path)
	if err == nil {
		s.LogDebug(ctx, "Dataset written to CSV", slog.String("path", path), slog.Int("rows", dataset.Len()))
		return nil
	}

	if isCSVIOError(err) {
		s.LogWarn(ctx, err, "A specific error occurred while writing to CSV", slog.String("path", path))
	} else {
		s.LogError(ctx, err, "A general error occurred while writing to CSV", slog.String("path", path))
	}
	return nil
}

func isCSVIOError(err error) bool {
	var pathErr *fs.PathError
	var parseErr *csv.ParseError
	return errors.As(err, &pathErr) || errors.As(err, &parseErr) || errors.Is(err, io.ErrShortWrite)
}

// LoadToDB replaces table with the dataset. An empty dataset is refused before
// the store is touched.
func (s *loadService) LoadToDB(ctx context.Context, dataset *domain.Dataset, table string) error {
	if dataset.IsEmpty() {
		return fmt.Errorf("error saving dataset to database: %w", apperrors.ErrEmptyDataset)
	}

	n, err := s.tables.ReplaceTable(ctx, table, dataset)
	if err != nil {
		return fmt.Errorf("error saving dataset to database: %w", err)
	}

	s.LogDebug(ctx, "Dataset loaded into table", slog.String("table", table), slog.Int("rows", n))
	return nil
}
