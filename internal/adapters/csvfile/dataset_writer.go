package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/SscSPs/banks_etl/internal/utils"
	"github.com/shopspring/decimal"
)

// DatasetWriter serializes datasets as comma-separated text with a header row.
type DatasetWriter struct{}

// NewDatasetWriter creates a DatasetWriter.
func NewDatasetWriter() *DatasetWriter {
	return &DatasetWriter{}
}

// WriteDataset writes dataset to path, truncating any existing file.
func (w *DatasetWriter) WriteDataset(ctx context.Context, dataset *domain.Dataset, path string) (err error) {
	if dataset == nil {
		return fmt.Errorf("%w: nil dataset", apperrors.ErrValidation)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return Encode(f, dataset)
}

// Encode writes dataset as CSV to out.
func Encode(out io.Writer, dataset *domain.Dataset) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(dataset.Columns()); err != nil {
		return err
	}
	for _, bank := range dataset.Banks {
		row := make([]string, 0, 2+len(dataset.Currencies))
		row = append(row, bank.Name, bank.MarketCapUSD.String())
		for _, c := range dataset.Currencies {
			row = append(row, utils.FormatNullDecimal(bank.MarketCapIn(c)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadDataset reads a CSV file written by WriteDataset back into a Dataset.
func ReadDataset(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses CSV produced by Encode. The first two columns are the name and
// USD value; every further column must be named MC_<CUR>_Billion.
func Decode(in io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(in)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty csv file")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 columns, got %d", apperrors.ErrValidation, len(header))
	}
	currencies := make([]domain.Currency, 0, len(header)-2)
	for _, col := range header[2:] {
		code := strings.TrimSuffix(strings.TrimPrefix(col, "MC_"), "_Billion")
		if code == col || domain.MarketCapColumn(domain.Currency(code)) != col {
			return nil, fmt.Errorf("%w: unexpected column %q", apperrors.ErrValidation, col)
		}
		currencies = append(currencies, domain.Currency(code))
	}

	banks := make([]domain.Bank, 0, len(records)-1)
	for i, rec := range records[1:] {
		usd, err := decimal.NewFromString(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid %s %q", apperrors.ErrValidation, i+1, header[1], rec[1])
		}
		bank := domain.NewBank(rec[0], usd)
		for j, c := range currencies {
			v, err := utils.ParseNullDecimal(rec[2+j])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: invalid %s %q", apperrors.ErrValidation, i+1, header[2+j], rec[2+j])
			}
			bank.MarketCap[c] = v
		}
		banks = append(banks, bank)
	}

	return &domain.Dataset{
		NameColumn:  header[0],
		ValueColumn: header[1],
		Banks:       banks,
		Currencies:  currencies,
	}, nil
}
