package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Header names of the rate source.
const (
	CurrencyHeader = "Currency"
	RateHeader     = "Rate"
)

// RateRepository reads exchange rates from a CSV file with Currency and Rate columns.
// Every call re-reads the file; wrap it with NewCachingRateRepository to read once.
type RateRepository struct {
	path string
}

// NewRateRepository creates a RateRepository for the file at path.
func NewRateRepository(path string) *RateRepository {
	return &RateRepository{path: path}
}

// LoadRateTable reads and validates every supported rate in the file.
func (r *RateRepository) LoadRateTable(ctx context.Context) (domain.RateTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRateFileNotFound, r.path)
		}
		return nil, fmt.Errorf("open rate file: %w", err)
	}
	defer f.Close()

	rates, err := parseRates(f)
	if err != nil {
		return nil, fmt.Errorf("parse rate file %s: %w", r.path, err)
	}
	return domain.NewRateTable(rates)
}

// LookupRate returns the rate for currency, reading the file again.
func (r *RateRepository) LookupRate(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	if !currency.IsSupported() {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, string(currency))
	}
	table, err := r.LoadRateTable(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return table.Rate(currency)
}

func parseRates(rd io.Reader) (map[domain.Currency]decimal.Decimal, error) {
	reader := csv.NewReader(rd)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty rate file", apperrors.ErrValidation)
		}
		return nil, err
	}
	currencyIdx, rateIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) {
		case CurrencyHeader:
			currencyIdx = i
		case RateHeader:
			rateIdx = i
		}
	}
	if currencyIdx < 0 || rateIdx < 0 {
		return nil, fmt.Errorf("%w: header must contain %q and %q columns", apperrors.ErrValidation, CurrencyHeader, RateHeader)
	}

	rates := make(map[domain.Currency]decimal.Decimal)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if currencyIdx >= len(record) || rateIdx >= len(record) {
			return nil, fmt.Errorf("%w: line %d has %d fields", apperrors.ErrValidation, line, len(record))
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(record[rateIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid rate %q", apperrors.ErrValidation, line, record[rateIdx])
		}
		code, err := domain.ParseCurrency(record[currencyIdx])
		if err != nil {
			continue // other currencies in the file are not derived
		}
		rates[code] = rate
	}
	return rates, nil
}
