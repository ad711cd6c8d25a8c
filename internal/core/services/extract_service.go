package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banks_etl/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Cell positions within a scraped table row.
const (
	nameCell  = 1
	valueCell = 2
)

type extractService struct {
	BaseService
	source portsrepo.TableSource
}

// NewExtractService creates an extract service reading tables from source.
func NewExtractService(source portsrepo.TableSource) portssvc.ExtractSvc {
	return &extractService{source: source}
}

// Extract reads the bank name and USD market capitalization of every table row
// after the header. Any malformed row fails the whole extraction.
func (s *extractService) Extract(ctx context.Context, url string, attributes []string) (*domain.Dataset, error) {
	if len(attributes) != 2 {
		return nil, fmt.Errorf("%w: expected 2 table attributes, got %d", apperrors.ErrValidation, len(attributes))
	}

	rows, err := s.source.FetchRows(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch table from %s: %w", url, err)
	}

	banks := []domain.Bank{}
	if len(rows) > 1 {
		banks = make([]domain.Bank, 0, len(rows)-1)
		for i, row := range rows[1:] {
			bank, err := parseBankRow(row)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			banks = append(banks, bank)
		}
	}

	dataset := domain.NewDataset(banks)
	dataset.NameColumn = attributes[0]
	dataset.ValueColumn = attributes[1]

	s.LogDebug(ctx, "Extracted banks table", slog.Int("rows", dataset.Len()))
	return dataset, nil
}

func parseBankRow(cells []string) (domain.Bank, error) {
	if len(cells) <= valueCell {
		return domain.Bank{}, fmt.Errorf("%w: expected at least %d cells, got %d", apperrors.ErrValidation, valueCell+1, len(cells))
	}
	usd, err := decimal.NewFromString(strings.TrimSpace(cells[valueCell]))
	if err != nil {
		return domain.Bank{}, fmt.Errorf("%w: market capitalization %q is not a number", apperrors.ErrValidation, cells[valueCell])
	}
	return domain.NewBank(strings.TrimSpace(cells[nameCell]), usd), nil
}
