package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banks_etl/internal/core/ports/services"
	"github.com/SscSPs/banks_etl/internal/middleware"
	"github.com/shopspring/decimal"
)

type transformService struct {
	BaseService
	rates portsrepo.RateReader
}

// NewTransformService creates a transform service converting with rates.
func NewTransformService(rates portsrepo.RateReader) portssvc.TransformSvc {
	return &transformService{rates: rates}
}

// LookupRate returns the USD multiplier for currency.
func (s *transformService) LookupRate(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	return s.rates.LookupRate(ctx, currency)
}

// Transform sets one derived column per target currency, in order.
// A missing rate nulls that column and the remaining currencies are still converted.
func (s *transformService) Transform(ctx context.Context, dataset *domain.Dataset) (*domain.Dataset, error) {
	if dataset == nil {
		return nil, fmt.Errorf("%w: nil dataset", apperrors.ErrValidation)
	}

	var rateErrs []error
	for _, currency := range domain.TargetCurrencies {
		// A failed lookup is reported here and yields a null rate, so the
		// rate stage itself always finishes.
		rate, _ := middleware.StageValue(ctx, StageRate, func(ctx context.Context) (decimal.NullDecimal, error) {
			rate, err := s.LookupRate(ctx, currency)
			if err != nil {
				s.LogWarn(ctx, err, fmt.Sprintf("%s: no rate for %s, leaving %s empty",
					rateCondition(err), currency, domain.MarketCapColumn(currency)))
				rateErrs = append(rateErrs, fmt.Errorf("%s: %w", currency, err))
				return decimal.NullDecimal{}, nil
			}
			return decimal.NewNullDecimal(rate), nil
		})
		dataset.SetMarketCap(currency, rate)
	}

	if len(rateErrs) > 0 {
		return dataset, fmt.Errorf("%w: %w", apperrors.ErrDegraded, errors.Join(rateErrs...))
	}
	return dataset, nil
}

// rateCondition names the reason a rate lookup failed.
func rateCondition(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrRateFileNotFound):
		return "file not found"
	case errors.Is(err, apperrors.ErrUnsupportedCurrency):
		return "unsupported currency"
	case errors.Is(err, apperrors.ErrNotFound):
		return "currency not recognized"
	default:
		return "rate lookup failed"
	}
}
