package repositories

import (
	"context"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReader defines read operations for exchange rate data
type RateReader interface {
	// LoadRateTable reads every supported rate from the rate source.
	LoadRateTable(ctx context.Context) (domain.RateTable, error)

	// LookupRate returns the multiplier from USD to currency.
	LookupRate(ctx context.Context, currency domain.Currency) (decimal.Decimal, error)
}
