package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Currency is a three-letter currency code (e.g., "USD").
type Currency string

const (
	USD Currency = "USD"
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	INR Currency = "INR"
)

// BaseCurrency is the currency market capitalization is scraped in.
const BaseCurrency = USD

// TargetCurrencies are the derived currencies in output column order.
var TargetCurrencies = []Currency{GBP, EUR, INR}

// MarketCapPrecision is the number of decimal places kept for derived values.
const MarketCapPrecision = 2

// IsSupported reports whether c is one of the target currencies.
func (c Currency) IsSupported() bool {
	for _, supported := range TargetCurrencies {
		if c == supported {
			return true
		}
	}
	return false
}

// ParseCurrency normalizes a currency code and checks it against the supported set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsSupported() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, code)
	}
	return c, nil
}

// MarketCapColumn returns the column name holding market capitalization in c,
// e.g. MC_GBP_Billion.
func MarketCapColumn(c Currency) string {
	return "MC_" + string(c) + "_Billion"
}

// Convert multiplies a USD amount by rate and rounds to MarketCapPrecision places.
// Ties round to the even digit.
func Convert(usd, rate decimal.Decimal) decimal.Decimal {
	return usd.Mul(rate).RoundBank(MarketCapPrecision)
}

// RateTable maps a currency to its multiplier against USD. It is read-only once built.
type RateTable map[Currency]decimal.Decimal

// NewRateTable validates rates and returns them as a RateTable.
// Codes outside the supported set are skipped; non-positive rates are rejected.
func NewRateTable(rates map[Currency]decimal.Decimal) (RateTable, error) {
	table := make(RateTable, len(rates))
	for c, rate := range rates {
		if !c.IsSupported() {
			continue
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: rate for %s must be positive, got %s", apperrors.ErrValidation, c, rate)
		}
		table[c] = rate
	}
	return table, nil
}

// Rate returns the multiplier for c.
func (t RateTable) Rate(c Currency) (decimal.Decimal, error) {
	if !c.IsSupported() {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, string(c))
	}
	rate, ok := t[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: currency %s not recognized", apperrors.ErrNotFound, c)
	}
	return rate, nil
}
