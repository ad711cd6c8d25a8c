package domain

import "github.com/shopspring/decimal"

// Default column names for the two scraped attributes.
const (
	NameColumn         = "Name"
	MarketCapUSDColumn = "MC_USD_Billion"
)

// Bank is a single row of the largest-banks table.
type Bank struct {
	Name         string                           `json:"name"`
	MarketCapUSD decimal.Decimal                  `json:"marketCapUSD"` // Billions of USD
	MarketCap    map[Currency]decimal.NullDecimal `json:"marketCap"`    // Derived; invalid when the rate was unavailable
}

// NewBank builds a Bank with no derived values.
func NewBank(name string, marketCapUSD decimal.Decimal) Bank {
	return Bank{
		Name:         name,
		MarketCapUSD: marketCapUSD,
		MarketCap:    map[Currency]decimal.NullDecimal{},
	}
}

// MarketCapIn returns market capitalization in c. USD is always valid.
func (b Bank) MarketCapIn(c Currency) decimal.NullDecimal {
	if c == BaseCurrency {
		return decimal.NewNullDecimal(b.MarketCapUSD)
	}
	return b.MarketCap[c]
}
