package csvfile

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// cachingRateRepository decorates a RateReader with a cache of the rate table.
// The first successful read is kept for the lifetime of the decorator; failures are not cached.
type cachingRateRepository struct {
	// next the repository being decorated with a cache
	next portsrepo.RateReader

	// lock guards table
	lock  sync.RWMutex
	table domain.RateTable
}

// NewCachingRateRepository returns a RateReader that reads next at most once successfully.
func NewCachingRateRepository(next portsrepo.RateReader) portsrepo.RateReader {
	return &cachingRateRepository{next: next}
}

// LoadRateTable returns the cached table, loading it on first use.
func (c *cachingRateRepository) LoadRateTable(ctx context.Context) (domain.RateTable, error) {
	c.lock.RLock()
	table := c.table
	c.lock.RUnlock()
	if table != nil {
		return table, nil
	}

	table, err := c.next.LoadRateTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh rate cache: %w", err)
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if c.table == nil {
		c.table = table
	}
	return c.table, nil
}

// LookupRate answers from the cached table.
func (c *cachingRateRepository) LookupRate(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	if !currency.IsSupported() {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, string(currency))
	}
	table, err := c.LoadRateTable(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return table.Rate(currency)
}
