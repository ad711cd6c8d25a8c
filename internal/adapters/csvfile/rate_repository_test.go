package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRatesCSV = "Currency,Rate\nEUR,0.93\nGBP,0.8\nINR,82.95\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRateRepository_LookupRate(t *testing.T) {
	repo := NewRateRepository(writeFile(t, "exchange_rate.csv", sampleRatesCSV))
	ctx := context.Background()

	tests := []struct {
		currency domain.Currency
		want     string
		wantErr  error
	}{
		{currency: domain.EUR, want: "0.93"},
		{currency: domain.GBP, want: "0.8"},
		{currency: domain.INR, want: "82.95"},
		{currency: "JPY", wantErr: apperrors.ErrUnsupportedCurrency},
		{currency: domain.USD, wantErr: apperrors.ErrUnsupportedCurrency},
	}
	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			got, err := repo.LookupRate(ctx, tt.currency)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got))
		})
	}
}

func TestRateRepository_MissingFile(t *testing.T) {
	repo := NewRateRepository(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := repo.LookupRate(context.Background(), domain.GBP)

	assert.ErrorIs(t, err, apperrors.ErrRateFileNotFound)
}

func TestRateRepository_CurrencyMissingFromFile(t *testing.T) {
	repo := NewRateRepository(writeFile(t, "rates.csv", "Currency,Rate\nEUR,0.93\n"))

	_, err := repo.LookupRate(context.Background(), domain.INR)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRateRepository_HeaderOrderAndExtraColumns(t *testing.T) {
	repo := NewRateRepository(writeFile(t, "rates.csv", "\ufeffRate,Name,Currency\n0.8,Pound,GBP\n0.93,Euro,eur\n"))

	table, err := repo.LoadRateTable(context.Background())

	require.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, "0.93", table[domain.EUR].String())
}

func TestRateRepository_InvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "missing rate column", content: "Currency,Value\nGBP,0.8\n"},
		{name: "non numeric rate", content: "Currency,Rate\nGBP,abc\n"},
		{name: "negative rate", content: "Currency,Rate\nGBP,-1\n"},
		{name: "short row", content: "Currency,Rate\nGBP\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRateRepository(writeFile(t, "rates.csv", tt.content))
			_, err := repo.LoadRateTable(context.Background())
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

type countingRateReader struct {
	calls int
	table domain.RateTable
	err   error
}

func (c *countingRateReader) LoadRateTable(ctx context.Context) (domain.RateTable, error) {
	c.calls++
	return c.table, c.err
}

func (c *countingRateReader) LookupRate(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("not used")
}

func TestCachingRateRepository_ReadsOnce(t *testing.T) {
	next := &countingRateReader{table: domain.RateTable{domain.GBP: decimal.RequireFromString("0.8")}}
	repo := NewCachingRateRepository(next)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rate, err := repo.LookupRate(ctx, domain.GBP)
		require.NoError(t, err)
		assert.Equal(t, "0.8", rate.String())
	}
	_, err := repo.LookupRate(ctx, domain.EUR)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.Equal(t, 1, next.calls)
}

func TestCachingRateRepository_DoesNotCacheFailures(t *testing.T) {
	next := &countingRateReader{err: apperrors.ErrRateFileNotFound}
	repo := NewCachingRateRepository(next)
	ctx := context.Background()

	_, err := repo.LookupRate(ctx, domain.GBP)
	assert.ErrorIs(t, err, apperrors.ErrRateFileNotFound)

	next.err = nil
	next.table = domain.RateTable{domain.GBP: decimal.RequireFromString("0.8")}
	_, err = repo.LookupRate(ctx, domain.GBP)
	assert.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}
