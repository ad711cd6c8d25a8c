package csvfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transformedDataset() *domain.Dataset {
	ds := domain.NewDataset([]domain.Bank{
		domain.NewBank("JPMorgan Chase", decimal.RequireFromString("432.92")),
		domain.NewBank("Bank of America", decimal.RequireFromString("231.52")),
	})
	ds.SetMarketCap(domain.GBP, decimal.NewNullDecimal(decimal.RequireFromString("0.8")))
	ds.SetMarketCap(domain.EUR, decimal.NewNullDecimal(decimal.RequireFromString("0.93")))
	ds.SetMarketCap(domain.INR, decimal.NullDecimal{})
	return ds
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, transformedDataset()))

	want := "Name,MC_USD_Billion,MC_GBP_Billion,MC_EUR_Billion,MC_INR_Billion\n" +
		"JPMorgan Chase,432.92,346.34,402.62,\n" +
		"Bank of America,231.52,185.22,215.31,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteDataset_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "Largest_banks_data.csv")
	ds := transformedDataset()
	writer := NewDatasetWriter()

	require.NoError(t, writer.WriteDataset(context.Background(), ds, path))
	got, err := ReadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, ds.Columns(), got.Columns())
	require.Equal(t, ds.Len(), got.Len())
	for i, bank := range ds.Banks {
		assert.Equal(t, bank.Name, got.Banks[i].Name)
		for _, c := range append([]domain.Currency{domain.USD}, ds.Currencies...) {
			want, have := bank.MarketCapIn(c), got.Banks[i].MarketCapIn(c)
			assert.Equal(t, want.Valid, have.Valid, "%s %s validity", bank.Name, c)
			assert.True(t, want.Decimal.Equal(have.Decimal), "%s %s value", bank.Name, c)
		}
	}
}

func TestWriteDataset_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.csv")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("stale,"), 1000), 0o644))

	ds := domain.NewDataset([]domain.Bank{domain.NewBank("BankX", decimal.NewFromInt(100))})
	require.NoError(t, NewDatasetWriter().WriteDataset(context.Background(), ds, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name,MC_USD_Billion\nBankX,100\n", string(content))
}

func TestWriteDataset_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	err := NewDatasetWriter().WriteDataset(context.Background(), transformedDataset(), dir)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestWriteDataset_NilDataset(t *testing.T) {
	err := NewDatasetWriter().WriteDataset(context.Background(), nil, filepath.Join(t.TempDir(), "x.csv"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDecode_RejectsUnknownColumn(t *testing.T) {
	_, err := Decode(bytes.NewBufferString("Name,MC_USD_Billion,Extra\nA,1,2\n"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
