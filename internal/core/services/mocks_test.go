package services_test

import (
	"context"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TableSource ---
type MockTableSource struct {
	mock.Mock
}

func (m *MockTableSource) FetchRows(ctx context.Context, url string) ([][]string, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

// --- Mock RateReader ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) LoadRateTable(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockRateReader) LookupRate(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock DatasetFileWriter ---
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteDataset(ctx context.Context, dataset *domain.Dataset, path string) error {
	args := m.Called(ctx, dataset, path)
	return args.Error(0)
}

// --- Mock DatasetTableWriter ---
type MockTableWriter struct {
	mock.Mock
}

func (m *MockTableWriter) ReplaceTable(ctx context.Context, table string, dataset *domain.Dataset) (int, error) {
	args := m.Called(ctx, table, dataset)
	return args.Int(0), args.Error(1)
}

// --- Mock QueryRunner ---
type MockQueryRunner struct {
	mock.Mock
}

func (m *MockQueryRunner) RunQuery(ctx context.Context, query string) (*domain.QueryResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QueryResult), args.Error(1)
}

// --- Mock RunRepositoryFacade ---
type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) SaveRun(ctx context.Context, run domain.Run) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepository) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Run), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
