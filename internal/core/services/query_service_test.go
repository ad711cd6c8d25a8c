package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	"github.com/SscSPs/banks_etl/internal/core/services"
	"github.com/SscSPs/banks_etl/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryService_PrintsQueryAndResult(t *testing.T) {
	ctx := context.Background()
	query := "SELECT Name, MC_GBP_Billion FROM Largest_banks"
	runner := new(MockQueryRunner)
	runner.On("RunQuery", ctx, query).Return(&domain.QueryResult{
		Query:   query,
		Columns: []string{"Name", "MC_GBP_Billion"},
		Rows:    [][]any{{"JPMorgan Chase", 346.34}, {"Bank of America", nil}},
	}, nil).Once()

	var out bytes.Buffer
	result, err := services.NewQueryService(runner, &out).RunQuery(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount())
	want := "Executed query:\n" + query + "\n" +
		"Name             MC_GBP_Billion\n" +
		"----             --------------\n" +
		"JPMorgan Chase   346.34\n" +
		"Bank of America  NULL\n" +
		"(2 rows)\n\n"
	assert.Equal(t, want, out.String())
	runner.AssertExpectations(t)
}

func TestQueryService_Error(t *testing.T) {
	var logs bytes.Buffer
	ctx, _ := middleware.WithRunLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)), "run-1")
	runner := new(MockQueryRunner)
	runner.On("RunQuery", ctx, "SELECT nope").Return(nil, assert.AnError).Once()

	var out bytes.Buffer
	result, err := services.NewQueryService(runner, &out).RunQuery(ctx, "SELECT nope")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "Executed query:\nSELECT nope\n", out.String())
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), `msg="Query failed"`)
	assert.Contains(t, logs.String(), `query="SELECT nope"`)
}

func TestQueryStatements(t *testing.T) {
	assert.Equal(t, []string{
		"SELECT Name, MC_GBP_Billion FROM Largest_banks",
		"SELECT Name, MC_EUR_Billion FROM Largest_banks",
		"SELECT Name, MC_INR_Billion FROM Largest_banks",
	}, services.QueryStatements("Largest_banks"))
}
