package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/banks_etl/internal/core/domain"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banks_etl/internal/core/ports/services"
	"github.com/SscSPs/banks_etl/internal/utils"
)

type queryService struct {
	BaseService
	runner portsrepo.QueryRunner
	out    io.Writer
}

// NewQueryService creates a query service printing results to out.
func NewQueryService(runner portsrepo.QueryRunner, out io.Writer) portssvc.QuerySvc {
	return &queryService{runner: runner, out: out}
}

// RunQuery prints the statement, executes it and prints the result set.
func (s *queryService) RunQuery(ctx context.Context, query string) (*domain.QueryResult, error) {
	fmt.Fprintf(s.out, "Executed query:\n%s\n", query)

	result, err := s.runner.RunQuery(ctx, query)
	if err != nil {
		s.LogWarn(ctx, err, "Query failed", slog.String("query", query))
		return nil, fmt.Errorf("failed to run query: %w", err)
	}

	if err := PrintResult(s.out, result); err != nil {
		return result, fmt.Errorf("failed to print query result: %w", err)
	}
	return result, nil
}

// PrintResult writes result as an aligned table followed by the row count.
func PrintResult(out io.Writer, result *domain.QueryResult) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(result.Columns, "\t"))
	dashes := make([]string, len(result.Columns))
	for i, col := range result.Columns {
		dashes[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = utils.FormatCell(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "(%d rows)\n\n", result.RowCount())
	return err
}
